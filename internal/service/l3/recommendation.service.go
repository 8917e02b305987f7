package l3_service

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"time"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/domain"
	"wealthplan/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RecommendationService interface {
	GenerateSession(in GenerateSessionInput) (*domain.RecommendationSession, error)
	GetCurrentSession(userAccountID uuid.UUID) (*domain.RecommendationSession, error)
}

type recommendationServiceHandler struct {
	Db                       *sql.DB
	RecommendationRepository repository.RecommendationRepository
}

func NewRecommendationService(
	db *sql.DB,
	recommendationRepository repository.RecommendationRepository,
) RecommendationService {
	return recommendationServiceHandler{
		Db:                       db,
		RecommendationRepository: recommendationRepository,
	}
}

type DistributeCapitalInput struct {
	Assets          []domain.AssetWithContext
	TotalInvestable decimal.Decimal
}

type DistributeCapitalResult struct {
	Items []domain.RecommendationItem
	// Unallocated capital is the remainder when no asset is eligible or
	// minimum-allocation floors were mutually unsatisfiable.
	Unallocated decimal.Decimal
}

type capitalCandidate struct {
	ctx      domain.AssetWithContext
	priority decimal.Decimal
	amount   decimal.Decimal
}

// DistributeCapital splits totalInvestable across the eligible assets by
// normalized priority (allocation gap weighted by score). The output
// always satisfies: amounts sum to totalInvestable minus Unallocated;
// over-allocated assets get exactly zero; nothing goes negative.
func DistributeCapital(in DistributeCapitalInput) (*DistributeCapitalResult, error) {
	items := []domain.RecommendationItem{}
	if in.TotalInvestable.LessThanOrEqual(decimal.Zero) {
		return &DistributeCapitalResult{
			Items:       items,
			Unallocated: decimal.Zero,
		}, nil
	}

	eligible := []*capitalCandidate{}
	for _, asset := range in.Assets {
		priority := asset.ClassStatus.AllocationGap.
			Mul(decimal.NewFromInt32(asset.Score)).
			Div(oneHundred)

		// the zero-buy signal is absolute: an over-allocated class never
		// receives capital, whatever its score says
		if asset.ClassStatus.IsOverAllocated {
			items = append(items, zeroItem(asset, priority, true))
			continue
		}
		eligible = append(eligible, &capitalCandidate{
			ctx:      asset,
			priority: priority,
		})
	}

	eligible, capped := applyMaxAssetCount(eligible)
	for _, c := range capped {
		items = append(items, zeroItem(c.ctx, c.priority, false))
	}

	if len(eligible) == 0 {
		return &DistributeCapitalResult{
			Items:       items,
			Unallocated: in.TotalInvestable,
		}, nil
	}

	// redistribution is bounded: every pass either converges or drops at
	// least one candidate, so at most len(assets) passes run before any
	// unsatisfiable remainder is declared unallocated
	remaining := eligible
	for pass := 0; pass <= len(in.Assets); pass++ {
		if err := assignShares(remaining, in.TotalInvestable); err != nil {
			return nil, err
		}

		violators := []*capitalCandidate{}
		kept := []*capitalCandidate{}
		for _, c := range remaining {
			floor := c.ctx.ClassTarget.MinAllocationValue
			if floor.GreaterThan(decimal.Zero) && c.amount.LessThan(floor) {
				violators = append(violators, c)
			} else {
				kept = append(kept, c)
			}
		}
		if len(violators) == 0 {
			break
		}
		for _, c := range violators {
			items = append(items, zeroItem(c.ctx, c.priority, false))
		}
		remaining = kept
		if len(remaining) == 0 {
			break
		}
	}

	if len(remaining) == 0 {
		return &DistributeCapitalResult{
			Items:       items,
			Unallocated: in.TotalInvestable,
		}, nil
	}

	// round to the currency's minor unit and push the rounding remainder
	// onto the single highest-priority asset so the total is exact
	sortCandidates(remaining)
	roundedSum := decimal.Zero
	for _, c := range remaining {
		c.amount = domain.RoundMoney(c.amount)
		roundedSum = roundedSum.Add(c.amount)
	}
	remainder := in.TotalInvestable.Sub(roundedSum)
	remaining[0].amount = remaining[0].amount.Add(remainder)

	for _, c := range remaining {
		items = append(items, domain.RecommendationItem{
			AssetID:           c.ctx.Asset.AssetID,
			Symbol:            c.ctx.Asset.Symbol,
			Priority:          domain.RoundPercent(c.priority),
			RecommendedAmount: c.amount,
			IsOverAllocated:   false,
		})
	}

	return &DistributeCapitalResult{
		Items:       items,
		Unallocated: decimal.Zero,
	}, nil
}

func zeroItem(asset domain.AssetWithContext, priority decimal.Decimal, overAllocated bool) domain.RecommendationItem {
	return domain.RecommendationItem{
		AssetID:           asset.Asset.AssetID,
		Symbol:            asset.Asset.Symbol,
		Priority:          domain.RoundPercent(priority),
		RecommendedAmount: decimal.Zero.Round(domain.MoneyScale),
		IsOverAllocated:   overAllocated,
	}
}

// assignShares normalizes positive priorities into shares of the total.
// When every candidate sits at or above its class midpoint (no positive
// priority), capital still has to move: the explicit fallback is an
// equal-weight split across the candidates.
func assignShares(candidates []*capitalCandidate, total decimal.Decimal) error {
	positiveSum := decimal.Zero
	for _, c := range candidates {
		if c.priority.GreaterThan(decimal.Zero) {
			positiveSum = positiveSum.Add(c.priority)
		}
	}

	if positiveSum.IsZero() {
		equalShare, err := domain.Divide(total, decimal.NewFromInt(int64(len(candidates))))
		if err != nil {
			return err
		}
		for _, c := range candidates {
			c.amount = equalShare
		}
		return nil
	}

	for _, c := range candidates {
		if c.priority.LessThanOrEqual(decimal.Zero) {
			c.amount = decimal.Zero
			continue
		}
		share, err := domain.Divide(c.priority, positiveSum)
		if err != nil {
			return err
		}
		c.amount = share.Mul(total)
	}

	return nil
}

// applyMaxAssetCount keeps only the top-priority candidates per class when
// the class target caps how many assets may receive capital in one
// session.
func applyMaxAssetCount(candidates []*capitalCandidate) (kept []*capitalCandidate, capped []*capitalCandidate) {
	byClass := map[uuid.UUID][]*capitalCandidate{}
	classOrder := []uuid.UUID{}
	for _, c := range candidates {
		classID := c.ctx.Asset.AssetClassID
		if _, ok := byClass[classID]; !ok {
			classOrder = append(classOrder, classID)
		}
		byClass[classID] = append(byClass[classID], c)
	}

	for _, classID := range classOrder {
		group := byClass[classID]
		maxCount := group[0].ctx.ClassTarget.MaxAssetCount
		if maxCount == nil || len(group) <= int(*maxCount) {
			kept = append(kept, group...)
			continue
		}
		sortCandidates(group)
		kept = append(kept, group[:*maxCount]...)
		capped = append(capped, group[*maxCount:]...)
	}

	return kept, capped
}

// sortCandidates orders by priority descending, ties broken by symbol so
// results are deterministic.
func sortCandidates(candidates []*capitalCandidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		if !candidates[i].priority.Equal(candidates[j].priority) {
			return candidates[i].priority.GreaterThan(candidates[j].priority)
		}
		return candidates[i].ctx.Asset.Symbol < candidates[j].ctx.Asset.Symbol
	})
}

type GenerateSessionInput struct {
	CorrelationID     uuid.UUID
	UserAccountID     uuid.UUID
	CriteriaVersionID uuid.UUID
	Assets            []domain.AssetWithContext
	Breakdowns        map[uuid.UUID][]domain.CriterionResult
	TotalInvestable   decimal.Decimal
	BaseCurrency      string
}

// GenerateSession runs capital distribution and persists the session with
// its items. The session id is the run's correlation id, which links the
// persisted output back to its audit trail.
func (h recommendationServiceHandler) GenerateSession(in GenerateSessionInput) (*domain.RecommendationSession, error) {
	distributed, err := DistributeCapital(DistributeCapitalInput{
		Assets:          in.Assets,
		TotalInvestable: in.TotalInvestable,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to distribute capital: %w", err)
	}

	generatedAt := time.Now().UTC()
	session := domain.RecommendationSession{
		SessionID:         in.CorrelationID,
		UserAccountID:     in.UserAccountID,
		CriteriaVersionID: in.CriteriaVersionID,
		Items:             distributed.Items,
		TotalInvestable:   in.TotalInvestable,
		Unallocated:       distributed.Unallocated,
		BaseCurrency:      in.BaseCurrency,
		GeneratedAt:       generatedAt,
		ExpiresAt:         generatedAt.Add(domain.SessionValidityWindow),
	}
	for i := range session.Items {
		session.Items[i].Breakdown = in.Breakdowns[session.Items[i].AssetID]
	}

	itemModels := []*model.RecommendationItem{}
	for _, item := range session.Items {
		breakdown, err := json.Marshal(item.Breakdown)
		if err != nil {
			return nil, err
		}
		itemModels = append(itemModels, &model.RecommendationItem{
			AssetID:           item.AssetID,
			Symbol:            item.Symbol,
			Priority:          item.Priority,
			RecommendedAmount: item.RecommendedAmount,
			IsOverAllocated:   item.IsOverAllocated,
			Breakdown:         string(breakdown),
		})
	}

	// the session row and its items land atomically; a half-written
	// session under this correlation id would otherwise be served by
	// GetCurrentSession and block a retry of the same run
	tx, err := h.Db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	_, err = h.RecommendationRepository.AddSession(tx, model.RecommendationSession{
		RecommendationSessionID: session.SessionID,
		UserAccountID:           session.UserAccountID,
		CriteriaVersionID:       session.CriteriaVersionID,
		TotalInvestable:         session.TotalInvestable,
		Unallocated:             session.Unallocated,
		BaseCurrency:            session.BaseCurrency,
		GeneratedAt:             session.GeneratedAt,
		ExpiresAt:               session.ExpiresAt,
	}, itemModels)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &session, nil
}

// GetCurrentSession returns the user's latest session, or nil when it has
// expired - a stale session must never be surfaced for confirmation.
func (h recommendationServiceHandler) GetCurrentSession(userAccountID uuid.UUID) (*domain.RecommendationSession, error) {
	sessionModel, err := h.RecommendationRepository.GetLatestSession(userAccountID)
	if err != nil {
		return nil, err
	}
	if sessionModel == nil {
		return nil, nil
	}

	session := &domain.RecommendationSession{
		SessionID:         sessionModel.RecommendationSessionID,
		UserAccountID:     sessionModel.UserAccountID,
		CriteriaVersionID: sessionModel.CriteriaVersionID,
		TotalInvestable:   sessionModel.TotalInvestable,
		Unallocated:       sessionModel.Unallocated,
		BaseCurrency:      sessionModel.BaseCurrency,
		GeneratedAt:       sessionModel.GeneratedAt,
		ExpiresAt:         sessionModel.ExpiresAt,
	}
	if session.IsExpired(time.Now().UTC()) {
		return nil, nil
	}

	itemModels, err := h.RecommendationRepository.ListItems(session.SessionID)
	if err != nil {
		return nil, err
	}
	for _, m := range itemModels {
		item := domain.RecommendationItem{
			AssetID:           m.AssetID,
			Symbol:            m.Symbol,
			Priority:          m.Priority,
			RecommendedAmount: m.RecommendedAmount,
			IsOverAllocated:   m.IsOverAllocated,
		}
		if m.Breakdown != "" {
			if err := json.Unmarshal([]byte(m.Breakdown), &item.Breakdown); err != nil {
				return nil, fmt.Errorf("failed to decode item breakdown: %w", err)
			}
		}
		session.Items = append(session.Items, item)
	}

	return session, nil
}
