package app

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/domain"
	"wealthplan/internal/logger"
	"wealthplan/internal/repository"
	l1_service "wealthplan/internal/service/l1"
	l2_service "wealthplan/internal/service/l2"
	l3_service "wealthplan/internal/service/l3"

	"github.com/google/uuid"
	"github.com/montanaflynn/stats"
	"github.com/shopspring/decimal"
)

// BatchOrchestrator drives the nightly calculation over a set of users.
// Market data is fetched once and shared read-only across the batch; each
// user is otherwise fully isolated, so one user's bad data never aborts
// the run for anyone else.
type BatchOrchestrator interface {
	ProcessBatch(ctx context.Context, userAccountIDs []uuid.UUID) (*domain.BatchResult, error)
	ProcessUser(ctx context.Context, userAccountID uuid.UUID, shared *domain.SharedBatchContext) domain.UserRunResult
}

type batchOrchestratorHandler struct {
	Db *sql.DB

	UserAccountRepository       repository.UserAccountRepository
	PortfolioRepository         repository.PortfolioRepository
	AllocationTargetRepository  repository.AllocationTargetRepository
	CriteriaRepository          repository.CriteriaRepository
	AssetFundamentalsRepository repository.AssetFundamentalsRepository
	AssetScoreRepository        repository.AssetScoreRepository

	MarketDataService     l1_service.MarketDataService
	AuditTrailService     l1_service.AuditTrailService
	ScoringService        l2_service.ScoringService
	RecommendationService l3_service.RecommendationService
}

func NewBatchOrchestrator(
	db *sql.DB,
	userAccountRepository repository.UserAccountRepository,
	portfolioRepository repository.PortfolioRepository,
	allocationTargetRepository repository.AllocationTargetRepository,
	criteriaRepository repository.CriteriaRepository,
	assetFundamentalsRepository repository.AssetFundamentalsRepository,
	assetScoreRepository repository.AssetScoreRepository,
	marketDataService l1_service.MarketDataService,
	auditTrailService l1_service.AuditTrailService,
	scoringService l2_service.ScoringService,
	recommendationService l3_service.RecommendationService,
) BatchOrchestrator {
	return batchOrchestratorHandler{
		Db:                          db,
		UserAccountRepository:       userAccountRepository,
		PortfolioRepository:         portfolioRepository,
		AllocationTargetRepository:  allocationTargetRepository,
		CriteriaRepository:          criteriaRepository,
		AssetFundamentalsRepository: assetFundamentalsRepository,
		AssetScoreRepository:        assetScoreRepository,
		MarketDataService:           marketDataService,
		AuditTrailService:           auditTrailService,
		ScoringService:              scoringService,
		RecommendationService:       recommendationService,
	}
}

const batchNumGoroutines = 4

// ProcessBatch runs the pipeline for the given users, or for every user
// when the list is empty. A user-level failure is recorded and counted,
// never propagated; ProcessBatch itself only errors when the shared
// context cannot be assembled at all.
func (h batchOrchestratorHandler) ProcessBatch(ctx context.Context, userAccountIDs []uuid.UUID) (*domain.BatchResult, error) {
	log := logger.FromContext(ctx)

	if len(userAccountIDs) == 0 {
		users, err := h.UserAccountRepository.List()
		if err != nil {
			return nil, fmt.Errorf("failed to list users for batch: %w", err)
		}
		for _, u := range users {
			userAccountIDs = append(userAccountIDs, u.UserAccountID)
		}
	}

	shared, err := h.MarketDataService.LoadSharedContext()
	if err != nil {
		return nil, fmt.Errorf("failed to load shared market context: %w", err)
	}
	log.Infof("starting batch for %d users (%d prices, %d rates)", len(userAccountIDs), len(shared.Prices), len(shared.ExchangeRates))

	inputCh := make(chan uuid.UUID, len(userAccountIDs))
	numGoroutines := batchNumGoroutines
	if numGoroutines > len(userAccountIDs) {
		numGoroutines = len(userAccountIDs)
	}

	var wg sync.WaitGroup
	for _, id := range userAccountIDs {
		wg.Add(1)
		inputCh <- id
	}
	close(inputCh)

	out := &domain.BatchResult{}
	var mu sync.Mutex
	allScores := []float64{}

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					// drain so wg.Wait can release the queued users
					for range inputCh {
						wg.Done()
					}
					return
				case userID, ok := <-inputCh:
					if !ok {
						return
					}
					result, scores := h.processUserWithScores(ctx, userID, shared)
					mu.Lock()
					out.PerUser = append(out.PerUser, result)
					out.UsersProcessed++
					switch result.State {
					case domain.UserRunState_Completed:
						out.UsersSuccess++
					case domain.UserRunState_Skipped:
						out.UsersSkipped++
					default:
						out.UsersFailed++
					}
					out.TotalScored += result.AssetsScored
					out.TotalGenerated += result.ItemsGenerated
					allScores = append(allScores, scores...)
					mu.Unlock()
					wg.Done()
				}
			}
		}()
	}
	wg.Wait()
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if len(allScores) > 0 {
		mean, err := stats.Mean(allScores)
		if err != nil {
			return nil, err
		}
		stdev, err := stats.StandardDeviationSample(allScores)
		if err != nil {
			return nil, err
		}
		out.MeanScore = mean
		out.ScoreStdev = stdev
	}

	log.Infof("batch complete: %d success, %d skipped, %d failed, %d assets scored", out.UsersSuccess, out.UsersSkipped, out.UsersFailed, out.TotalScored)

	return out, nil
}

func (h batchOrchestratorHandler) ProcessUser(ctx context.Context, userAccountID uuid.UUID, shared *domain.SharedBatchContext) domain.UserRunResult {
	result, _ := h.processUserWithScores(ctx, userAccountID, shared)
	return result
}

// skipRun marks a user run that legitimately has nothing to calculate.
// It flows through the normal error path so the audit trail still closes,
// but is counted as a skip rather than a failure.
type skipRun struct {
	reason string
}

func (e skipRun) Error() string {
	return e.reason
}

func (h batchOrchestratorHandler) processUserWithScores(ctx context.Context, userAccountID uuid.UUID, shared *domain.SharedBatchContext) (domain.UserRunResult, []float64) {
	log := logger.FromContext(ctx)
	correlationID := uuid.New()
	result := domain.UserRunResult{
		UserAccountID: userAccountID,
		CorrelationID: correlationID,
		State:         domain.UserRunState_Pending,
	}

	trail, err := h.AuditTrailService.Begin(userAccountID, correlationID)
	if err != nil {
		result.State = domain.UserRunState_Failed
		result.Err = fmt.Errorf("failed to begin audit trail: %w", err)
		log.Errorf("user %s: %v", userAccountID.String(), result.Err)
		return result, nil
	}

	scores, runErr := h.runUser(ctx, trail, userAccountID, shared, &result)

	var skip skipRun
	switch {
	case runErr == nil:
		result.State = domain.UserRunState_Completed
	case errors.As(runErr, &skip):
		result.State = domain.UserRunState_Skipped
		result.SkipReason = skip.reason
		runErr = nil
	default:
		result.State = domain.UserRunState_Failed
		result.Err = runErr
		log.Errorf("user %s run %s failed: %v", userAccountID.String(), correlationID.String(), runErr)
	}

	// the terminal event is emitted no matter how the run ended
	if err := trail.Complete(result.AssetsScored, runErr); err != nil {
		log.Errorf("user %s: failed to complete audit trail: %v", userAccountID.String(), err)
		if result.State == domain.UserRunState_Completed {
			result.State = domain.UserRunState_Failed
			result.Err = err
		}
	}

	scoreValues := make([]float64, 0, len(scores))
	for _, s := range scores {
		scoreValues = append(scoreValues, float64(s.Score))
	}

	return result, scoreValues
}

// runUser executes the score-then-recommend pipeline for one user inside
// an already-open audit trail.
func (h batchOrchestratorHandler) runUser(
	ctx context.Context,
	trail *l1_service.RunTrail,
	userAccountID uuid.UUID,
	shared *domain.SharedBatchContext,
	result *domain.UserRunResult,
) ([]domain.AssetScoreResult, error) {
	user, err := h.UserAccountRepository.Get(userAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	activeVersion, err := h.CriteriaRepository.GetActiveVersion(userAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get active criteria version: %w", err)
	}
	if activeVersion == nil {
		return nil, skipRun{reason: "no active criteria version"}
	}

	assetModels, err := h.PortfolioRepository.ListAssets(userAccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to list portfolio assets: %w", err)
	}
	if len(assetModels) == 0 {
		return nil, skipRun{reason: "empty portfolio"}
	}

	totalInvestable := user.DefaultContribution
	if totalInvestable.LessThanOrEqual(decimal.Zero) {
		return nil, skipRun{reason: "non-positive investable amount"}
	}

	ruleModels, err := h.CriteriaRepository.ListRules(activeVersion.CriteriaVersionID)
	if err != nil {
		return nil, fmt.Errorf("failed to list criterion rules: %w", err)
	}

	version := domain.CriteriaVersion{
		CriteriaVersionID: activeVersion.CriteriaVersionID,
		UserAccountID:     activeVersion.UserAccountID,
		Version:           activeVersion.Version,
		PublishedAt:       activeVersion.PublishedAt,
	}
	for _, m := range ruleModels {
		version.Rules = append(version.Rules, RuleFromModel(m))
	}

	assets := []domain.PortfolioAsset{}
	symbols := []string{}
	assetIDs := []uuid.UUID{}
	for _, m := range assetModels {
		assets = append(assets, domain.PortfolioAsset{
			AssetID:       m.AssetID,
			UserAccountID: m.UserAccountID,
			Symbol:        m.Symbol,
			AssetClassID:  m.AssetClassID,
			Quantity:      m.Quantity,
			Currency:      m.Currency,
		})
		symbols = append(symbols, m.Symbol)
		assetIDs = append(assetIDs, m.AssetID)
	}

	fundamentals, err := h.AssetFundamentalsRepository.GetManyBySymbols(symbols)
	if err != nil {
		return nil, fmt.Errorf("failed to load fundamentals: %w", err)
	}

	if err := trail.CaptureInputs(inputsPayload(version, assetIDs, symbols, shared)); err != nil {
		return nil, err
	}
	result.State = domain.UserRunState_Scoring

	scores, err := h.ScoringService.ScoreAssets(ctx, version, assets, fundamentals)
	if err != nil {
		return scores, err
	}
	if err := trail.RecordScores(scores); err != nil {
		return scores, err
	}
	result.State = domain.UserRunState_Scored
	result.AssetsScored = len(scores)

	if err := h.persistScores(userAccountID, scores); err != nil {
		return scores, err
	}

	result.State = domain.UserRunState_Recommending
	marketValues := map[uuid.UUID]decimal.Decimal{}
	for _, asset := range assets {
		value, err := h.MarketDataService.MarketValue(asset, shared, user.BaseCurrency)
		if err != nil {
			return scores, fmt.Errorf("failed to value %s: %w", asset.Symbol, err)
		}
		marketValues[asset.AssetID] = value
	}

	targetModels, err := h.AllocationTargetRepository.ListForUser(userAccountID)
	if err != nil {
		return scores, fmt.Errorf("failed to list allocation targets: %w", err)
	}
	targets := map[uuid.UUID]domain.AllocationTarget{}
	for _, m := range targetModels {
		targets[m.AssetClassID] = domain.AllocationTarget{
			AssetClassID:       m.AssetClassID,
			TargetMinPct:       m.TargetMinPct,
			TargetMaxPct:       m.TargetMaxPct,
			MinAllocationValue: m.MinAllocationValue,
			MaxAssetCount:      m.MaxAssetCount,
		}
	}

	scoreByAsset := map[uuid.UUID]int32{}
	breakdowns := map[uuid.UUID][]domain.CriterionResult{}
	for _, s := range scores {
		scoreByAsset[s.AssetID] = s.Score
		breakdowns[s.AssetID] = s.Breakdown
	}

	contexts, err := l3_service.BuildAssetContexts(l3_service.BuildAssetContextsInput{
		Assets:       assets,
		MarketValues: marketValues,
		Targets:      targets,
		Scores:       scoreByAsset,
	})
	if err != nil {
		return scores, err
	}

	session, err := h.RecommendationService.GenerateSession(l3_service.GenerateSessionInput{
		CorrelationID:     trail.CorrelationID(),
		UserAccountID:     userAccountID,
		CriteriaVersionID: version.CriteriaVersionID,
		Assets:            contexts,
		Breakdowns:        breakdowns,
		TotalInvestable:   totalInvestable,
		BaseCurrency:      user.BaseCurrency,
	})
	if err != nil {
		return scores, fmt.Errorf("failed to generate recommendation session: %w", err)
	}
	result.ItemsGenerated = len(session.Items)

	return scores, nil
}

// persistScores writes the current score per asset and appends the same
// values to the immutable history table.
func (h batchOrchestratorHandler) persistScores(userAccountID uuid.UUID, scores []domain.AssetScoreResult) error {
	current := []*model.AssetScore{}
	history := []*model.AssetScoreHistory{}
	for _, s := range scores {
		breakdown, err := json.Marshal(s.Breakdown)
		if err != nil {
			return err
		}
		current = append(current, &model.AssetScore{
			UserAccountID:     userAccountID,
			AssetID:           s.AssetID,
			Symbol:            s.Symbol,
			Score:             s.Score,
			Breakdown:         string(breakdown),
			CriteriaVersionID: s.CriteriaVersionID,
			CalculatedAt:      s.CalculatedAt,
		})
		history = append(history, &model.AssetScoreHistory{
			UserAccountID:     userAccountID,
			AssetID:           s.AssetID,
			Symbol:            s.Symbol,
			Score:             s.Score,
			Breakdown:         string(breakdown),
			CriteriaVersionID: s.CriteriaVersionID,
			CalculatedAt:      s.CalculatedAt,
		})
	}

	if err := h.AssetScoreRepository.UpsertMany(nil, current); err != nil {
		return err
	}

	return h.AssetScoreRepository.AddHistoryMany(nil, history)
}

// inputsPayload snapshots only the slice of shared market data this user's
// run actually consumed, rendered as fixed-scale strings.
func inputsPayload(version domain.CriteriaVersion, assetIDs []uuid.UUID, symbols []string, shared *domain.SharedBatchContext) domain.InputsCapturedPayload {
	ruleIDs := []uuid.UUID{}
	for _, r := range version.Rules {
		ruleIDs = append(ruleIDs, r.CriterionRuleID)
	}

	priceSnapshot := map[string]string{}
	for _, symbol := range symbols {
		if p, ok := shared.Prices[symbol]; ok {
			priceSnapshot[symbol] = domain.ToFixedString(p.Price, domain.MoneyScale)
		}
	}
	rateSnapshot := map[string]string{}
	for pair, rate := range shared.ExchangeRates {
		rateSnapshot[pair] = rate.String()
	}

	return domain.InputsCapturedPayload{
		CriteriaVersionID: version.CriteriaVersionID,
		RuleIDs:           ruleIDs,
		PriceSnapshot:     priceSnapshot,
		RateSnapshot:      rateSnapshot,
		AssetIDs:          assetIDs,
	}
}

// RuleFromModel maps a persisted rule row to its domain form. Required
// metrics are stored as a comma-separated list.
func RuleFromModel(m model.CriterionRule) domain.CriterionRule {
	rule := domain.CriterionRule{
		CriterionRuleID: m.CriterionRuleID,
		Name:            m.Name,
		Metric:          m.Metric,
		Operator:        domain.RuleOperator(m.Operator),
		Threshold:       m.Threshold,
		ThresholdUpper:  m.ThresholdUpper,
		Points:          m.Points,
		SortOrder:       m.SortOrder,
	}
	if m.RequiredMetrics != nil {
		for _, metric := range strings.Split(*m.RequiredMetrics, ",") {
			metric = strings.TrimSpace(metric)
			if metric != "" {
				rule.RequiredMetrics = append(rule.RequiredMetrics, metric)
			}
		}
	}
	return rule
}
