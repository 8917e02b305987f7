package l2_service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
	"wealthplan/internal/domain"

	"github.com/maja42/goval"
	"github.com/shopspring/decimal"
)

// ScoringService evaluates a criteria version's rules against each asset's
// fundamentals. Scoring is a pure function of its inputs: the same rules
// and the same fundamentals always produce the same scores and breakdowns,
// with CalculatedAt as the only wall-clock dependence.
type ScoringService interface {
	ScoreAssets(ctx context.Context, version domain.CriteriaVersion, assets []domain.PortfolioAsset, fundamentals map[string]map[string]decimal.Decimal) ([]domain.AssetScoreResult, error)
	ScoreAsset(version domain.CriteriaVersion, asset domain.PortfolioAsset, metrics map[string]decimal.Decimal) (*domain.AssetScoreResult, error)
}

type scoringServiceHandler struct{}

func NewScoringService() ScoringService {
	return scoringServiceHandler{}
}

type scoreWorkResult struct {
	index  int
	result *domain.AssetScoreResult
	err    error
}

// ScoreAssets fans asset evaluation out over a small worker pool. Output
// order matches input order regardless of scheduling; a single invalid
// rule fails the whole call, since the rule set is shared.
func (h scoringServiceHandler) ScoreAssets(ctx context.Context, version domain.CriteriaVersion, assets []domain.PortfolioAsset, fundamentals map[string]map[string]decimal.Decimal) ([]domain.AssetScoreResult, error) {
	if len(assets) == 0 {
		return []domain.AssetScoreResult{}, nil
	}

	type workInput struct {
		index int
		asset domain.PortfolioAsset
	}

	inputCh := make(chan workInput, len(assets))
	resultCh := make(chan scoreWorkResult, len(assets))
	numGoroutines := 10
	if numGoroutines > len(assets) {
		numGoroutines = len(assets)
	}

	var wg sync.WaitGroup
	for i, a := range assets {
		wg.Add(1)
		inputCh <- workInput{index: i, asset: a}
	}
	close(inputCh)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			for {
				select {
				case <-ctx.Done():
					// drain so the collector's wg.Wait can close resultCh
					for range inputCh {
						wg.Done()
					}
					return
				case input, ok := <-inputCh:
					if !ok {
						return
					}
					res, err := h.ScoreAsset(version, input.asset, fundamentals[input.asset.Symbol])
					resultCh <- scoreWorkResult{
						index:  input.index,
						result: res,
						err:    err,
					}
					wg.Done()
				}
			}
		}()
	}

	go func() {
		wg.Wait()
		close(resultCh)
	}()

	out := make([]domain.AssetScoreResult, len(assets))
	for res := range resultCh {
		if res.err != nil {
			return nil, fmt.Errorf("failed to score %s: %w", assets[res.index].Symbol, res.err)
		}
		out[res.index] = *res.result
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}

// ScoreAsset evaluates every rule in sortOrder. The breakdown is exhaustive
// over the rule list - skipped and unmatched rules are recorded, not
// dropped. An empty rule list is a valid zero score.
func (h scoringServiceHandler) ScoreAsset(version domain.CriteriaVersion, asset domain.PortfolioAsset, metrics map[string]decimal.Decimal) (*domain.AssetScoreResult, error) {
	rules := make([]domain.CriterionRule, len(version.Rules))
	copy(rules, version.Rules)
	sort.SliceStable(rules, func(i, j int) bool {
		return rules[i].SortOrder < rules[j].SortOrder
	})

	var score int32
	breakdown := []domain.CriterionResult{}
	for _, rule := range rules {
		result, err := evaluateRule(rule, metrics)
		if err != nil {
			return nil, err
		}
		score += result.PointsAwarded
		breakdown = append(breakdown, *result)
	}

	return &domain.AssetScoreResult{
		AssetID:           asset.AssetID,
		Symbol:            asset.Symbol,
		Score:             score,
		Breakdown:         breakdown,
		CriteriaVersionID: version.CriteriaVersionID,
		CalculatedAt:      time.Now().UTC(),
	}, nil
}

func skippedResult(rule domain.CriterionRule) *domain.CriterionResult {
	reason := domain.SkipReasonMissingFundamental
	return &domain.CriterionResult{
		CriterionRuleID: rule.CriterionRuleID,
		Matched:         false,
		PointsAwarded:   0,
		SkippedReason:   &reason,
	}
}

func evaluateRule(rule domain.CriterionRule, metrics map[string]decimal.Decimal) (*domain.CriterionResult, error) {
	for _, required := range rule.RequiredMetrics {
		if _, ok := metrics[required]; !ok {
			return skippedResult(rule), nil
		}
	}

	actual, ok, err := resolveMetric(rule.Metric, metrics)
	if err != nil {
		return nil, err
	}

	if rule.Operator == domain.RuleOperator_Exists {
		result := &domain.CriterionResult{
			CriterionRuleID: rule.CriterionRuleID,
			Matched:         ok,
		}
		if ok {
			result.ActualValue = &actual
			result.PointsAwarded = rule.Points
		}
		return result, nil
	}

	if !ok {
		return skippedResult(rule), nil
	}

	matched, err := compare(rule, actual)
	if err != nil {
		return nil, err
	}

	result := &domain.CriterionResult{
		CriterionRuleID: rule.CriterionRuleID,
		Matched:         matched,
		ActualValue:     &actual,
	}
	if matched {
		result.PointsAwarded = rule.Points
	}

	return result, nil
}

func compare(rule domain.CriterionRule, actual decimal.Decimal) (bool, error) {
	switch rule.Operator {
	case domain.RuleOperator_GreaterThan:
		return actual.GreaterThan(rule.Threshold), nil
	case domain.RuleOperator_LessThan:
		return actual.LessThan(rule.Threshold), nil
	case domain.RuleOperator_GreaterThanEqual:
		return actual.GreaterThanOrEqual(rule.Threshold), nil
	case domain.RuleOperator_LessThanEqual:
		return actual.LessThanOrEqual(rule.Threshold), nil
	case domain.RuleOperator_Equals:
		return actual.Equal(rule.Threshold), nil
	case domain.RuleOperator_Between:
		if rule.ThresholdUpper == nil {
			return false, &domain.InvalidRuleError{
				RuleID: rule.CriterionRuleID,
				Reason: "between requires an upper threshold",
			}
		}
		return actual.GreaterThanOrEqual(rule.Threshold) && actual.LessThanOrEqual(*rule.ThresholdUpper), nil
	default:
		// a persisted rule with an operator we don't know is corrupt
		// data, not a skip condition
		return false, &domain.InvalidRuleError{
			RuleID: rule.CriterionRuleID,
			Reason: fmt.Sprintf("unknown operator %q", rule.Operator),
		}
	}
}

// resolveMetric looks the metric up as a plain fundamentals key, falling
// back to goval expression evaluation for derived metrics like
// "eps * payout_ratio". A missing key or missing expression variable
// reports not-ok so the rule is skipped, never failed.
func resolveMetric(metric string, metrics map[string]decimal.Decimal) (decimal.Decimal, bool, error) {
	if v, ok := metrics[metric]; ok {
		return v, true, nil
	}
	if !isExpression(metric) {
		return decimal.Zero, false, nil
	}

	variables := map[string]interface{}{}
	for name, value := range metrics {
		variables[name] = value.InexactFloat64()
	}

	eval := goval.NewEvaluator()
	result, err := eval.Evaluate(metric, variables, nil)
	if err != nil {
		// expressions referencing absent fundamentals behave exactly
		// like an absent plain metric
		return decimal.Zero, false, nil
	}

	switch r := result.(type) {
	case float64:
		return decimal.NewFromFloat(r), true, nil
	case int:
		return decimal.NewFromInt(int64(r)), true, nil
	default:
		return decimal.Zero, false, fmt.Errorf("derived metric %q evaluated to non-numeric %T", metric, result)
	}
}

func isExpression(metric string) bool {
	return strings.ContainsAny(metric, "+-*/() ")
}
