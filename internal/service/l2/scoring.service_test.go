package l2_service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"wealthplan/internal/domain"
	"wealthplan/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newRule(metric string, operator domain.RuleOperator, threshold string, points int32, sortOrder int32) domain.CriterionRule {
	return domain.CriterionRule{
		CriterionRuleID: uuid.New(),
		Name:            metric,
		Metric:          metric,
		Operator:        operator,
		Threshold:       decimal.RequireFromString(threshold),
		Points:          points,
		SortOrder:       sortOrder,
	}
}

func newAsset(symbol string) domain.PortfolioAsset {
	return domain.PortfolioAsset{
		AssetID: uuid.New(),
		Symbol:  symbol,
	}
}

func Test_ScoreAsset(t *testing.T) {
	handler := scoringServiceHandler{}

	t.Run("sums points of matched rules", func(t *testing.T) {
		version := domain.CriteriaVersion{
			CriteriaVersionID: uuid.New(),
			Rules: []domain.CriterionRule{
				newRule("dividend_yield", domain.RuleOperator_GreaterThanEqual, "4.0", 20, 0),
				newRule("pe_ratio", domain.RuleOperator_LessThanEqual, "15", 15, 1),
			},
		}
		metrics := map[string]decimal.Decimal{
			"dividend_yield": decimal.RequireFromString("5.2"),
			"pe_ratio":       decimal.RequireFromString("12.0"),
		}

		out, err := handler.ScoreAsset(version, newAsset("VTI"), metrics)
		require.NoError(t, err)
		require.Equal(t, int32(35), out.Score)
		require.Len(t, out.Breakdown, 2)
		require.True(t, out.Breakdown[0].Matched)
		require.True(t, out.Breakdown[1].Matched)
		require.Equal(t, "5.2", out.Breakdown[0].ActualValue.String())
		require.Equal(t, version.CriteriaVersionID, out.CriteriaVersionID)
	})

	t.Run("unmatched rules stay in the breakdown with zero points", func(t *testing.T) {
		version := domain.CriteriaVersion{
			Rules: []domain.CriterionRule{
				newRule("pe_ratio", domain.RuleOperator_LessThan, "10", 15, 0),
			},
		}
		metrics := map[string]decimal.Decimal{
			"pe_ratio": decimal.RequireFromString("22"),
		}

		out, err := handler.ScoreAsset(version, newAsset("VTI"), metrics)
		require.NoError(t, err)
		require.Equal(t, int32(0), out.Score)
		require.Len(t, out.Breakdown, 1)
		require.False(t, out.Breakdown[0].Matched)
		require.Equal(t, int32(0), out.Breakdown[0].PointsAwarded)
		require.Nil(t, out.Breakdown[0].SkippedReason)
	})

	t.Run("missing fundamental skips the rule instead of failing", func(t *testing.T) {
		version := domain.CriteriaVersion{
			Rules: []domain.CriterionRule{
				newRule("dividend_yield", domain.RuleOperator_GreaterThanEqual, "4.0", 20, 0),
				newRule("pe_ratio", domain.RuleOperator_LessThanEqual, "15", 15, 1),
			},
		}
		metrics := map[string]decimal.Decimal{
			"pe_ratio": decimal.RequireFromString("12"),
		}

		out, err := handler.ScoreAsset(version, newAsset("VXUS"), metrics)
		require.NoError(t, err)
		require.Equal(t, int32(15), out.Score)
		require.Len(t, out.Breakdown, 2)
		require.False(t, out.Breakdown[0].Matched)
		require.NotNil(t, out.Breakdown[0].SkippedReason)
		require.Equal(t, domain.SkipReasonMissingFundamental, *out.Breakdown[0].SkippedReason)
	})

	t.Run("negative points penalize", func(t *testing.T) {
		version := domain.CriteriaVersion{
			Rules: []domain.CriterionRule{
				newRule("dividend_yield", domain.RuleOperator_GreaterThanEqual, "4.0", 20, 0),
				newRule("pe_ratio", domain.RuleOperator_GreaterThan, "40", -10, 1),
			},
		}
		metrics := map[string]decimal.Decimal{
			"dividend_yield": decimal.RequireFromString("4.5"),
			"pe_ratio":       decimal.RequireFromString("55"),
		}

		out, err := handler.ScoreAsset(version, newAsset("ARKK"), metrics)
		require.NoError(t, err)
		require.Equal(t, int32(10), out.Score)
	})

	t.Run("between is inclusive on both bounds", func(t *testing.T) {
		rule := newRule("pe_ratio", domain.RuleOperator_Between, "10", 5, 0)
		rule.ThresholdUpper = util.DecimalPointer(decimal.RequireFromString("20"))
		version := domain.CriteriaVersion{Rules: []domain.CriterionRule{rule}}

		for _, value := range []string{"10", "20", "15"} {
			out, err := handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{
				"pe_ratio": decimal.RequireFromString(value),
			})
			require.NoError(t, err)
			require.Equal(t, int32(5), out.Score, "pe_ratio=%s", value)
		}

		out, err := handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{
			"pe_ratio": decimal.RequireFromString("20.01"),
		})
		require.NoError(t, err)
		require.Equal(t, int32(0), out.Score)
	})

	t.Run("between without upper threshold is an invalid rule", func(t *testing.T) {
		version := domain.CriteriaVersion{
			Rules: []domain.CriterionRule{
				newRule("pe_ratio", domain.RuleOperator_Between, "10", 5, 0),
			},
		}

		_, err := handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{
			"pe_ratio": decimal.RequireFromString("15"),
		})
		require.Error(t, err)

		var invalidErr *domain.InvalidRuleError
		require.True(t, errors.As(err, &invalidErr))
	})

	t.Run("unknown operator is an invalid rule", func(t *testing.T) {
		rule := newRule("pe_ratio", domain.RuleOperator("approximately"), "10", 5, 0)
		version := domain.CriteriaVersion{Rules: []domain.CriterionRule{rule}}

		_, err := handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{
			"pe_ratio": decimal.RequireFromString("15"),
		})
		require.Error(t, err)

		var invalidErr *domain.InvalidRuleError
		require.True(t, errors.As(err, &invalidErr))
		require.Equal(t, rule.CriterionRuleID, invalidErr.RuleID)
	})

	t.Run("exists matches on presence alone", func(t *testing.T) {
		rule := newRule("esg_rating", domain.RuleOperator_Exists, "0", 5, 0)
		version := domain.CriteriaVersion{Rules: []domain.CriterionRule{rule}}

		out, err := handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{
			"esg_rating": decimal.RequireFromString("7"),
		})
		require.NoError(t, err)
		require.Equal(t, int32(5), out.Score)

		out, err = handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{})
		require.NoError(t, err)
		require.Equal(t, int32(0), out.Score)
		require.False(t, out.Breakdown[0].Matched)
	})

	t.Run("required metrics gate evaluation", func(t *testing.T) {
		rule := newRule("dividend_yield", domain.RuleOperator_GreaterThanEqual, "4.0", 20, 0)
		rule.RequiredMetrics = []string{"payout_ratio"}
		version := domain.CriteriaVersion{Rules: []domain.CriterionRule{rule}}

		out, err := handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{
			"dividend_yield": decimal.RequireFromString("5.0"),
		})
		require.NoError(t, err)
		require.Equal(t, int32(0), out.Score)
		require.NotNil(t, out.Breakdown[0].SkippedReason)
	})

	t.Run("derived metric expression over fundamentals", func(t *testing.T) {
		rule := newRule("eps * payout_ratio", domain.RuleOperator_GreaterThan, "2", 10, 0)
		version := domain.CriteriaVersion{Rules: []domain.CriterionRule{rule}}

		out, err := handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{
			"eps":          decimal.RequireFromString("6"),
			"payout_ratio": decimal.RequireFromString("0.5"),
		})
		require.NoError(t, err)
		require.Equal(t, int32(10), out.Score)
		require.True(t, out.Breakdown[0].Matched)

		// an expression referencing an absent fundamental is a skip
		out, err = handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{
			"eps": decimal.RequireFromString("6"),
		})
		require.NoError(t, err)
		require.Equal(t, int32(0), out.Score)
		require.NotNil(t, out.Breakdown[0].SkippedReason)
	})

	t.Run("empty rule list is a valid zero score", func(t *testing.T) {
		out, err := handler.ScoreAsset(domain.CriteriaVersion{}, newAsset("VTI"), nil)
		require.NoError(t, err)
		require.Equal(t, int32(0), out.Score)
		require.Empty(t, out.Breakdown)
	})

	t.Run("breakdown follows sort order regardless of input order", func(t *testing.T) {
		first := newRule("pe_ratio", domain.RuleOperator_LessThan, "20", 5, 0)
		second := newRule("dividend_yield", domain.RuleOperator_GreaterThan, "3", 10, 1)
		version := domain.CriteriaVersion{
			Rules: []domain.CriterionRule{second, first},
		}

		out, err := handler.ScoreAsset(version, newAsset("VTI"), map[string]decimal.Decimal{
			"pe_ratio":       decimal.RequireFromString("15"),
			"dividend_yield": decimal.RequireFromString("4"),
		})
		require.NoError(t, err)
		require.Equal(t, first.CriterionRuleID, out.Breakdown[0].CriterionRuleID)
		require.Equal(t, second.CriterionRuleID, out.Breakdown[1].CriterionRuleID)
	})
}

func Test_ScoreAssets(t *testing.T) {
	handler := scoringServiceHandler{}

	t.Run("preserves input order and scores independently", func(t *testing.T) {
		version := domain.CriteriaVersion{
			Rules: []domain.CriterionRule{
				newRule("dividend_yield", domain.RuleOperator_GreaterThanEqual, "4.0", 20, 0),
			},
		}
		assets := []domain.PortfolioAsset{newAsset("AAA"), newAsset("BBB"), newAsset("CCC")}
		fundamentals := map[string]map[string]decimal.Decimal{
			"AAA": {"dividend_yield": decimal.RequireFromString("5")},
			"BBB": {"dividend_yield": decimal.RequireFromString("1")},
			"CCC": {"dividend_yield": decimal.RequireFromString("4")},
		}

		out, err := handler.ScoreAssets(context.Background(), version, assets, fundamentals)
		require.NoError(t, err)
		require.Len(t, out, 3)
		require.Equal(t, "AAA", out[0].Symbol)
		require.Equal(t, int32(20), out[0].Score)
		require.Equal(t, "BBB", out[1].Symbol)
		require.Equal(t, int32(0), out[1].Score)
		require.Equal(t, "CCC", out[2].Symbol)
		require.Equal(t, int32(20), out[2].Score)
	})

	t.Run("identical inputs give identical outputs", func(t *testing.T) {
		version := domain.CriteriaVersion{
			Rules: []domain.CriterionRule{
				newRule("pe_ratio", domain.RuleOperator_LessThan, "20", 5, 0),
				newRule("dividend_yield", domain.RuleOperator_GreaterThan, "3", 10, 1),
			},
		}
		assets := []domain.PortfolioAsset{newAsset("AAA"), newAsset("BBB")}
		fundamentals := map[string]map[string]decimal.Decimal{
			"AAA": {"pe_ratio": decimal.RequireFromString("15"), "dividend_yield": decimal.RequireFromString("4")},
			"BBB": {"pe_ratio": decimal.RequireFromString("25")},
		}

		first, err := handler.ScoreAssets(context.Background(), version, assets, fundamentals)
		require.NoError(t, err)
		second, err := handler.ScoreAssets(context.Background(), version, assets, fundamentals)
		require.NoError(t, err)

		require.Len(t, first, len(second))
		for i := range first {
			require.Equal(t, first[i].Score, second[i].Score)
			require.Empty(t, cmp.Diff(first[i].Breakdown, second[i].Breakdown))
		}
	})

	t.Run("empty asset list", func(t *testing.T) {
		out, err := handler.ScoreAssets(context.Background(), domain.CriteriaVersion{}, nil, nil)
		require.NoError(t, err)
		require.Empty(t, out)
	})

	t.Run("cancelled context aborts instead of hanging the pool", func(t *testing.T) {
		version := domain.CriteriaVersion{
			Rules: []domain.CriterionRule{
				newRule("dividend_yield", domain.RuleOperator_GreaterThanEqual, "4.0", 20, 0),
			},
		}
		// more assets than workers, so jobs are still queued when the
		// workers observe the cancellation
		assets := []domain.PortfolioAsset{}
		fundamentals := map[string]map[string]decimal.Decimal{}
		for i := 0; i < 50; i++ {
			asset := newAsset(fmt.Sprintf("SYM%02d", i))
			assets = append(assets, asset)
			fundamentals[asset.Symbol] = map[string]decimal.Decimal{
				"dividend_yield": decimal.RequireFromString("5"),
			}
		}

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		out, err := handler.ScoreAssets(ctx, version, assets, fundamentals)
		require.Nil(t, out)
		require.ErrorIs(t, err, context.Canceled)
	})
}
