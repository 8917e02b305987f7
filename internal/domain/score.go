package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const SkipReasonMissingFundamental = "missing_fundamental"

// CriterionResult is the outcome of evaluating one rule against one asset.
// A skipped rule (missing required metric) is a first-class state: matched
// is false, zero points, and SkippedReason says why.
type CriterionResult struct {
	CriterionRuleID uuid.UUID        `json:"criterionRuleID"`
	Matched         bool             `json:"matched"`
	PointsAwarded   int32            `json:"pointsAwarded"`
	ActualValue     *decimal.Decimal `json:"actualValue,omitempty"`
	SkippedReason   *string          `json:"skippedReason,omitempty"`
}

// AssetScoreResult is the full scoring output for one asset. Score is the
// unbounded sum of awarded points; the breakdown is exhaustive over the
// version's rules, matched or not.
type AssetScoreResult struct {
	AssetID           uuid.UUID         `json:"assetID"`
	Symbol            string            `json:"symbol"`
	Score             int32             `json:"score"`
	Breakdown         []CriterionResult `json:"breakdown"`
	CriteriaVersionID uuid.UUID         `json:"criteriaVersionID"`
	CalculatedAt      time.Time         `json:"calculatedAt"`
}
