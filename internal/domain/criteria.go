package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RuleOperator is the comparison a criterion rule applies to a metric.
type RuleOperator string

const (
	RuleOperator_GreaterThan      RuleOperator = "gt"
	RuleOperator_LessThan         RuleOperator = "lt"
	RuleOperator_GreaterThanEqual RuleOperator = "gte"
	RuleOperator_LessThanEqual    RuleOperator = "lte"
	RuleOperator_Between          RuleOperator = "between"
	RuleOperator_Equals           RuleOperator = "equals"
	RuleOperator_Exists           RuleOperator = "exists"
)

// InvalidRuleError indicates a persisted rule that cannot be evaluated,
// e.g. an operator we don't recognize. This is a data-integrity bug, not a
// skip condition - scoring fails hard for the affected run.
type InvalidRuleError struct {
	RuleID uuid.UUID
	Reason string
}

func (e *InvalidRuleError) Error() string {
	return fmt.Sprintf("invalid criterion rule %s: %s", e.RuleID.String(), e.Reason)
}

// CriterionRule is a single scoring rule within a criteria version. Rules
// are immutable once their version is published; edits create a new version.
type CriterionRule struct {
	CriterionRuleID uuid.UUID
	Name            string
	// Metric is either a fundamentals key (e.g. "pe_ratio") or a derived
	// expression over fundamentals (e.g. "eps * payout_ratio").
	Metric          string
	Operator        RuleOperator
	Threshold       decimal.Decimal
	ThresholdUpper  *decimal.Decimal // only set for between
	Points          int32            // -100..100, negative penalizes
	RequiredMetrics []string
	SortOrder       int32
}

// CriteriaVersion is an immutable, append-only published rule set.
type CriteriaVersion struct {
	CriteriaVersionID uuid.UUID
	UserAccountID     uuid.UUID
	Version           int32
	Rules             []CriterionRule
	PublishedAt       time.Time
}
