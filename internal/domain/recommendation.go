package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SessionValidityWindow bounds how long a generated session may be acted
// on. Expired sessions must never be confirmed.
const SessionValidityWindow = 24 * time.Hour

// RecommendationItem is one ranked, capital-constrained buy suggestion.
// An over-allocated asset always carries a zero RecommendedAmount - the
// zero-buy signal is absolute and never overridden by priority math.
type RecommendationItem struct {
	AssetID           uuid.UUID         `json:"assetID"`
	Symbol            string            `json:"symbol"`
	Priority          decimal.Decimal   `json:"priority"`
	RecommendedAmount decimal.Decimal   `json:"recommendedAmount"`
	IsOverAllocated   bool              `json:"isOverAllocated"`
	Breakdown         []CriterionResult `json:"breakdown,omitempty"`
}

// RecommendationSession groups the items produced by one calculation run.
// The session id doubles as the run's correlation id, linking it to the
// audit trail, the criteria version and the score snapshot it was built
// from.
type RecommendationSession struct {
	SessionID         uuid.UUID            `json:"sessionID"`
	UserAccountID     uuid.UUID            `json:"userAccountID"`
	CriteriaVersionID uuid.UUID            `json:"criteriaVersionID"`
	Items             []RecommendationItem `json:"items"`
	TotalInvestable   decimal.Decimal      `json:"totalInvestable"`
	// Unallocated is nonzero only when minimum-allocation floors were
	// mutually unsatisfiable or no asset was eligible.
	Unallocated  decimal.Decimal `json:"unallocated"`
	BaseCurrency string          `json:"baseCurrency"`
	GeneratedAt  time.Time       `json:"generatedAt"`
	ExpiresAt    time.Time       `json:"expiresAt"`
}

func (s RecommendationSession) IsExpired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
