package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// UserRunState tracks one user's progress through the batch pipeline.
type UserRunState string

const (
	UserRunState_Pending      UserRunState = "PENDING"
	UserRunState_Scoring      UserRunState = "SCORING"
	UserRunState_Scored       UserRunState = "SCORED"
	UserRunState_Recommending UserRunState = "RECOMMENDING"
	UserRunState_Completed    UserRunState = "COMPLETED"
	UserRunState_Failed       UserRunState = "FAILED"
	UserRunState_Skipped      UserRunState = "SKIPPED"
)

// SharedBatchContext is fetched once per batch run and shared read-only
// across every user in the batch.
type SharedBatchContext struct {
	// Prices keyed by symbol, in the price's native currency.
	Prices map[string]PricePoint
	// ExchangeRates keyed by "FROM/TO" currency pair.
	ExchangeRates map[string]decimal.Decimal
}

type PricePoint struct {
	Price    decimal.Decimal
	Currency string
}

// UserRunResult is the per-user outcome the orchestrator aggregates.
type UserRunResult struct {
	UserAccountID  uuid.UUID
	CorrelationID  uuid.UUID
	State          UserRunState
	AssetsScored   int
	ItemsGenerated int
	SkipReason     string
	Err            error
}

// BatchResult summarizes one orchestrator run.
type BatchResult struct {
	UsersProcessed int
	UsersSuccess   int
	UsersFailed    int
	UsersSkipped   int
	TotalScored    int
	TotalGenerated int
	// MeanScore/ScoreStdev summarize the distribution of all scores
	// computed in the batch, for observability only.
	MeanScore  float64
	ScoreStdev float64
	PerUser    []UserRunResult
}
