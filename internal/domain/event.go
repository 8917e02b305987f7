package domain

import (
	"time"

	"github.com/google/uuid"
)

// CalculationEventType is one step of the fixed per-run audit lifecycle.
// Every run that emits CalcStarted must end with exactly one CalcCompleted,
// success or failure - a dangling correlation id is a data-integrity defect.
type CalculationEventType string

const (
	EventType_CalcStarted    CalculationEventType = "CALC_STARTED"
	EventType_InputsCaptured CalculationEventType = "INPUTS_CAPTURED"
	EventType_ScoresComputed CalculationEventType = "SCORES_COMPUTED"
	EventType_CalcCompleted  CalculationEventType = "CALC_COMPLETED"
)

const (
	CalcStatus_Success = "success"
	CalcStatus_Failed  = "failed"
)

// CalculationEvent is an immutable audit fact. Payloads are JSON with all
// monetary values rendered as fixed-scale decimal strings, so a full
// correlation history replays exactly what the run computed.
type CalculationEvent struct {
	CalculationEventID uuid.UUID            `json:"calculationEventID"`
	CorrelationID      uuid.UUID            `json:"correlationID"`
	UserAccountID      uuid.UUID            `json:"userAccountID"`
	EventType          CalculationEventType `json:"eventType"`
	Payload            string               `json:"payload"`
	CreatedAt          time.Time            `json:"createdAt"`
}

// InputsCapturedPayload snapshots everything the run consumed.
type InputsCapturedPayload struct {
	CriteriaVersionID uuid.UUID         `json:"criteriaVersionID"`
	RuleIDs           []uuid.UUID       `json:"ruleIDs"`
	PriceSnapshot     map[string]string `json:"priceSnapshot"`
	RateSnapshot      map[string]string `json:"rateSnapshot"`
	AssetIDs          []uuid.UUID       `json:"assetIDs"`
}

// ScoresComputedPayload records every asset's score and breakdown.
type ScoresComputedPayload struct {
	Scores []AssetScoreResult `json:"scores"`
}

// CalcCompletedPayload is the terminal event body.
type CalcCompletedPayload struct {
	DurationMs   int64   `json:"durationMs"`
	AssetCount   int     `json:"assetCount"`
	Status       string  `json:"status"`
	ErrorMessage *string `json:"errorMessage,omitempty"`
}
