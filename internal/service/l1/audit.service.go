package l1_service

import (
	"encoding/json"
	"fmt"
	"time"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/domain"
	"wealthplan/internal/repository"

	"github.com/google/uuid"
)

// AuditTrailService issues the per-run audit lifecycle. Appends are
// synchronous with the calculation step that triggers them, so the log can
// never lag behind the run's observable side effects.
type AuditTrailService interface {
	Begin(userAccountID uuid.UUID, correlationID uuid.UUID) (*RunTrail, error)
	ListEvents(correlationID uuid.UUID) ([]domain.CalculationEvent, error)
}

type auditTrailServiceHandler struct {
	EventRepository repository.CalculationEventRepository
}

func NewAuditTrailService(eventRepository repository.CalculationEventRepository) AuditTrailService {
	return auditTrailServiceHandler{EventRepository: eventRepository}
}

// RunTrail walks one correlation id through the fixed event lifecycle
// CALC_STARTED -> INPUTS_CAPTURED -> SCORES_COMPUTED -> CALC_COMPLETED.
// Out-of-order emission is a programming error, surfaced as an error
// rather than a corrupted trail. Complete may follow any stage so a
// failed run always gets its terminal event.
type RunTrail struct {
	correlationID uuid.UUID
	userAccountID uuid.UUID
	repo          repository.CalculationEventRepository
	lastEmitted   domain.CalculationEventType
	startedAt     time.Time
	completed     bool
}

func (h auditTrailServiceHandler) Begin(userAccountID uuid.UUID, correlationID uuid.UUID) (*RunTrail, error) {
	trail := &RunTrail{
		correlationID: correlationID,
		userAccountID: userAccountID,
		repo:          h.EventRepository,
		startedAt:     time.Now().UTC(),
	}

	payload, err := json.Marshal(map[string]string{
		"correlationID": correlationID.String(),
		"userID":        userAccountID.String(),
		"timestamp":     trail.startedAt.Format(time.RFC3339Nano),
	})
	if err != nil {
		return nil, err
	}

	err = trail.append(domain.EventType_CalcStarted, string(payload))
	if err != nil {
		return nil, err
	}

	return trail, nil
}

func (h auditTrailServiceHandler) ListEvents(correlationID uuid.UUID) ([]domain.CalculationEvent, error) {
	rows, err := h.EventRepository.ListByCorrelationID(correlationID)
	if err != nil {
		return nil, fmt.Errorf("failed to list events for correlation %s: %w", correlationID.String(), err)
	}

	out := []domain.CalculationEvent{}
	for _, row := range rows {
		out = append(out, domain.CalculationEvent{
			CalculationEventID: row.CalculationEventID,
			CorrelationID:      row.CorrelationID,
			UserAccountID:      row.UserAccountID,
			EventType:          domain.CalculationEventType(row.EventType),
			Payload:            row.Payload,
			CreatedAt:          row.CreatedAt,
		})
	}

	return out, nil
}

func (t *RunTrail) CorrelationID() uuid.UUID {
	return t.correlationID
}

func (t *RunTrail) CaptureInputs(payload domain.InputsCapturedPayload) error {
	if t.lastEmitted != domain.EventType_CalcStarted {
		return fmt.Errorf("cannot capture inputs after %s", t.lastEmitted)
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return t.append(domain.EventType_InputsCaptured, string(body))
}

func (t *RunTrail) RecordScores(scores []domain.AssetScoreResult) error {
	if t.lastEmitted != domain.EventType_InputsCaptured {
		return fmt.Errorf("cannot record scores after %s", t.lastEmitted)
	}
	body, err := json.Marshal(domain.ScoresComputedPayload{Scores: scores})
	if err != nil {
		return err
	}
	return t.append(domain.EventType_ScoresComputed, string(body))
}

// Complete emits the terminal event. It is valid from any stage - a run
// that failed before capturing inputs still gets closed out - but only
// once per trail.
func (t *RunTrail) Complete(assetCount int, runErr error) error {
	if t.completed {
		return fmt.Errorf("calculation %s already completed", t.correlationID.String())
	}

	payload := domain.CalcCompletedPayload{
		DurationMs: time.Since(t.startedAt).Milliseconds(),
		AssetCount: assetCount,
		Status:     domain.CalcStatus_Success,
	}
	if runErr != nil {
		payload.Status = domain.CalcStatus_Failed
		msg := runErr.Error()
		payload.ErrorMessage = &msg
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	err = t.append(domain.EventType_CalcCompleted, string(body))
	if err != nil {
		return err
	}
	t.completed = true

	return nil
}

func (t *RunTrail) append(eventType domain.CalculationEventType, payload string) error {
	_, err := t.repo.Append(nil, model.CalculationEvent{
		CorrelationID: t.correlationID,
		UserAccountID: t.userAccountID,
		EventType:     string(eventType),
		Payload:       payload,
	})
	if err != nil {
		return fmt.Errorf("failed to append %s event: %w", eventType, err)
	}
	t.lastEmitted = eventType

	return nil
}
