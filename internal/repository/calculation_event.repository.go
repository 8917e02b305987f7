package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

// CalculationEventRepository is append-only by construction: there is no
// update or delete operation, and none may ever be added. The full history
// for a correlation id is the replayable audit record of one run.
type CalculationEventRepository interface {
	Append(tx *sql.Tx, event model.CalculationEvent) (*model.CalculationEvent, error)
	ListByCorrelationID(correlationID uuid.UUID) ([]model.CalculationEvent, error)
}

type calculationEventRepositoryHandler struct {
	Db *sql.DB
}

func NewCalculationEventRepository(db *sql.DB) CalculationEventRepository {
	return calculationEventRepositoryHandler{db}
}

func (h calculationEventRepositoryHandler) Append(tx *sql.Tx, event model.CalculationEvent) (*model.CalculationEvent, error) {
	event.CreatedAt = time.Now().UTC()

	query := table.CalculationEvent.
		INSERT(table.CalculationEvent.MutableColumns).
		MODEL(event).
		RETURNING(table.CalculationEvent.AllColumns)

	var db qrm.Queryable = h.Db
	if tx != nil {
		db = tx
	}

	out := model.CalculationEvent{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to append calculation event %s: %w", event.EventType, err)
	}

	return &out, nil
}

func (h calculationEventRepositoryHandler) ListByCorrelationID(correlationID uuid.UUID) ([]model.CalculationEvent, error) {
	query := table.CalculationEvent.
		SELECT(table.CalculationEvent.AllColumns).
		WHERE(table.CalculationEvent.CorrelationID.EQ(postgres.UUID(correlationID))).
		ORDER_BY(table.CalculationEvent.CreatedAt.ASC())

	out := []model.CalculationEvent{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}
