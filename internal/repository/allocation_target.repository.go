package repository

import (
	"database/sql"
	"errors"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/google/uuid"
)

type AllocationTargetRepository interface {
	// ListForUser returns the user's per-class targets. A class without a
	// row has no constraint; callers apply the open defaults.
	ListForUser(userAccountID uuid.UUID) ([]model.AllocationTarget, error)
}

type allocationTargetRepositoryHandler struct {
	Db *sql.DB
}

func NewAllocationTargetRepository(db *sql.DB) AllocationTargetRepository {
	return allocationTargetRepositoryHandler{db}
}

func (h allocationTargetRepositoryHandler) ListForUser(userAccountID uuid.UUID) ([]model.AllocationTarget, error) {
	query := table.AllocationTarget.
		SELECT(table.AllocationTarget.AllColumns).
		WHERE(table.AllocationTarget.UserAccountID.EQ(postgres.UUID(userAccountID)))

	out := []model.AllocationTarget{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}
