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

type AssetScoreRepository interface {
	// UpsertMany replaces the current score row per asset. History rows
	// are written separately via AddHistoryMany and never touched again.
	UpsertMany(tx *sql.Tx, in []*model.AssetScore) error
	AddHistoryMany(tx *sql.Tx, in []*model.AssetScoreHistory) error
	ListForUser(userAccountID uuid.UUID) ([]model.AssetScore, error)
}

type assetScoreRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetScoreRepository(db *sql.DB) AssetScoreRepository {
	return assetScoreRepositoryHandler{db}
}

func (h assetScoreRepositoryHandler) UpsertMany(tx *sql.Tx, in []*model.AssetScore) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.CreatedAt = time.Now().UTC()
		x.UpdatedAt = time.Now().UTC()
	}

	query := table.AssetScore.
		INSERT(table.AssetScore.MutableColumns).
		MODELS(in).
		ON_CONFLICT(
			table.AssetScore.UserAccountID,
			table.AssetScore.AssetID,
		).
		DO_UPDATE(
			postgres.SET(
				table.AssetScore.Score.SET(table.AssetScore.EXCLUDED.Score),
				table.AssetScore.Breakdown.SET(table.AssetScore.EXCLUDED.Breakdown),
				table.AssetScore.CriteriaVersionID.SET(table.AssetScore.EXCLUDED.CriteriaVersionID),
				table.AssetScore.CalculatedAt.SET(table.AssetScore.EXCLUDED.CalculatedAt),
				table.AssetScore.UpdatedAt.SET(table.AssetScore.EXCLUDED.UpdatedAt),
			),
		)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to upsert asset scores: %w", err)
	}

	return nil
}

func (h assetScoreRepositoryHandler) AddHistoryMany(tx *sql.Tx, in []*model.AssetScoreHistory) error {
	if len(in) == 0 {
		return nil
	}

	for _, x := range in {
		x.CreatedAt = time.Now().UTC()
	}

	query := table.AssetScoreHistory.
		INSERT(table.AssetScoreHistory.MutableColumns).
		MODELS(in)

	var db qrm.Executable = h.Db
	if tx != nil {
		db = tx
	}

	_, err := query.Exec(db)
	if err != nil {
		return fmt.Errorf("failed to insert asset score history: %w", err)
	}

	return nil
}

func (h assetScoreRepositoryHandler) ListForUser(userAccountID uuid.UUID) ([]model.AssetScore, error) {
	query := table.AssetScore.
		SELECT(table.AssetScore.AllColumns).
		WHERE(table.AssetScore.UserAccountID.EQ(postgres.UUID(userAccountID))).
		ORDER_BY(table.AssetScore.Symbol.ASC())

	out := []model.AssetScore{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}
