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

type PortfolioRepository interface {
	// ListAssets returns the user's non-ignored holdings. Ignored assets
	// never enter the calculation pipeline.
	ListAssets(userAccountID uuid.UUID) ([]model.PortfolioAsset, error)
}

type portfolioRepositoryHandler struct {
	Db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) PortfolioRepository {
	return portfolioRepositoryHandler{db}
}

func (h portfolioRepositoryHandler) ListAssets(userAccountID uuid.UUID) ([]model.PortfolioAsset, error) {
	query := table.PortfolioAsset.
		SELECT(table.PortfolioAsset.AllColumns).
		WHERE(postgres.AND(
			table.PortfolioAsset.UserAccountID.EQ(postgres.UUID(userAccountID)),
			table.PortfolioAsset.IsIgnored.IS_FALSE(),
		)).
		ORDER_BY(table.PortfolioAsset.Symbol.ASC())

	out := []model.PortfolioAsset{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}
