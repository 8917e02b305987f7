package repository

import (
	"database/sql"
	"errors"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"
)

type PriceRepository interface {
	// ListLatest returns the most recent stored price per symbol. Price
	// acquisition itself lives outside this system; we only consume what
	// the ingestion jobs have already written.
	ListLatest() ([]model.LatestPrice, error)
}

type priceRepositoryHandler struct {
	Db *sql.DB
}

func NewPriceRepository(db *sql.DB) PriceRepository {
	return priceRepositoryHandler{db}
}

func (h priceRepositoryHandler) ListLatest() ([]model.LatestPrice, error) {
	query := table.LatestPrice.
		SELECT(table.LatestPrice.AllColumns).
		ORDER_BY(table.LatestPrice.Symbol.ASC())

	out := []model.LatestPrice{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}
