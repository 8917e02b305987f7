package repository

import (
	"database/sql"
	"errors"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/qrm"
)

type ExchangeRateRepository interface {
	List() ([]model.ExchangeRate, error)
}

type exchangeRateRepositoryHandler struct {
	Db *sql.DB
}

func NewExchangeRateRepository(db *sql.DB) ExchangeRateRepository {
	return exchangeRateRepositoryHandler{db}
}

func (h exchangeRateRepositoryHandler) List() ([]model.ExchangeRate, error) {
	query := table.ExchangeRate.
		SELECT(table.ExchangeRate.AllColumns).
		ORDER_BY(
			table.ExchangeRate.FromCurrency.ASC(),
			table.ExchangeRate.ToCurrency.ASC(),
		)

	out := []model.ExchangeRate{}
	err := query.Query(h.Db, &out)
	if errors.Is(err, qrm.ErrNoRows) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	return out, nil
}
