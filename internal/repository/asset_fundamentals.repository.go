package repository

import (
	"database/sql"
	"errors"
	"wealthplan/internal/db/models/postgres/public/model"
	"wealthplan/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
	"github.com/shopspring/decimal"
)

type AssetFundamentalsRepository interface {
	// GetManyBySymbols returns the latest stored fundamentals as a
	// metric map per symbol. A symbol with no rows is simply absent -
	// the scoring engine turns missing metrics into skips, not errors.
	GetManyBySymbols(symbols []string) (map[string]map[string]decimal.Decimal, error)
}

type assetFundamentalsRepositoryHandler struct {
	Db *sql.DB
}

func NewAssetFundamentalsRepository(db *sql.DB) AssetFundamentalsRepository {
	return assetFundamentalsRepositoryHandler{db}
}

func (h assetFundamentalsRepositoryHandler) GetManyBySymbols(symbols []string) (map[string]map[string]decimal.Decimal, error) {
	if len(symbols) == 0 {
		return map[string]map[string]decimal.Decimal{}, nil
	}

	symbolExpressions := []postgres.Expression{}
	for _, s := range symbols {
		symbolExpressions = append(symbolExpressions, postgres.String(s))
	}

	query := table.AssetFundamental.
		SELECT(table.AssetFundamental.AllColumns).
		WHERE(table.AssetFundamental.Symbol.IN(symbolExpressions...)).
		ORDER_BY(
			table.AssetFundamental.Symbol.ASC(),
			table.AssetFundamental.AsOf.ASC(),
		)

	rows := []model.AssetFundamental{}
	err := query.Query(h.Db, &rows)
	if errors.Is(err, qrm.ErrNoRows) {
		return map[string]map[string]decimal.Decimal{}, nil
	} else if err != nil {
		return nil, err
	}

	// later as_of rows win because of the sort order
	out := map[string]map[string]decimal.Decimal{}
	for _, row := range rows {
		if _, ok := out[row.Symbol]; !ok {
			out[row.Symbol] = map[string]decimal.Decimal{}
		}
		out[row.Symbol][row.Metric] = row.Value
	}

	return out, nil
}
