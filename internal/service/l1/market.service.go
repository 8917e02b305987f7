package l1_service

import (
	"fmt"
	"wealthplan/internal/domain"
	"wealthplan/internal/repository"

	"github.com/shopspring/decimal"
)

// MarketDataService assembles the read-only shared context for a batch run:
// latest prices and exchange rates, fetched once and reused for every user.
type MarketDataService interface {
	LoadSharedContext() (*domain.SharedBatchContext, error)
	MarketValue(asset domain.PortfolioAsset, shared *domain.SharedBatchContext, baseCurrency string) (decimal.Decimal, error)
}

type marketDataServiceHandler struct {
	PriceRepository        repository.PriceRepository
	ExchangeRateRepository repository.ExchangeRateRepository
}

func NewMarketDataService(
	priceRepository repository.PriceRepository,
	exchangeRateRepository repository.ExchangeRateRepository,
) MarketDataService {
	return marketDataServiceHandler{
		PriceRepository:        priceRepository,
		ExchangeRateRepository: exchangeRateRepository,
	}
}

func (h marketDataServiceHandler) LoadSharedContext() (*domain.SharedBatchContext, error) {
	prices, err := h.PriceRepository.ListLatest()
	if err != nil {
		return nil, fmt.Errorf("failed to load latest prices: %w", err)
	}

	rates, err := h.ExchangeRateRepository.List()
	if err != nil {
		return nil, fmt.Errorf("failed to load exchange rates: %w", err)
	}

	out := &domain.SharedBatchContext{
		Prices:        map[string]domain.PricePoint{},
		ExchangeRates: map[string]decimal.Decimal{},
	}
	for _, p := range prices {
		out.Prices[p.Symbol] = domain.PricePoint{
			Price:    p.Price,
			Currency: p.Currency,
		}
	}
	for _, r := range rates {
		out.ExchangeRates[RatePairKey(r.FromCurrency, r.ToCurrency)] = r.Rate
	}

	return out, nil
}

func RatePairKey(from, to string) string {
	return from + "/" + to
}

// ConvertAmount converts between currencies using the stored pair or the
// inverse of the reverse pair. Same-currency conversion is the identity.
func ConvertAmount(amount decimal.Decimal, from, to string, rates map[string]decimal.Decimal) (decimal.Decimal, error) {
	if from == to {
		return amount, nil
	}
	if rate, ok := rates[RatePairKey(from, to)]; ok {
		return amount.Mul(rate), nil
	}
	if reverse, ok := rates[RatePairKey(to, from)]; ok {
		converted, err := domain.Divide(amount, reverse)
		if err != nil {
			return decimal.Zero, fmt.Errorf("invalid exchange rate for %s: %w", RatePairKey(to, from), err)
		}
		return converted, nil
	}
	return decimal.Zero, fmt.Errorf("no exchange rate available for %s", RatePairKey(from, to))
}

func (h marketDataServiceHandler) MarketValue(asset domain.PortfolioAsset, shared *domain.SharedBatchContext, baseCurrency string) (decimal.Decimal, error) {
	price, ok := shared.Prices[asset.Symbol]
	if !ok {
		return decimal.Zero, fmt.Errorf("no price available for %s", asset.Symbol)
	}

	value := asset.Quantity.Mul(price.Price)
	return ConvertAmount(value, price.Currency, baseCurrency, shared.ExchangeRates)
}
