package services

import (
	"context"
	"errors"

	"github.com/sbilibin2017/gw-wallet-ledger/internal/logger"
	"github.com/sbilibin2017/gw-wallet-ledger/internal/models"
	"github.com/shopspring/decimal"
)

// ErrUnknownCurrency is returned for currency codes outside the supported set.
var ErrUnknownCurrency = errors.New("unknown currency code")

// CurrencyService resolves exchange rates for cross-currency settlement,
// preferring the cache over the currency collaborator. Collaborator rates
// refresh the cache on every miss.
type CurrencyService struct {
	collaborator ExchangeRateReader
	cache        ExchangeRateCacheReader
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(collaborator ExchangeRateReader, cache ExchangeRateCacheReader) *CurrencyService {
	return &CurrencyService{collaborator: collaborator, cache: cache}
}

// GetRate returns the exchange rate from one currency to another.
// Same-currency requests resolve to 1 without touching the cache or the
// collaborator.
func (s *CurrencyService) GetRate(ctx context.Context, fromCurrency, toCurrency string) (decimal.Decimal, error) {
	if !models.IsSupportedCurrency(fromCurrency) || !models.IsSupportedCurrency(toCurrency) {
		return decimal.Zero, ErrUnknownCurrency
	}
	if fromCurrency == toCurrency {
		return decimal.NewFromInt(1), nil
	}

	if s.cache != nil {
		rate, err := s.cache.GetExchangeRateForCurrency(ctx, fromCurrency, toCurrency)
		if err == nil {
			return decimal.NewFromFloat(rate), nil
		}
	}

	rate, err := s.collaborator.GetExchangeRateForCurrency(ctx, fromCurrency, toCurrency)
	if err != nil {
		return decimal.Zero, err
	}

	if s.cache != nil {
		if err := s.cache.SetExchangeRateForCurrency(ctx, fromCurrency, toCurrency, rate); err != nil {
			logger.Log.Errorw("failed to cache exchange rate", "from", fromCurrency, "to", toCurrency, "error", err)
		}
	}

	return decimal.NewFromFloat(rate), nil
}
