package repositories

import (
	"context"
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
)

// ExchangeRateRepository defines persistence operations for exchange rates.
type ExchangeRateRepository interface {
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// FindEffectiveRate returns the most recent rate for the currency pair
	// effective on or before the given date, or apperrors.ErrNotFound.
	FindEffectiveRate(ctx context.Context, fromCode, toCode string, on time.Time) (*domain.ExchangeRate, error)
}
