package services

import (
	"context"
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
	"github.com/shopspring/decimal"
)

// RateProvider resolves a conversion rate into the reporting currency for a
// date, returning apperrors.ErrNotFound when no rate is known.
type RateProvider interface {
	GetRate(ctx context.Context, fromCode string, on time.Time) (decimal.Decimal, error)
}

// ExchangeRateSvcFacade manages stored exchange rates and serves as the
// RateProvider behind currency conversion.
type ExchangeRateSvcFacade interface {
	RateProvider

	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error)
}
