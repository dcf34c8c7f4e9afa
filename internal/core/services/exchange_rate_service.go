package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portsrepo "github.com/faraway-yachting/charter-ledger/internal/core/ports/repositories"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
)

// exchangeRateService manages stored rates and resolves conversion rates
// into the reporting currency for report generation.
type exchangeRateService struct {
	BaseService
	rateRepo portsrepo.ExchangeRateRepository
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepository) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{rateRepo: rateRepo}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

// CreateExchangeRate records a conversion rate effective from a date.
func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorID string) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	from := strings.ToUpper(req.FromCurrencyCode)
	to := strings.ToUpper(req.ToCurrencyCode)
	if from == to {
		return nil, fmt.Errorf("%w: from and to currency codes cannot be the same", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	rate := domain.ExchangeRate{
		ExchangeRateID:   uuid.NewString(),
		FromCurrencyCode: from,
		ToCurrencyCode:   to,
		Rate:             req.Rate,
		DateEffective:    req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to save exchange rate: %w", err)
	}
	return &rate, nil
}

// GetRate resolves the reporting-currency conversion rate for a currency on
// a date, returning apperrors.ErrNotFound when no stored rate applies.
func (s *exchangeRateService) GetRate(ctx context.Context, fromCode string, on time.Time) (decimal.Decimal, error) {
	fromCode = strings.ToUpper(fromCode)
	if len(fromCode) != 3 {
		return decimal.Zero, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	if fromCode == domain.ReportingCurrency {
		return decimal.NewFromInt(1), nil
	}

	rate, err := s.rateRepo.FindEffectiveRate(ctx, fromCode, domain.ReportingCurrency, on)
	if err != nil {
		return decimal.Zero, err
	}
	return rate.Rate, nil
}
