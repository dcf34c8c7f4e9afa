package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portsrepo "github.com/faraway-yachting/charter-ledger/internal/core/ports/repositories"
)

// PgxExchangeRateRepository persists exchange rates.
type PgxExchangeRateRepository struct {
	pool *pgxpool.Pool
}

// NewExchangeRateRepository creates a new repository for exchange rate data.
func NewExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepository {
	return &PgxExchangeRateRepository{pool: pool}
}

var _ portsrepo.ExchangeRateRepository = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts an exchange rate.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	query := `
		INSERT INTO exchange_rates (exchange_rate_id, from_currency_code, to_currency_code, rate,
			date_effective, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		rate.ExchangeRateID,
		rate.FromCurrencyCode,
		rate.ToCurrencyCode,
		rate.Rate,
		rate.DateEffective,
		rate.CreatedAt,
		rate.CreatedBy,
		rate.LastUpdatedAt,
		rate.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert exchange rate %s: %w", rate.ExchangeRateID, err)
	}
	return nil
}

// FindEffectiveRate returns the most recent rate for the pair effective on
// or before the given date.
func (r *PgxExchangeRateRepository) FindEffectiveRate(ctx context.Context, fromCode, toCode string, on time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, from_currency_code, to_currency_code, rate, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE from_currency_code = $1 AND to_currency_code = $2 AND date_effective <= $3
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	var rate domain.ExchangeRate
	err := r.pool.QueryRow(ctx, query, fromCode, toCode, on).Scan(
		&rate.ExchangeRateID,
		&rate.FromCurrencyCode,
		&rate.ToCurrencyCode,
		&rate.Rate,
		&rate.DateEffective,
		&rate.CreatedAt,
		&rate.CreatedBy,
		&rate.LastUpdatedAt,
		&rate.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find rate %s/%s: %w", fromCode, toCode, err)
	}
	return &rate, nil
}
