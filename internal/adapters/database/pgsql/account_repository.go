package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portsrepo "github.com/faraway-yachting/charter-ledger/internal/core/ports/repositories"
)

// PgxAccountRegistry serves the chart of accounts. The chart is seeded by
// migrations and read-only at runtime.
type PgxAccountRegistry struct {
	pool *pgxpool.Pool
}

// NewAccountRegistry creates a new chart of accounts lookup.
func NewAccountRegistry(pool *pgxpool.Pool) portsrepo.AccountRegistry {
	return &PgxAccountRegistry{pool: pool}
}

var _ portsrepo.AccountRegistry = (*PgxAccountRegistry)(nil)

const accountColumns = `code, name, account_type, category, sub_type, normal_balance, currency_code`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var account domain.Account
	err := row.Scan(
		&account.Code,
		&account.Name,
		&account.AccountType,
		&account.Category,
		&account.SubType,
		&account.NormalBalance,
		&account.CurrencyCode,
	)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

// LookupAccount resolves an account code.
func (r *PgxAccountRegistry) LookupAccount(ctx context.Context, code string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE code = $1;`
	account, err := scanAccount(r.pool.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to look up account %s: %w", code, err)
	}
	return account, nil
}

// ListAccounts returns the full chart ordered by code.
func (r *PgxAccountRegistry) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY code;`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}
	return accounts, rows.Err()
}
