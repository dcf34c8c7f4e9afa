package repositories

import (
	"context"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
)

// AccountRegistry is the read-only chart of accounts lookup. The chart is
// static reference data; entries and reports resolve codes through it.
type AccountRegistry interface {
	// LookupAccount resolves an account code, returning apperrors.ErrNotFound
	// for unknown codes.
	LookupAccount(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts returns the full chart ordered by account code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
