package services

import (
	"context"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
)

// AccountSvcFacade exposes the chart of accounts.
type AccountSvcFacade interface {
	// GetAccountByCode resolves one account code.
	GetAccountByCode(ctx context.Context, code string) (*domain.Account, error)

	// ListAccounts returns the full chart ordered by account code.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}
