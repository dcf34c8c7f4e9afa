package services

import (
	"context"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portsrepo "github.com/faraway-yachting/charter-ledger/internal/core/ports/repositories"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
)

// accountService exposes the chart of accounts. The chart is static
// reference data seeded by migrations, so this is a thin read-through.
type accountService struct {
	BaseService
	registry portsrepo.AccountRegistry
}

// NewAccountService creates a new account service.
func NewAccountService(registry portsrepo.AccountRegistry) portssvc.AccountSvcFacade {
	return &accountService{registry: registry}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

func (s *accountService) GetAccountByCode(ctx context.Context, code string) (*domain.Account, error) {
	return s.registry.LookupAccount(ctx, code)
}

func (s *accountService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	return s.registry.ListAccounts(ctx)
}
