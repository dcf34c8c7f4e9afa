package services

import (
	"context"

	"github.com/faraway-yachting/charter-ledger/internal/dto"
)

// ClosingSvcFacade converts historical aggregate project P&L into posted
// closing entries. These bypass the draft review step because they represent
// closed fiscal years, not new pending work.
type ClosingSvcFacade interface {
	ImportPriorYear(ctx context.Context, req dto.PriorYearImportRequest, actorID string) (*dto.PriorYearImportResult, error)
}
