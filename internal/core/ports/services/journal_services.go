package services

import (
	"context"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
)

// JournalSvcFacade defines the journal entry store operations.
type JournalSvcFacade interface {
	// CreateEntry validates a draft, computes its totals, assigns an id and a
	// reference number, and persists it.
	CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorID string) (*domain.JournalEntry, error)

	// GetEntryByID returns an entry with its lines.
	GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// ListEntries returns a company's entries, newest first.
	ListEntries(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error)

	// UpdateEntry mutates a draft. Posted entries reject mutation with
	// apperrors.ErrState; id and reference number are immutable.
	UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterID string) (*domain.JournalEntry, error)

	// PostEntry transitions a balanced draft to POSTED. Posting is terminal.
	PostEntry(ctx context.Context, entryID string, actorID string) (*domain.JournalEntry, error)

	// DeleteEntry removes a draft. Posted entries reject deletion.
	DeleteEntry(ctx context.Context, entryID string) error

	// ImportPostedEntry persists an entry directly in POSTED state. This is
	// the explicit exception to the draft flow used for historical closing
	// entries; the balance invariant still applies.
	ImportPostedEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error)

	// BuildPostedEntry validates and assembles an already-posted entry,
	// allocating its reference number, without persisting it. Callers that
	// must commit the entry together with another record in one transaction
	// build it here and hand it to the repository that owns that record.
	BuildPostedEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error)
}
