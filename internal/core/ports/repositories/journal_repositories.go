package repositories

import (
	"context"
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
)

// JournalEntryRepository defines persistence operations for journal entries
// and their lines. Implementations must make an entry's line set and totals
// atomic (never partially visible) and must serialize writes per company so
// concurrent posts cannot race.
type JournalEntryRepository interface {
	// SaveEntry persists a new entry with its lines in one transaction.
	SaveEntry(ctx context.Context, entry domain.JournalEntry) error

	// FindEntryByID retrieves an entry with its lines.
	FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// UpdateEntry replaces an entry's mutable fields and, when lines are
	// present, its full line set, in one transaction.
	UpdateEntry(ctx context.Context, entry domain.JournalEntry) error

	// DeleteEntry removes an entry and its lines.
	DeleteEntry(ctx context.Context, entryID string) error

	// ListEntriesByCompany returns entries for a company, newest first.
	ListEntriesByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error)

	// NextReferenceNumber atomically increments and returns the sequence
	// counter for a (prefix, year) pair. Two concurrent calls must never
	// observe the same value.
	NextReferenceNumber(ctx context.Context, prefix string, year int) (int64, error)

	// PostedAccountActivity aggregates debit and credit sums per account
	// across all posted entries dated on or before asOf. companyID narrows
	// the scan when non-empty. The scan observes a consistent snapshot.
	PostedAccountActivity(ctx context.Context, companyID string, asOf time.Time) ([]domain.AccountActivity, error)
}
