package repositories

import (
	"context"
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
)

// RevenueRecognitionRepository defines persistence operations for revenue
// recognition records.
type RevenueRecognitionRepository interface {
	SaveRecognition(ctx context.Context, rec domain.RevenueRecognition) error

	FindRecognitionByID(ctx context.Context, recognitionID string) (*domain.RevenueRecognition, error)

	UpdateRecognition(ctx context.Context, rec domain.RevenueRecognition) error

	// SaveRecognitionWithEntry inserts a recognition record and its posted
	// recognition entry in one transaction, so the pair is never partially
	// visible. Used when a record is recognized at creation time.
	SaveRecognitionWithEntry(ctx context.Context, rec domain.RevenueRecognition, entry domain.JournalEntry) error

	// UpdateRecognitionWithEntry inserts the posted recognition entry and
	// updates the record's recognition fields in one transaction. A failure
	// leaves neither half behind, so a retry cannot duplicate the entry.
	UpdateRecognitionWithEntry(ctx context.Context, rec domain.RevenueRecognition, entry domain.JournalEntry) error

	ListRecognitionsByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.RevenueRecognition, error)

	// ListDueRecognitions returns PENDING records whose charter end date is
	// on or before asOf, for the scheduled recognition sweep.
	ListDueRecognitions(ctx context.Context, asOf time.Time) ([]domain.RevenueRecognition, error)
}
