package services

import (
	"context"
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PLSvcFacade builds income statements from external source documents,
// gated by revenue-recognition status of each document's service period.
type PLSvcFacade interface {
	// ProfitAndLoss builds the company-level statement for a period.
	ProfitAndLoss(ctx context.Context, companyID string, from, to time.Time) (*domain.ProfitAndLossReport, error)

	// ProjectPL buckets one project's documents into the twelve fiscal
	// months (Nov-Oct) of fiscalYear ("YYYY-YYYY").
	ProjectPL(ctx context.Context, projectID string, fiscalYear string, managementFeePct decimal.Decimal) (*domain.ProjectPLReport, error)
}

// DocumentSource is the external document system consumed by P&L
// generation. Failures should be treated by callers as an empty period,
// not a report crash.
type DocumentSource interface {
	FetchByDateRange(ctx context.Context, companyID string, from, to time.Time) ([]domain.SourceDocument, error)
}
