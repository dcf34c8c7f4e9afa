package services

import (
	"context"
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
)

// ReportingSvcFacade generates statements derived from posted journal
// entries. Generators never fail on imbalance; they surface it as data.
type ReportingSvcFacade interface {
	// TrialBalance lists per-account net balances as of a date. companyID
	// narrows the scan when non-empty.
	TrialBalance(ctx context.Context, asOf time.Time, companyID string) (*domain.TrialBalanceReport, error)

	// BalanceSheet sections net balances into Assets/Liabilities/Equity with
	// subtype grouping as of a date.
	BalanceSheet(ctx context.Context, asOf time.Time, companyID string) (*domain.BalanceSheetReport, error)
}
