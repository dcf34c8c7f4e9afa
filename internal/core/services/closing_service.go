package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
)

// Equity accounts the closing entries move prior-year results between.
const (
	CurrentYearEarningsAccount        = "3200" // Current Year Earnings
	RetainedEarningsPriorYearsAccount = "3100" // Retained Earnings - Prior Years
)

// closingService converts historical aggregate project P&L into posted
// closing entries. These bypass the draft review step: they represent
// closing balances of fiscal years that are already shut, not new pending
// work. The balance invariant still applies to every emitted entry.
type closingService struct {
	BaseService
	journalSvc portssvc.JournalSvcFacade
}

// NewClosingService creates a new closing service.
func NewClosingService(journalSvc portssvc.JournalSvcFacade) portssvc.ClosingSvcFacade {
	return &closingService{journalSvc: journalSvc}
}

var _ portssvc.ClosingSvcFacade = (*closingService)(nil)

// ImportPriorYear emits one posted closing entry per project with a
// material net result. Profitable projects debit Current Year Earnings and
// credit Retained Earnings - Prior Years; losses swap the sides.
func (s *closingService) ImportPriorYear(ctx context.Context, req dto.PriorYearImportRequest, actorID string) (*dto.PriorYearImportResult, error) {
	startYear, err := domain.ParseFiscalYear(req.FiscalYear)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
	}
	// Closing entries are dated to the last day of the fiscal year.
	entryDate := time.Date(startYear+1, time.October, 31, 0, 0, 0, 0, time.UTC)

	result := &dto.PriorYearImportResult{
		FiscalYear: req.FiscalYear,
		Entries:    []domain.JournalEntry{},
	}

	for _, project := range req.Projects {
		netProfit := project.TotalIncome.Sub(project.TotalExpenses).Sub(project.ManagementFees)
		if isZero(netProfit) {
			result.SkippedProjects = append(result.SkippedProjects, project.ProjectID)
			continue
		}

		debitAccount := CurrentYearEarningsAccount
		creditAccount := RetainedEarningsPriorYearsAccount
		if netProfit.IsNegative() {
			debitAccount, creditAccount = creditAccount, debitAccount
		}
		amount := netProfit.Abs()

		entry, err := s.journalSvc.ImportPostedEntry(ctx, dto.CreateJournalEntryRequest{
			CompanyID:   req.CompanyID,
			Date:        entryDate,
			Description: fmt.Sprintf("Prior year closing %s for project %s", req.FiscalYear, project.ProjectID),
			Lines: []dto.CreateJournalLineRequest{
				{AccountCode: debitAccount, LineType: domain.Debit, Amount: amount},
				{AccountCode: creditAccount, LineType: domain.Credit, Amount: amount},
			},
		}, actorID)
		if err != nil {
			return nil, fmt.Errorf("failed to import closing entry for project %s: %w", project.ProjectID, err)
		}
		result.Entries = append(result.Entries, *entry)
	}

	s.LogInfo(ctx, "Prior year import completed",
		slog.String("fiscal_year", req.FiscalYear),
		slog.Int("entries_created", len(result.Entries)),
		slog.Int("projects_skipped", len(result.SkippedProjects)))
	return result, nil
}
