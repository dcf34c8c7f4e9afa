package dto

import (
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriorYearProjectTotals is one project's aggregate P&L for a closed
// historical fiscal year.
type PriorYearProjectTotals struct {
	ProjectID      string          `json:"projectID" binding:"required"`
	TotalIncome    decimal.Decimal `json:"totalIncome"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	ManagementFees decimal.Decimal `json:"managementFees"`
}

// PriorYearImportRequest converts historical aggregate P&L into closing
// entries for a fiscal year.
type PriorYearImportRequest struct {
	CompanyID  string                   `json:"companyID" binding:"required"`
	FiscalYear string                   `json:"fiscalYear" binding:"required"`
	Projects   []PriorYearProjectTotals `json:"projects" binding:"required,min=1,dive"`
}

// PriorYearImportResult reports the closing entries produced by an import.
type PriorYearImportResult struct {
	FiscalYear      string                `json:"fiscalYear"`
	Entries         []domain.JournalEntry `json:"entries"`
	SkippedProjects []string              `json:"skippedProjects,omitempty"`
}
