package dto

import (
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateJournalLineRequest is one debit or credit line of a new entry.
type CreateJournalLineRequest struct {
	AccountCode  string          `json:"accountCode" binding:"required"`
	LineType     domain.LineType `json:"lineType" binding:"required,oneof=DEBIT CREDIT"`
	Amount       decimal.Decimal `json:"amount" binding:"required"`
	CurrencyCode string          `json:"currencyCode" binding:"omitempty,len=3"`
	Description  string          `json:"description"`
}

// CreateJournalEntryRequest creates a draft journal entry.
type CreateJournalEntryRequest struct {
	CompanyID    string                     `json:"companyID" binding:"required"`
	Date         time.Time                  `json:"date" binding:"required" time_format:"2006-01-02"`
	Description  string                     `json:"description" binding:"required"`
	CurrencyCode string                     `json:"currencyCode" binding:"omitempty,len=3"`
	Lines        []CreateJournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalEntryRequest mutates a draft entry. Nil fields are left
// untouched; replacing lines recomputes the entry totals.
type UpdateJournalEntryRequest struct {
	Date        *time.Time                  `json:"date,omitempty" time_format:"2006-01-02"`
	Description *string                     `json:"description,omitempty"`
	Lines       *[]CreateJournalLineRequest `json:"lines,omitempty" binding:"omitempty,min=2,dive"`
}

// JournalEntryResponse is the API representation of an entry.
type JournalEntryResponse struct {
	EntryID         string                `json:"entryID"`
	CompanyID       string                `json:"companyID"`
	Date            string                `json:"date"`
	Description     string                `json:"description"`
	Status          domain.EntryStatus    `json:"status"`
	ReferenceNumber string                `json:"referenceNumber"`
	TotalDebit      decimal.Decimal       `json:"totalDebit"`
	TotalCredit     decimal.Decimal       `json:"totalCredit"`
	Lines           []JournalLineResponse `json:"lines,omitempty"`
	PostedBy        *string               `json:"postedBy,omitempty"`
	PostedAt        *time.Time            `json:"postedAt,omitempty"`
	CreatedBy       string                `json:"createdBy"`
	CreatedAt       time.Time             `json:"createdAt"`
}

// JournalLineResponse is the API representation of a line.
type JournalLineResponse struct {
	LineID       string          `json:"lineID"`
	AccountCode  string          `json:"accountCode"`
	LineType     domain.LineType `json:"lineType"`
	Amount       decimal.Decimal `json:"amount"`
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description,omitempty"`
}

// ToJournalEntryResponse converts a domain entry to its API representation.
func ToJournalEntryResponse(entry *domain.JournalEntry) JournalEntryResponse {
	resp := JournalEntryResponse{
		EntryID:         entry.EntryID,
		CompanyID:       entry.CompanyID,
		Date:            entry.EntryDate.Format("2006-01-02"),
		Description:     entry.Description,
		Status:          entry.Status,
		ReferenceNumber: entry.ReferenceNumber,
		TotalDebit:      entry.TotalDebit,
		TotalCredit:     entry.TotalCredit,
		PostedBy:        entry.PostedBy,
		PostedAt:        entry.PostedAt,
		CreatedBy:       entry.CreatedBy,
		CreatedAt:       entry.CreatedAt,
	}
	if len(entry.Lines) > 0 {
		resp.Lines = make([]JournalLineResponse, len(entry.Lines))
		for i, line := range entry.Lines {
			resp.Lines[i] = JournalLineResponse{
				LineID:       line.LineID,
				AccountCode:  line.AccountCode,
				LineType:     line.LineType,
				Amount:       line.Amount,
				CurrencyCode: line.CurrencyCode,
				Description:  line.Description,
			}
		}
	}
	return resp
}

// ToJournalEntryResponses converts a slice of entries.
func ToJournalEntryResponses(entries []domain.JournalEntry) []JournalEntryResponse {
	responses := make([]JournalEntryResponse, len(entries))
	for i := range entries {
		responses[i] = ToJournalEntryResponse(&entries[i])
	}
	return responses
}
