package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus indicates the lifecycle state of a journal entry.
type EntryStatus string

const (
	Draft  EntryStatus = "DRAFT"
	Posted EntryStatus = "POSTED"
)

// LineType indicates whether a journal line is a Debit or a Credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// ReferencePrefix is the document-kind prefix used for journal entry
// reference numbers, e.g. "JE-2025-001".
const ReferencePrefix = "JE"

// JournalLine is a single line item within a journal entry, affecting one account.
type JournalLine struct {
	LineID       string          `json:"lineID"`
	EntryID      string          `json:"entryID"`
	AccountCode  string          `json:"accountCode"`
	LineType     LineType        `json:"lineType"`
	Amount       decimal.Decimal `json:"amount"` // Always non-negative
	CurrencyCode string          `json:"currencyCode"`
	Description  string          `json:"description"`
}

// JournalEntry is a single financial event composed of debit and credit lines.
// Entries start as drafts and become immutable once posted; only posted
// entries contribute to reports.
type JournalEntry struct {
	EntryID         string          `json:"entryID"`
	CompanyID       string          `json:"companyID"`
	EntryDate       time.Time       `json:"entryDate"`
	Description     string          `json:"description"`
	Status          EntryStatus     `json:"status"`
	Lines           []JournalLine   `json:"lines,omitempty"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	ReferenceNumber string          `json:"referenceNumber"` // Immutable once assigned; unique per prefix+year
	PostedBy        *string         `json:"postedBy,omitempty"`
	PostedAt        *time.Time      `json:"postedAt,omitempty"`
	AuditFields
}

// IsPosted reports whether the entry has been posted.
func (e *JournalEntry) IsPosted() bool {
	return e.Status == Posted
}

// LineTotals sums the debit and credit sides of a set of lines.
func LineTotals(lines []JournalLine) (totalDebit, totalCredit decimal.Decimal) {
	totalDebit = decimal.Zero
	totalCredit = decimal.Zero
	for _, line := range lines {
		if line.LineType == Debit {
			totalDebit = totalDebit.Add(line.Amount)
		} else {
			totalCredit = totalCredit.Add(line.Amount)
		}
	}
	return totalDebit, totalCredit
}

// LinesBalanced reports whether total debits equal total credits within
// BalanceTolerance.
func LinesBalanced(lines []JournalLine) bool {
	totalDebit, totalCredit := LineTotals(lines)
	return WithinTolerance(totalDebit, totalCredit)
}

// FormatReferenceNumber renders a reference number as {PREFIX}-{YYYY}-{NNN}
// with the sequence zero-padded to three digits.
func FormatReferenceNumber(prefix string, year int, seq int64) string {
	return fmt.Sprintf("%s-%04d-%03d", prefix, year, seq)
}

// SignedNet nets an account's accumulated debits and credits according to its
// normal balance: debit-normal accounts net debits minus credits, credit-normal
// accounts net credits minus debits.
func SignedNet(normal NormalBalance, debits, credits decimal.Decimal) decimal.Decimal {
	if normal == DebitNormal {
		return debits.Sub(credits)
	}
	return credits.Sub(debits)
}
