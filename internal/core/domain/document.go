package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DocumentKind is the closed set of income/expense document kinds that feed
// profit-and-loss statements. New kinds must be added here and handled in
// every switch over the type.
type DocumentKind string

const (
	KindInvoice    DocumentKind = "INVOICE"
	KindReceipt    DocumentKind = "RECEIPT"
	KindExpense    DocumentKind = "EXPENSE"
	KindCreditNote DocumentKind = "CREDIT_NOTE"
)

// IsIncome reports whether the kind sits on the income side of a P&L.
// Credit notes are income-side with a negating effect on totals.
func (k DocumentKind) IsIncome() bool {
	switch k {
	case KindInvoice, KindReceipt, KindCreditNote:
		return true
	case KindExpense:
		return false
	}
	return false
}

// SourceDocument is the slice of an accounting document that report
// generation needs. Documents live in an external system; this service only
// reads them through the DocumentSource port.
type SourceDocument struct {
	DocumentID     string           `json:"documentID"`
	DocumentNumber string           `json:"documentNumber"`
	Kind           DocumentKind     `json:"kind"`
	CompanyID      string           `json:"companyID"`
	ProjectID      string           `json:"projectID"`
	Date           time.Time        `json:"date"`
	Category       string           `json:"category"`
	Amount         decimal.Decimal  `json:"amount"`
	CurrencyCode   string           `json:"currencyCode"`
	FxRate         *decimal.Decimal `json:"fxRate,omitempty"` // THB per unit, captured at creation
	ServiceEndDate *time.Time       `json:"serviceEndDate,omitempty"`
}
