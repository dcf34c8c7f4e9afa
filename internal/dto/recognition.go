package dto

import (
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateRecognitionRequest registers deferred revenue alongside an income
// document and its deposit entry.
type CreateRecognitionRequest struct {
	CompanyID              string           `json:"companyID" binding:"required"`
	ProjectID              string           `json:"projectID" binding:"required"`
	DocumentID             string           `json:"documentID" binding:"required"`
	DocumentNumber         string           `json:"documentNumber"`
	CharterDateFrom        *time.Time       `json:"charterDateFrom,omitempty" time_format:"2006-01-02"`
	CharterDateTo          *time.Time       `json:"charterDateTo,omitempty" time_format:"2006-01-02"`
	Amount                 decimal.Decimal  `json:"amount" binding:"required"`
	CurrencyCode           string           `json:"currencyCode" binding:"required,len=3"`
	FxRate                 *decimal.Decimal `json:"fxRate,omitempty"`
	DeferredRevenueAccount string           `json:"deferredRevenueAccount" binding:"required"`
	RevenueAccount         string           `json:"revenueAccount" binding:"required"`
	DepositEntryID         string           `json:"depositEntryID" binding:"required"`
}

// RecognizeRequest triggers recognition of a single record.
type RecognizeRequest struct {
	Trigger domain.RecognitionTrigger `json:"trigger" binding:"required,oneof=AUTOMATIC MANUAL IMMEDIATE"`
}

// SweepResponse reports the outcome of a recognition sweep.
type SweepResponse struct {
	AsOf       string   `json:"asOf"`
	Recognized []string `json:"recognized"`
	Failed     []string `json:"failed,omitempty"`
}
