package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecognitionStatus is the lifecycle state of a revenue recognition record.
//
// Allowed transitions:
//
//	PENDING      -> RECOGNIZED        (service period concluded)
//	NEEDS_REVIEW -> MANUAL_RECOGNIZED (explicit override, audit recorded)
//
// NEEDS_REVIEW is only ever assigned at creation, when no service-end date is
// known. RECOGNIZED and MANUAL_RECOGNIZED are terminal.
type RecognitionStatus string

const (
	RecognitionPending          RecognitionStatus = "PENDING"
	RecognitionRecognized       RecognitionStatus = "RECOGNIZED"
	RecognitionNeedsReview      RecognitionStatus = "NEEDS_REVIEW"
	RecognitionManualRecognized RecognitionStatus = "MANUAL_RECOGNIZED"
)

// IsTerminal reports whether no further transitions are allowed from s.
func (s RecognitionStatus) IsTerminal() bool {
	return s == RecognitionRecognized || s == RecognitionManualRecognized
}

// RecognitionTrigger records what caused a recognition.
type RecognitionTrigger string

const (
	TriggerAutomatic RecognitionTrigger = "AUTOMATIC"
	TriggerManual    RecognitionTrigger = "MANUAL"
	TriggerImmediate RecognitionTrigger = "IMMEDIATE"
)

// RevenueRecognition tracks deferred charter revenue from deposit to
// recognition. It is created alongside the income document and its deposit
// entry; recognizing it emits a second balanced entry moving the amount from
// the deferred-revenue account to the revenue account.
type RevenueRecognition struct {
	RecognitionID          string             `json:"recognitionID"`
	CompanyID              string             `json:"companyID"`
	ProjectID              string             `json:"projectID"`
	DocumentID             string             `json:"documentID"`
	DocumentNumber         string             `json:"documentNumber"`
	CharterDateFrom        *time.Time         `json:"charterDateFrom,omitempty"`
	CharterDateTo          *time.Time         `json:"charterDateTo,omitempty"`
	Status                 RecognitionStatus  `json:"status"`
	Amount                 decimal.Decimal    `json:"amount"`
	CurrencyCode           string             `json:"currencyCode"`
	FxRate                 decimal.Decimal    `json:"fxRate"`
	THBAmount              decimal.Decimal    `json:"thbAmount"`
	DeferredRevenueAccount string             `json:"deferredRevenueAccount"`
	RevenueAccount         string             `json:"revenueAccount"`
	RecognitionDate        *time.Time         `json:"recognitionDate,omitempty"`
	Trigger                RecognitionTrigger `json:"trigger"`
	DepositEntryID         string             `json:"depositEntryID"`
	RecognitionEntryID     *string            `json:"recognitionEntryID,omitempty"`
	RecognizedBy           *string            `json:"recognizedBy,omitempty"`
	AuditFields
}

// IsServiceCompleted reports whether a service period has concluded as of now.
// An absent end date is conservatively treated as not completed; dated periods
// compare date-only, so a charter ending today counts as completed.
func IsServiceCompleted(serviceEnd *time.Time, now time.Time) bool {
	if serviceEnd == nil {
		return false
	}
	end := DateOnly(*serviceEnd)
	return !end.After(DateOnly(now))
}

// InitialRecognitionStatus decides the state a recognition record is created
// in: NEEDS_REVIEW when the service-end date is unknown, RECOGNIZED when the
// service was already delivered at creation time, PENDING otherwise.
func InitialRecognitionStatus(serviceEnd *time.Time, now time.Time) RecognitionStatus {
	if serviceEnd == nil {
		return RecognitionNeedsReview
	}
	if IsServiceCompleted(serviceEnd, now) {
		return RecognitionRecognized
	}
	return RecognitionPending
}

// DateOnly truncates t to midnight UTC for date-only comparison.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
