package services

import (
	"context"
	"time"

	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
)

// RecognitionSvcFacade drives the revenue recognition state machine.
type RecognitionSvcFacade interface {
	// CreateRecognition registers deferred revenue for an income document.
	// The initial status follows the service-end date: unknown dates go to
	// NEEDS_REVIEW, already-delivered services straight to RECOGNIZED.
	CreateRecognition(ctx context.Context, req dto.CreateRecognitionRequest, creatorID string) (*domain.RevenueRecognition, error)

	// GetRecognitionByID returns one record.
	GetRecognitionByID(ctx context.Context, recognitionID string) (*domain.RevenueRecognition, error)

	// ListRecognitions returns a company's records, newest first.
	ListRecognitions(ctx context.Context, companyID string, limit, offset int) ([]domain.RevenueRecognition, error)

	// RecognizeRevenue transitions a record to its terminal recognized state
	// and emits the balanced recognition entry (debit deferred revenue,
	// credit revenue). A second call returns apperrors.ErrState and never
	// emits a duplicate entry.
	RecognizeRevenue(ctx context.Context, recognitionID string, actorID string, trigger domain.RecognitionTrigger) (*domain.RevenueRecognition, error)

	// RecognizeDue sweeps all PENDING records whose service period has
	// concluded as of now. Per-record failures are collected, not fatal.
	RecognizeDue(ctx context.Context, now time.Time, actorID string) (recognized []string, failed []string, err error)
}
