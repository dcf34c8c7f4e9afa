package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portsrepo "github.com/faraway-yachting/charter-ledger/internal/core/ports/repositories"
	portssvc "github.com/faraway-yachting/charter-ledger/internal/core/ports/services"
	"github.com/faraway-yachting/charter-ledger/internal/dto"
)

// recognitionService drives the revenue recognition state machine and emits
// the recognition journal entry (debit deferred revenue, credit revenue)
// when a record reaches a terminal recognized state.
type recognitionService struct {
	BaseService
	recRepo    portsrepo.RevenueRecognitionRepository
	journalSvc portssvc.JournalSvcFacade
	now        func() time.Time
}

// NewRecognitionService creates a new recognition service. now is injectable
// for tests; nil defaults to time.Now.
func NewRecognitionService(recRepo portsrepo.RevenueRecognitionRepository, journalSvc portssvc.JournalSvcFacade, now func() time.Time) portssvc.RecognitionSvcFacade {
	if now == nil {
		now = time.Now
	}
	return &recognitionService{recRepo: recRepo, journalSvc: journalSvc, now: now}
}

var _ portssvc.RecognitionSvcFacade = (*recognitionService)(nil)

// validateRecognizable checks the fields recognition needs to emit a
// balanced entry.
func validateRecognizable(rec *domain.RevenueRecognition) error {
	if !rec.Amount.IsPositive() {
		return fmt.Errorf("%w: recognition amount must be positive", apperrors.ErrValidation)
	}
	if rec.DeferredRevenueAccount == "" || rec.RevenueAccount == "" {
		return fmt.Errorf("%w: deferred revenue and revenue account codes are required", apperrors.ErrValidation)
	}
	return nil
}

// CreateRecognition registers deferred revenue for an income document. The
// initial state follows the service-end date; a charter that already ended
// at creation time is recognized immediately.
func (s *recognitionService) CreateRecognition(ctx context.Context, req dto.CreateRecognitionRequest, creatorID string) (*domain.RevenueRecognition, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: recognition amount must be positive", apperrors.ErrValidation)
	}

	fxRate := decimal.NewFromInt(1)
	if req.CurrencyCode != domain.ReportingCurrency && req.FxRate != nil && req.FxRate.IsPositive() {
		fxRate = *req.FxRate
	}

	now := s.now().UTC()
	rec := domain.RevenueRecognition{
		RecognitionID:          uuid.NewString(),
		CompanyID:              req.CompanyID,
		ProjectID:              req.ProjectID,
		DocumentID:             req.DocumentID,
		DocumentNumber:         req.DocumentNumber,
		CharterDateFrom:        req.CharterDateFrom,
		CharterDateTo:          req.CharterDateTo,
		Status:                 domain.InitialRecognitionStatus(req.CharterDateTo, now),
		Amount:                 req.Amount,
		CurrencyCode:           req.CurrencyCode,
		FxRate:                 fxRate,
		THBAmount:              req.Amount.Mul(fxRate),
		DeferredRevenueAccount: req.DeferredRevenueAccount,
		RevenueAccount:         req.RevenueAccount,
		Trigger:                domain.TriggerAutomatic,
		DepositEntryID:         req.DepositEntryID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}

	// Service already delivered at creation: recognize in the same breath.
	// The record and its recognition entry commit in one transaction.
	if rec.Status == domain.RecognitionRecognized {
		if err := validateRecognizable(&rec); err != nil {
			return nil, err
		}
		entry, err := s.buildRecognitionEntry(ctx, &rec, creatorID, now)
		if err != nil {
			return nil, err
		}
		recognitionDate := now
		rec.RecognitionDate = &recognitionDate
		rec.Trigger = domain.TriggerImmediate
		rec.RecognizedBy = &creatorID
		rec.RecognitionEntryID = &entry.EntryID

		if err := s.recRepo.SaveRecognitionWithEntry(ctx, rec, *entry); err != nil {
			return nil, fmt.Errorf("failed to save recognition with entry: %w", err)
		}
	} else if err := s.recRepo.SaveRecognition(ctx, rec); err != nil {
		return nil, fmt.Errorf("failed to save revenue recognition: %w", err)
	}

	s.LogInfo(ctx, "Revenue recognition created",
		slog.String("recognition_id", rec.RecognitionID),
		slog.String("status", string(rec.Status)),
		slog.String("project_id", rec.ProjectID))
	return &rec, nil
}

// GetRecognitionByID returns one record.
func (s *recognitionService) GetRecognitionByID(ctx context.Context, recognitionID string) (*domain.RevenueRecognition, error) {
	return s.recRepo.FindRecognitionByID(ctx, recognitionID)
}

// ListRecognitions returns a company's records, newest first.
func (s *recognitionService) ListRecognitions(ctx context.Context, companyID string, limit, offset int) ([]domain.RevenueRecognition, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.recRepo.ListRecognitionsByCompany(ctx, companyID, limit, offset)
}

// buildRecognitionEntry assembles the balanced posted entry moving the
// deferred amount to revenue, referencing the original deposit entry. The
// entry is not persisted here; it commits together with the recognition
// record so the pair is all-or-nothing.
func (s *recognitionService) buildRecognitionEntry(ctx context.Context, rec *domain.RevenueRecognition, actorID string, at time.Time) (*domain.JournalEntry, error) {
	description := fmt.Sprintf("Revenue recognition for %s (deposit entry %s)", rec.DocumentNumber, rec.DepositEntryID)
	if rec.DocumentNumber == "" {
		description = fmt.Sprintf("Revenue recognition for deposit entry %s", rec.DepositEntryID)
	}

	entry, err := s.journalSvc.BuildPostedEntry(ctx, dto.CreateJournalEntryRequest{
		CompanyID:    rec.CompanyID,
		Date:         at,
		Description:  description,
		CurrencyCode: rec.CurrencyCode,
		Lines: []dto.CreateJournalLineRequest{
			{AccountCode: rec.DeferredRevenueAccount, LineType: domain.Debit, Amount: rec.Amount, CurrencyCode: rec.CurrencyCode},
			{AccountCode: rec.RevenueAccount, LineType: domain.Credit, Amount: rec.Amount, CurrencyCode: rec.CurrencyCode},
		},
	}, actorID)
	if err != nil {
		return nil, fmt.Errorf("failed to build recognition entry for %s: %w", rec.RecognitionID, err)
	}
	return entry, nil
}

// RecognizeRevenue transitions a record to its terminal recognized state.
// Recognizing a terminal record fails with ErrState and never emits a second
// entry, so an at-least-once caller can safely retry.
func (s *recognitionService) RecognizeRevenue(ctx context.Context, recognitionID string, actorID string, trigger domain.RecognitionTrigger) (*domain.RevenueRecognition, error) {
	rec, err := s.recRepo.FindRecognitionByID(ctx, recognitionID)
	if err != nil {
		return nil, err
	}

	if rec.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: recognition %s is already %s", apperrors.ErrState, recognitionID, rec.Status)
	}
	if err := validateRecognizable(rec); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	var target domain.RecognitionStatus

	switch rec.Status {
	case domain.RecognitionPending:
		if !domain.IsServiceCompleted(rec.CharterDateTo, now) {
			return nil, fmt.Errorf("%w: service period has not concluded for recognition %s", apperrors.ErrValidation, recognitionID)
		}
		target = domain.RecognitionRecognized
	case domain.RecognitionNeedsReview:
		// Manual override for records with missing dates; the approver and
		// trigger are recorded for audit.
		if trigger != domain.TriggerManual && trigger != domain.TriggerImmediate {
			return nil, fmt.Errorf("%w: recognition %s needs review and requires a manual or immediate trigger", apperrors.ErrValidation, recognitionID)
		}
		if actorID == "" {
			return nil, fmt.Errorf("%w: recognizedBy is required for manual recognition", apperrors.ErrValidation)
		}
		target = domain.RecognitionManualRecognized
	default:
		return nil, fmt.Errorf("%w: recognition %s cannot transition from %s", apperrors.ErrState, recognitionID, rec.Status)
	}

	entry, err := s.buildRecognitionEntry(ctx, rec, actorID, now)
	if err != nil {
		return nil, err
	}

	rec.Status = target
	rec.RecognitionDate = &now
	rec.Trigger = trigger
	rec.RecognizedBy = &actorID
	rec.RecognitionEntryID = &entry.EntryID
	rec.LastUpdatedAt = now
	rec.LastUpdatedBy = actorID

	// Entry and record commit together: a failure here leaves the record
	// PENDING with no posted entry, so a retry starts clean.
	if err := s.recRepo.UpdateRecognitionWithEntry(ctx, *rec, *entry); err != nil {
		return nil, fmt.Errorf("failed to commit recognition %s with entry %s: %w", recognitionID, entry.EntryID, err)
	}

	s.LogInfo(ctx, "Revenue recognized",
		slog.String("recognition_id", recognitionID),
		slog.String("status", string(rec.Status)),
		slog.String("entry_id", entry.EntryID),
		slog.String("trigger", string(trigger)))
	return rec, nil
}

// RecognizeDue sweeps every PENDING record whose service period has
// concluded as of now. Per-record failures are collected and logged; the
// sweep itself only fails if the due list cannot be read.
func (s *recognitionService) RecognizeDue(ctx context.Context, now time.Time, actorID string) ([]string, []string, error) {
	due, err := s.recRepo.ListDueRecognitions(ctx, now)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list due recognitions: %w", err)
	}

	var recognized, failed []string
	for _, rec := range due {
		if _, err := s.RecognizeRevenue(ctx, rec.RecognitionID, actorID, domain.TriggerAutomatic); err != nil {
			s.LogError(ctx, err, "Sweep failed to recognize record",
				slog.String("recognition_id", rec.RecognitionID))
			failed = append(failed, rec.RecognitionID)
			continue
		}
		recognized = append(recognized, rec.RecognitionID)
	}

	s.LogInfo(ctx, "Recognition sweep completed",
		slog.Int("recognized", len(recognized)),
		slog.Int("failed", len(failed)))
	return recognized, failed, nil
}
