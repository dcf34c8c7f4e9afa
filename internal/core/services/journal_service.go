package services

import (
	"context"
	"errors"
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

var (
	ErrEntryUnbalanced    = errors.New("journal entry debits and credits do not balance")
	ErrEntryMinLines      = errors.New("journal entry must have at least two lines")
	ErrEntryPosted        = errors.New("journal entry is posted and immutable")
	ErrDescriptionMissing = errors.New("journal entry description is required")
)

// journalService implements the journal entry store: draft lifecycle,
// balance invariant enforcement and reference number assignment.
type journalService struct {
	BaseService
	entryRepo portsrepo.JournalEntryRepository
	registry  portsrepo.AccountRegistry
}

// NewJournalService creates a new journal service.
func NewJournalService(entryRepo portsrepo.JournalEntryRepository, registry portsrepo.AccountRegistry) portssvc.JournalSvcFacade {
	return &journalService{
		entryRepo: entryRepo,
		registry:  registry,
	}
}

var _ portssvc.JournalSvcFacade = (*journalService)(nil)

// buildLines validates line requests against the chart of accounts and
// converts them to domain lines belonging to entryID.
func (s *journalService) buildLines(ctx context.Context, entryID string, reqs []dto.CreateJournalLineRequest, defaultCurrency string) ([]domain.JournalLine, error) {
	if len(reqs) < 2 {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrEntryMinLines)
	}

	lines := make([]domain.JournalLine, len(reqs))
	for i, lineReq := range reqs {
		if lineReq.Amount.IsNegative() {
			return nil, fmt.Errorf("%w: line amount must not be negative for account %s", apperrors.ErrValidation, lineReq.AccountCode)
		}

		if _, err := s.registry.LookupAccount(ctx, lineReq.AccountCode); err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown account code %s", apperrors.ErrValidation, lineReq.AccountCode)
			}
			return nil, fmt.Errorf("failed to look up account %s: %w", lineReq.AccountCode, err)
		}

		currency := lineReq.CurrencyCode
		if currency == "" {
			currency = defaultCurrency
		}

		lines[i] = domain.JournalLine{
			LineID:       uuid.NewString(),
			EntryID:      entryID,
			AccountCode:  lineReq.AccountCode,
			LineType:     lineReq.LineType,
			Amount:       lineReq.Amount,
			CurrencyCode: currency,
			Description:  lineReq.Description,
		}
	}
	return lines, nil
}

// newEntry assembles a journal entry from a create request, computing totals
// and assigning the id and reference number.
func (s *journalService) newEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorID string) (*domain.JournalEntry, error) {
	if req.Description == "" {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrDescriptionMissing)
	}

	entryID := uuid.NewString()

	currency := req.CurrencyCode
	if currency == "" {
		currency = domain.ReportingCurrency
	}

	lines, err := s.buildLines(ctx, entryID, req.Lines, currency)
	if err != nil {
		return nil, err
	}

	seq, err := s.entryRepo.NextReferenceNumber(ctx, domain.ReferencePrefix, req.Date.Year())
	if err != nil {
		return nil, fmt.Errorf("failed to allocate reference number: %w", err)
	}

	totalDebit, totalCredit := domain.LineTotals(lines)
	now := time.Now().UTC()

	return &domain.JournalEntry{
		EntryID:         entryID,
		CompanyID:       req.CompanyID,
		EntryDate:       req.Date,
		Description:     req.Description,
		Status:          domain.Draft,
		Lines:           lines,
		TotalDebit:      totalDebit,
		TotalCredit:     totalCredit,
		ReferenceNumber: domain.FormatReferenceNumber(domain.ReferencePrefix, req.Date.Year(), seq),
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorID,
		},
	}, nil
}

// CreateEntry creates a draft journal entry. Drafts may be temporarily
// unbalanced; the balance invariant is enforced when posting.
func (s *journalService) CreateEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorID string) (*domain.JournalEntry, error) {
	entry, err := s.newEntry(ctx, req, creatorID)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to save journal entry: %w", err)
	}

	s.LogInfo(ctx, "Journal entry created",
		slog.String("entry_id", entry.EntryID),
		slog.String("reference", entry.ReferenceNumber),
		slog.String("company_id", entry.CompanyID))
	return entry, nil
}

// GetEntryByID returns an entry with its lines.
func (s *journalService) GetEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// ListEntries returns a company's entries, newest first.
func (s *journalService) ListEntries(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}
	return s.entryRepo.ListEntriesByCompany(ctx, companyID, limit, offset)
}

// UpdateEntry mutates a draft entry. Posted entries reject all mutation;
// entry id and reference number are immutable.
func (s *journalService) UpdateEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsPosted() {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrState, ErrEntryPosted)
	}

	if req.Date != nil {
		entry.EntryDate = *req.Date
	}
	if req.Description != nil {
		if *req.Description == "" {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrDescriptionMissing)
		}
		entry.Description = *req.Description
	}
	if req.Lines != nil {
		// Replacement lines without an explicit currency inherit the entry's
		// existing line currency, not the reporting currency.
		defaultCurrency := domain.ReportingCurrency
		if len(entry.Lines) > 0 && entry.Lines[0].CurrencyCode != "" {
			defaultCurrency = entry.Lines[0].CurrencyCode
		}
		lines, err := s.buildLines(ctx, entry.EntryID, *req.Lines, defaultCurrency)
		if err != nil {
			return nil, err
		}
		entry.Lines = lines
		entry.TotalDebit, entry.TotalCredit = domain.LineTotals(lines)
	}

	entry.LastUpdatedAt = time.Now().UTC()
	entry.LastUpdatedBy = updaterID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to update journal entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Journal entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// PostEntry transitions a balanced draft to POSTED. Posting is terminal:
// a posted entry is immutable and included in all reports.
func (s *journalService) PostEntry(ctx context.Context, entryID string, actorID string) (*domain.JournalEntry, error) {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return nil, err
	}
	if entry.IsPosted() {
		return nil, fmt.Errorf("%w: journal entry %s is already posted", apperrors.ErrState, entryID)
	}
	if !domain.LinesBalanced(entry.Lines) {
		return nil, fmt.Errorf("%w: %s: debits %s, credits %s", apperrors.ErrValidation, ErrEntryUnbalanced,
			entry.TotalDebit.String(), entry.TotalCredit.String())
	}

	now := time.Now().UTC()
	entry.Status = domain.Posted
	entry.PostedBy = &actorID
	entry.PostedAt = &now
	entry.LastUpdatedAt = now
	entry.LastUpdatedBy = actorID

	if err := s.entryRepo.UpdateEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to post journal entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Journal entry posted",
		slog.String("entry_id", entryID),
		slog.String("reference", entry.ReferenceNumber),
		slog.String("posted_by", actorID))
	return entry, nil
}

// DeleteEntry removes a draft. Posted entries reject deletion.
func (s *journalService) DeleteEntry(ctx context.Context, entryID string) error {
	entry, err := s.entryRepo.FindEntryByID(ctx, entryID)
	if err != nil {
		return err
	}
	if entry.IsPosted() {
		return fmt.Errorf("%w: %s", apperrors.ErrState, ErrEntryPosted)
	}

	if err := s.entryRepo.DeleteEntry(ctx, entryID); err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}

	s.LogInfo(ctx, "Journal entry deleted", slog.String("entry_id", entryID))
	return nil
}

// BuildPostedEntry validates and assembles an already-posted entry without
// persisting it. The caller owns the write, typically committing the entry
// alongside another record in one transaction.
func (s *journalService) BuildPostedEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error) {
	entry, err := s.newEntry(ctx, req, actorID)
	if err != nil {
		return nil, err
	}
	if !domain.LinesBalanced(entry.Lines) {
		return nil, fmt.Errorf("%w: %s: debits %s, credits %s", apperrors.ErrValidation, ErrEntryUnbalanced,
			entry.TotalDebit.String(), entry.TotalCredit.String())
	}

	now := time.Now().UTC()
	entry.Status = domain.Posted
	entry.PostedBy = &actorID
	entry.PostedAt = &now
	return entry, nil
}

// ImportPostedEntry persists an entry directly in POSTED state. Historical
// closing entries take this path; they still must balance.
func (s *journalService) ImportPostedEntry(ctx context.Context, req dto.CreateJournalEntryRequest, actorID string) (*domain.JournalEntry, error) {
	entry, err := s.BuildPostedEntry(ctx, req, actorID)
	if err != nil {
		return nil, err
	}

	if err := s.entryRepo.SaveEntry(ctx, *entry); err != nil {
		return nil, fmt.Errorf("failed to save posted journal entry: %w", err)
	}

	s.LogInfo(ctx, "Posted journal entry imported",
		slog.String("entry_id", entry.EntryID),
		slog.String("reference", entry.ReferenceNumber))
	return entry, nil
}

// isZero is a convenience guard for decimal comparisons in this package.
func isZero(d decimal.Decimal) bool {
	return d.Abs().LessThan(domain.BalanceTolerance)
}
