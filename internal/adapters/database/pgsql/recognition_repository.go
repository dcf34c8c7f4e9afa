package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/faraway-yachting/charter-ledger/internal/apperrors"
	"github.com/faraway-yachting/charter-ledger/internal/core/domain"
	portsrepo "github.com/faraway-yachting/charter-ledger/internal/core/ports/repositories"
)

// PgxRecognitionRepository persists revenue recognition records.
type PgxRecognitionRepository struct {
	pool *pgxpool.Pool
}

// NewRecognitionRepository creates a new repository for revenue recognition data.
func NewRecognitionRepository(pool *pgxpool.Pool) portsrepo.RevenueRecognitionRepository {
	return &PgxRecognitionRepository{pool: pool}
}

var _ portsrepo.RevenueRecognitionRepository = (*PgxRecognitionRepository)(nil)

const recognitionColumns = `recognition_id, company_id, project_id, document_id, document_number,
	charter_date_from, charter_date_to, status, amount, currency_code, fx_rate, thb_amount,
	deferred_revenue_account, revenue_account, recognition_date, trigger_kind, deposit_entry_id,
	recognition_entry_id, recognized_by, created_at, created_by, last_updated_at, last_updated_by`

func scanRecognition(row pgx.Row) (*domain.RevenueRecognition, error) {
	var rec domain.RevenueRecognition
	err := row.Scan(
		&rec.RecognitionID,
		&rec.CompanyID,
		&rec.ProjectID,
		&rec.DocumentID,
		&rec.DocumentNumber,
		&rec.CharterDateFrom,
		&rec.CharterDateTo,
		&rec.Status,
		&rec.Amount,
		&rec.CurrencyCode,
		&rec.FxRate,
		&rec.THBAmount,
		&rec.DeferredRevenueAccount,
		&rec.RevenueAccount,
		&rec.RecognitionDate,
		&rec.Trigger,
		&rec.DepositEntryID,
		&rec.RecognitionEntryID,
		&rec.RecognizedBy,
		&rec.CreatedAt,
		&rec.CreatedBy,
		&rec.LastUpdatedAt,
		&rec.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func recognitionInsertArgs(rec domain.RevenueRecognition) []any {
	return []any{
		rec.RecognitionID,
		rec.CompanyID,
		rec.ProjectID,
		rec.DocumentID,
		rec.DocumentNumber,
		rec.CharterDateFrom,
		rec.CharterDateTo,
		rec.Status,
		rec.Amount,
		rec.CurrencyCode,
		rec.FxRate,
		rec.THBAmount,
		rec.DeferredRevenueAccount,
		rec.RevenueAccount,
		rec.RecognitionDate,
		rec.Trigger,
		rec.DepositEntryID,
		rec.RecognitionEntryID,
		rec.RecognizedBy,
		rec.CreatedAt,
		rec.CreatedBy,
		rec.LastUpdatedAt,
		rec.LastUpdatedBy,
	}
}

const recognitionInsertQuery = `
	INSERT INTO revenue_recognitions (` + recognitionColumns + `)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23);
`

// SaveRecognition inserts a recognition record.
func (r *PgxRecognitionRepository) SaveRecognition(ctx context.Context, rec domain.RevenueRecognition) error {
	_, err := r.pool.Exec(ctx, recognitionInsertQuery, recognitionInsertArgs(rec)...)
	if err != nil {
		return fmt.Errorf("failed to insert recognition %s: %w", rec.RecognitionID, err)
	}
	return nil
}

// SaveRecognitionWithEntry inserts the record and its posted recognition
// entry in one transaction.
func (r *PgxRecognitionRepository) SaveRecognitionWithEntry(ctx context.Context, rec domain.RevenueRecognition, entry domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := insertEntryTx(ctx, tx, entry); err != nil {
		return err
	}
	if _, err := tx.Exec(ctx, recognitionInsertQuery, recognitionInsertArgs(rec)...); err != nil {
		return fmt.Errorf("failed to insert recognition %s: %w", rec.RecognitionID, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recognition %s with entry %s: %w", rec.RecognitionID, entry.EntryID, err)
	}
	return nil
}

// FindRecognitionByID retrieves one record.
func (r *PgxRecognitionRepository) FindRecognitionByID(ctx context.Context, recognitionID string) (*domain.RevenueRecognition, error) {
	query := `SELECT ` + recognitionColumns + ` FROM revenue_recognitions WHERE recognition_id = $1;`
	rec, err := scanRecognition(r.pool.QueryRow(ctx, query, recognitionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find recognition %s: %w", recognitionID, err)
	}
	return rec, nil
}

const recognitionUpdateQuery = `
	UPDATE revenue_recognitions
	SET status = $2, recognition_date = $3, trigger_kind = $4, recognition_entry_id = $5,
		recognized_by = $6, last_updated_at = $7, last_updated_by = $8
	WHERE recognition_id = $1;
`

func recognitionUpdateArgs(rec domain.RevenueRecognition) []any {
	return []any{
		rec.RecognitionID,
		rec.Status,
		rec.RecognitionDate,
		rec.Trigger,
		rec.RecognitionEntryID,
		rec.RecognizedBy,
		rec.LastUpdatedAt,
		rec.LastUpdatedBy,
	}
}

// UpdateRecognition rewrites a record's mutable fields.
func (r *PgxRecognitionRepository) UpdateRecognition(ctx context.Context, rec domain.RevenueRecognition) error {
	tag, err := r.pool.Exec(ctx, recognitionUpdateQuery, recognitionUpdateArgs(rec)...)
	if err != nil {
		return fmt.Errorf("failed to update recognition %s: %w", rec.RecognitionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateRecognitionWithEntry inserts the posted recognition entry and updates
// the record in one transaction. Nothing commits unless both writes succeed,
// so a failed recognition leaves the record PENDING with no entry behind it
// and a retry cannot double-post.
func (r *PgxRecognitionRepository) UpdateRecognitionWithEntry(ctx context.Context, rec domain.RevenueRecognition, entry domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if err := insertEntryTx(ctx, tx, entry); err != nil {
		return err
	}
	tag, err := tx.Exec(ctx, recognitionUpdateQuery, recognitionUpdateArgs(rec)...)
	if err != nil {
		return fmt.Errorf("failed to update recognition %s: %w", rec.RecognitionID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit recognition %s with entry %s: %w", rec.RecognitionID, entry.EntryID, err)
	}
	return nil
}

// ListRecognitionsByCompany returns a company's records, newest first.
func (r *PgxRecognitionRepository) ListRecognitionsByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.RevenueRecognition, error) {
	query := `
		SELECT ` + recognitionColumns + `
		FROM revenue_recognitions
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list recognitions for company %s: %w", companyID, err)
	}
	defer rows.Close()

	recs := []domain.RevenueRecognition{}
	for rows.Next() {
		rec, err := scanRecognition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan recognition for company %s: %w", companyID, err)
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}

// ListDueRecognitions returns PENDING records whose charter end date has
// passed as of asOf.
func (r *PgxRecognitionRepository) ListDueRecognitions(ctx context.Context, asOf time.Time) ([]domain.RevenueRecognition, error) {
	query := `
		SELECT ` + recognitionColumns + `
		FROM revenue_recognitions
		WHERE status = 'PENDING'
			AND charter_date_to IS NOT NULL
			AND charter_date_to <= $1
		ORDER BY charter_date_to;
	`
	rows, err := r.pool.Query(ctx, query, asOf)
	if err != nil {
		return nil, fmt.Errorf("failed to list due recognitions: %w", err)
	}
	defer rows.Close()

	recs := []domain.RevenueRecognition{}
	for rows.Next() {
		rec, err := scanRecognition(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan due recognition: %w", err)
		}
		recs = append(recs, *rec)
	}
	return recs, rows.Err()
}
