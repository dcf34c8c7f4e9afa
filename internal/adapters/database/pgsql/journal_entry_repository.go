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

// PgxJournalEntryRepository persists journal entries and their lines.
// An entry and its lines are always written in one transaction so totals
// and line sets are never partially visible.
type PgxJournalEntryRepository struct {
	pool *pgxpool.Pool
}

// NewJournalEntryRepository creates a new repository for journal entry data.
func NewJournalEntryRepository(pool *pgxpool.Pool) portsrepo.JournalEntryRepository {
	return &PgxJournalEntryRepository{pool: pool}
}

var _ portsrepo.JournalEntryRepository = (*PgxJournalEntryRepository)(nil)

const entryColumns = `entry_id, company_id, entry_date, description, status, total_debit, total_credit,
	reference_number, posted_by, posted_at, created_at, created_by, last_updated_at, last_updated_by`

func scanEntry(row pgx.Row) (*domain.JournalEntry, error) {
	var entry domain.JournalEntry
	err := row.Scan(
		&entry.EntryID,
		&entry.CompanyID,
		&entry.EntryDate,
		&entry.Description,
		&entry.Status,
		&entry.TotalDebit,
		&entry.TotalCredit,
		&entry.ReferenceNumber,
		&entry.PostedBy,
		&entry.PostedAt,
		&entry.CreatedAt,
		&entry.CreatedBy,
		&entry.LastUpdatedAt,
		&entry.LastUpdatedBy,
	)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// SaveEntry inserts an entry with its lines in one transaction.
func (r *PgxJournalEntryRepository) SaveEntry(ctx context.Context, entry domain.JournalEntry) error {
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

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// insertEntryTx writes an entry and its lines inside an existing transaction.
// Shared with the recognition repository, which commits a recognition record
// and its posted entry atomically.
func insertEntryTx(ctx context.Context, tx pgx.Tx, entry domain.JournalEntry) error {
	entryQuery := `
		INSERT INTO journal_entries (` + entryColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14);
	`
	_, err := tx.Exec(ctx, entryQuery,
		entry.EntryID,
		entry.CompanyID,
		entry.EntryDate,
		entry.Description,
		entry.Status,
		entry.TotalDebit,
		entry.TotalCredit,
		entry.ReferenceNumber,
		entry.PostedBy,
		entry.PostedAt,
		entry.CreatedAt,
		entry.CreatedBy,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to insert journal entry %s: %w", entry.EntryID, err)
	}

	if err := insertLines(ctx, tx, entry.Lines); err != nil {
		return fmt.Errorf("failed to insert lines for entry %s: %w", entry.EntryID, err)
	}
	return nil
}

func insertLines(ctx context.Context, tx pgx.Tx, lines []domain.JournalLine) error {
	if len(lines) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	lineQuery := `
		INSERT INTO journal_lines (line_id, entry_id, account_code, line_type, amount, currency_code, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	for _, line := range lines {
		batch.Queue(lineQuery,
			line.LineID,
			line.EntryID,
			line.AccountCode,
			line.LineType,
			line.Amount,
			line.CurrencyCode,
			line.Description,
		)
	}
	br := tx.SendBatch(ctx, batch)
	return br.Close()
}

// FindEntryByID retrieves an entry with its lines.
func (r *PgxJournalEntryRepository) FindEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + entryColumns + ` FROM journal_entries WHERE entry_id = $1;`
	entry, err := scanEntry(r.pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry %s: %w", entryID, err)
	}

	lines, err := r.findLines(ctx, entryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines
	return entry, nil
}

func (r *PgxJournalEntryRepository) findLines(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `
		SELECT line_id, entry_id, account_code, line_type, amount, currency_code, description
		FROM journal_lines
		WHERE entry_id = $1
		ORDER BY line_id;
	`
	rows, err := r.pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to query lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	lines := []domain.JournalLine{}
	for rows.Next() {
		var line domain.JournalLine
		if err := rows.Scan(
			&line.LineID,
			&line.EntryID,
			&line.AccountCode,
			&line.LineType,
			&line.Amount,
			&line.CurrencyCode,
			&line.Description,
		); err != nil {
			return nil, fmt.Errorf("failed to scan line for entry %s: %w", entryID, err)
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}

// UpdateEntry rewrites an entry's mutable fields and, when lines are
// present, replaces its full line set in the same transaction.
func (r *PgxJournalEntryRepository) UpdateEntry(ctx context.Context, entry domain.JournalEntry) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	query := `
		UPDATE journal_entries
		SET entry_date = $2, description = $3, status = $4, total_debit = $5, total_credit = $6,
			posted_by = $7, posted_at = $8, last_updated_at = $9, last_updated_by = $10
		WHERE entry_id = $1;
	`
	tag, err := tx.Exec(ctx, query,
		entry.EntryID,
		entry.EntryDate,
		entry.Description,
		entry.Status,
		entry.TotalDebit,
		entry.TotalCredit,
		entry.PostedBy,
		entry.PostedAt,
		entry.LastUpdatedAt,
		entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", entry.EntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if len(entry.Lines) > 0 {
		if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entry.EntryID); err != nil {
			return fmt.Errorf("failed to clear lines for entry %s: %w", entry.EntryID, err)
		}
		if err := insertLines(ctx, tx, entry.Lines); err != nil {
			return fmt.Errorf("failed to insert lines for entry %s: %w", entry.EntryID, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit update of entry %s: %w", entry.EntryID, err)
	}
	return nil
}

// DeleteEntry removes an entry and its lines.
func (r *PgxJournalEntryRepository) DeleteEntry(ctx context.Context, entryID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	if _, err := tx.Exec(ctx, `DELETE FROM journal_lines WHERE entry_id = $1;`, entryID); err != nil {
		return fmt.Errorf("failed to delete lines for entry %s: %w", entryID, err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM journal_entries WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete journal entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return tx.Commit(ctx)
}

// ListEntriesByCompany returns a company's entries, newest first, without lines.
func (r *PgxJournalEntryRepository) ListEntriesByCompany(ctx context.Context, companyID string, limit, offset int) ([]domain.JournalEntry, error) {
	query := `
		SELECT ` + entryColumns + `
		FROM journal_entries
		WHERE company_id = $1
		ORDER BY entry_date DESC, created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.pool.Query(ctx, query, companyID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries for company %s: %w", companyID, err)
	}
	defer rows.Close()

	entries := []domain.JournalEntry{}
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry for company %s: %w", companyID, err)
		}
		entries = append(entries, *entry)
	}
	return entries, rows.Err()
}

// NextReferenceNumber atomically increments the per-(prefix, year) counter.
// The upsert makes concurrent allocations serialize on the counter row, so
// two creates can never share a reference number.
func (r *PgxJournalEntryRepository) NextReferenceNumber(ctx context.Context, prefix string, year int) (int64, error) {
	query := `
		INSERT INTO reference_counters (prefix, year, last_value)
		VALUES ($1, $2, 1)
		ON CONFLICT (prefix, year)
		DO UPDATE SET last_value = reference_counters.last_value + 1
		RETURNING last_value;
	`
	var seq int64
	if err := r.pool.QueryRow(ctx, query, prefix, year).Scan(&seq); err != nil {
		return 0, fmt.Errorf("failed to allocate reference number for %s-%d: %w", prefix, year, err)
	}
	return seq, nil
}

// PostedAccountActivity aggregates debit and credit sums per account across
// posted entries dated on or before asOf.
func (r *PgxJournalEntryRepository) PostedAccountActivity(ctx context.Context, companyID string, asOf time.Time) ([]domain.AccountActivity, error) {
	query := `
		SELECT l.account_code,
			MIN(l.currency_code) AS currency_code,
			COALESCE(SUM(l.amount) FILTER (WHERE l.line_type = 'DEBIT'), 0) AS total_debits,
			COALESCE(SUM(l.amount) FILTER (WHERE l.line_type = 'CREDIT'), 0) AS total_credits
		FROM journal_lines l
		JOIN journal_entries e ON e.entry_id = l.entry_id
		WHERE e.status = 'POSTED'
			AND e.entry_date <= $1
			AND ($2 = '' OR e.company_id = $2)
		GROUP BY l.account_code
		ORDER BY l.account_code;
	`
	rows, err := r.pool.Query(ctx, query, asOf, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate posted account activity: %w", err)
	}
	defer rows.Close()

	activity := []domain.AccountActivity{}
	for rows.Next() {
		var act domain.AccountActivity
		if err := rows.Scan(&act.AccountCode, &act.CurrencyCode, &act.TotalDebits, &act.TotalCredits); err != nil {
			return nil, fmt.Errorf("failed to scan account activity: %w", err)
		}
		activity = append(activity, act)
	}
	return activity, rows.Err()
}
