package pgsql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/elephantbook/eb-backend/internal/apperrors"
	"github.com/elephantbook/eb-backend/internal/core/domain"
	portsrepo "github.com/elephantbook/eb-backend/internal/core/ports/repositories"
	"github.com/elephantbook/eb-backend/internal/models"
	"github.com/elephantbook/eb-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entry data.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryFacade {
	return &PgxLedgerRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerRepositoryFacade = (*PgxLedgerRepository)(nil)

const insertEntryQuery = `
	INSERT INTO account_ledger (entry_id, account_id, created_by, amount, category_id, narration, transaction_date, created_on)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
`

// entryInsertArgs prepares the argument list for insertEntryQuery, mapping
// empty category/narration to NULL columns.
func entryInsertArgs(modelEntry models.LedgerEntry) []any {
	var categoryID, narration sql.NullString
	if modelEntry.CategoryID != "" {
		categoryID = sql.NullString{String: modelEntry.CategoryID, Valid: true}
	}
	if modelEntry.Narration != "" {
		narration = sql.NullString{String: modelEntry.Narration, Valid: true}
	}
	return []any{
		modelEntry.EntryID,
		modelEntry.AccountID,
		modelEntry.CreatedBy,
		modelEntry.Amount,
		categoryID,
		narration,
		modelEntry.TransactionDate,
		modelEntry.CreatedOn,
	}
}

// SaveEntry inserts a single ledger entry.
func (r *PgxLedgerRepository) SaveEntry(ctx context.Context, entry domain.LedgerEntry) error {
	modelEntry := mapping.ToModelLedgerEntry(entry)
	_, err := r.Pool.Exec(ctx, insertEntryQuery, entryInsertArgs(modelEntry)...)
	if err != nil {
		return fmt.Errorf("failed to save ledger entry %s: %w", modelEntry.EntryID, err)
	}
	return nil
}

// SaveTransferPair persists both halves of a transfer inside a single
// transaction. A failure on either insert leaves no row behind, so a
// transfer can never produce a dangling unmatched entry.
func (r *PgxLedgerRepository) SaveTransferPair(ctx context.Context, debit, credit domain.LedgerEntry) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	for _, entry := range []domain.LedgerEntry{debit, credit} {
		modelEntry := mapping.ToModelLedgerEntry(entry)
		if _, err := tx.Exec(ctx, insertEntryQuery, entryInsertArgs(modelEntry)...); err != nil {
			return fmt.Errorf("failed to save transfer entry %s: %w", modelEntry.EntryID, err)
		}
	}

	return r.Commit(ctx, tx)
}

const selectEntryColumns = `
	l.entry_id, l.account_id, l.created_by, l.amount, l.category_id, l.narration, l.transaction_date, l.created_on
`

func scanEntry(row pgx.Row) (*models.LedgerEntry, error) {
	var modelEntry models.LedgerEntry
	var categoryID, narration sql.NullString
	err := row.Scan(
		&modelEntry.EntryID,
		&modelEntry.AccountID,
		&modelEntry.CreatedBy,
		&modelEntry.Amount,
		&categoryID,
		&narration,
		&modelEntry.TransactionDate,
		&modelEntry.CreatedOn,
	)
	if err != nil {
		return nil, err
	}
	if categoryID.Valid {
		modelEntry.CategoryID = categoryID.String
	}
	if narration.Valid {
		modelEntry.Narration = narration.String
	}
	return &modelEntry, nil
}

// FindEntryForUser retrieves an entry by ID, scoped through its account to
// the owning user. Another user's entry is indistinguishable from a missing
// one.
func (r *PgxLedgerRepository) FindEntryForUser(ctx context.Context, userID, entryID string) (*domain.LedgerEntry, error) {
	query := `
		SELECT ` + selectEntryColumns + `
		FROM account_ledger l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE l.entry_id = $1 AND a.user_id = $2;
	`
	modelEntry, err := scanEntry(r.Pool.QueryRow(ctx, query, entryID, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find ledger entry %s: %w", entryID, err)
	}
	domainEntry := mapping.ToDomainLedgerEntry(*modelEntry)
	return &domainEntry, nil
}

// ListEntriesForUser returns the user's entries matching the filter, newest
// transaction date first. Ownership is a first-class predicate of the query,
// not a post-filter.
func (r *PgxLedgerRepository) ListEntriesForUser(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.LedgerEntry, error) {
	query := `
		SELECT ` + selectEntryColumns + `
		FROM account_ledger l
		JOIN accounts a ON a.account_id = l.account_id
		WHERE a.user_id = $1
	`
	args := []any{userID}
	if filter.AccountID != "" {
		args = append(args, filter.AccountID)
		query += " AND l.account_id = $" + strconv.Itoa(len(args))
	}
	if filter.CategoryID != "" {
		args = append(args, filter.CategoryID)
		query += " AND l.category_id = $" + strconv.Itoa(len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += " AND l.transaction_date >= $" + strconv.Itoa(len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += " AND l.transaction_date <= $" + strconv.Itoa(len(args))
	}
	query += " ORDER BY l.transaction_date DESC;"

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger entries for user %s: %w", userID, err)
	}
	defer rows.Close()

	entries := []domain.LedgerEntry{}
	for rows.Next() {
		modelEntry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan ledger entry row for user %s: %w", userID, err)
		}
		entries = append(entries, mapping.ToDomainLedgerEntry(*modelEntry))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating ledger entry rows for user %s: %w", userID, rows.Err())
	}
	return entries, nil
}

// UpdateEntry rewrites the mutable fields of an entry. CreatedBy and
// CreatedOn are immutable and never part of the update.
func (r *PgxLedgerRepository) UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error {
	modelEntry := mapping.ToModelLedgerEntry(entry)

	var categoryID, narration sql.NullString
	if modelEntry.CategoryID != "" {
		categoryID = sql.NullString{String: modelEntry.CategoryID, Valid: true}
	}
	if modelEntry.Narration != "" {
		narration = sql.NullString{String: modelEntry.Narration, Valid: true}
	}

	query := `
		UPDATE account_ledger
		SET account_id = $2, amount = $3, category_id = $4, narration = $5, transaction_date = $6
		WHERE entry_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelEntry.EntryID,
		modelEntry.AccountID,
		modelEntry.Amount,
		categoryID,
		narration,
		modelEntry.TransactionDate,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update ledger entry %s: %w", modelEntry.EntryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteEntry removes a single entry. Deleting one half of a transfer pair
// does not touch its sibling.
func (r *PgxLedgerRepository) DeleteEntry(ctx context.Context, entryID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM account_ledger WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entry %s: %w", entryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SumAmountByAccount computes the account balance as an exact decimal sum
// over its entries, zero when there are none. The sum is evaluated in the
// database on the NUMERIC column, so no floating-point error can creep in.
func (r *PgxLedgerRepository) SumAmountByAccount(ctx context.Context, accountID string) (decimal.Decimal, error) {
	var balance decimal.Decimal
	query := `SELECT COALESCE(SUM(amount), 0) FROM account_ledger WHERE account_id = $1;`
	if err := r.Pool.QueryRow(ctx, query, accountID).Scan(&balance); err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum ledger amounts for account %s: %w", accountID, err)
	}
	return balance, nil
}
