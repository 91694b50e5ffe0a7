package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/elephantbook/eb-backend/internal/apperrors"
	"github.com/elephantbook/eb-backend/internal/core/domain"
	portsrepo "github.com/elephantbook/eb-backend/internal/core/ports/repositories"
	"github.com/elephantbook/eb-backend/internal/models"
	"github.com/elephantbook/eb-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) portsrepo.AccountRepositoryFacade {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

// SaveAccount inserts a new account.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		INSERT INTO accounts (account_id, user_id, account_name, account_type, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.UserID,
		modelAcc.Name,
		modelAcc.AccountType,
		modelAcc.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save account %s: %w", modelAcc.AccountID, err)
	}
	return nil
}

// FindAccountForUser retrieves an account by ID, scoped to the owning user.
// A missing account and another user's account are indistinguishable: both
// return apperrors.ErrNotFound.
func (r *PgxAccountRepository) FindAccountForUser(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	query := `
		SELECT account_id, user_id, account_name, account_type, created_at
		FROM accounts
		WHERE account_id = $1 AND user_id = $2;
	`
	var modelAcc models.Account
	err := r.Pool.QueryRow(ctx, query, accountID, userID).Scan(
		&modelAcc.AccountID,
		&modelAcc.UserID,
		&modelAcc.Name,
		&modelAcc.AccountType,
		&modelAcc.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find account %s: %w", accountID, err)
	}
	domainAcc := mapping.ToDomainAccount(modelAcc)
	return &domainAcc, nil
}

// ListAccountsForUser retrieves all accounts owned by the user.
func (r *PgxAccountRepository) ListAccountsForUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `
		SELECT account_id, user_id, account_name, account_type, created_at
		FROM accounts
		WHERE user_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts for user %s: %w", userID, err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		var modelAcc models.Account
		err := rows.Scan(
			&modelAcc.AccountID,
			&modelAcc.UserID,
			&modelAcc.Name,
			&modelAcc.AccountType,
			&modelAcc.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row for user %s: %w", userID, err)
		}
		accounts = append(accounts, mapping.ToDomainAccount(modelAcc))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating account rows for user %s: %w", userID, rows.Err())
	}
	return accounts, nil
}

// UpdateAccount updates the mutable fields of an existing account.
func (r *PgxAccountRepository) UpdateAccount(ctx context.Context, account domain.Account) error {
	modelAcc := mapping.ToModelAccount(account)

	query := `
		UPDATE accounts
		SET account_name = $2, account_type = $3
		WHERE account_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelAcc.AccountID,
		modelAcc.Name,
		modelAcc.AccountType,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update account %s: %w", modelAcc.AccountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteAccountCascade removes the account and all its ledger entries inside
// one transaction. Entries are deleted, never reparented.
func (r *PgxAccountRepository) DeleteAccountCascade(ctx context.Context, accountID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `DELETE FROM account_ledger WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entries for account %s: %w", accountID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1;`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %s: %w", accountID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
