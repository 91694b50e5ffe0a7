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
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxUserRepository struct {
	BaseRepository
}

// newPgxUserRepository creates a new repository for user data.
func newPgxUserRepository(pool *pgxpool.Pool) portsrepo.UserRepositoryFacade {
	return &PgxUserRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.UserRepositoryFacade = (*PgxUserRepository)(nil)

// SaveUser inserts a new user. The unique index on email surfaces duplicate
// registrations as apperrors.ErrDuplicate.
func (r *PgxUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	modelUser := mapping.ToModelUser(user)

	query := `
		INSERT INTO users (user_id, first_name, last_name, email, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelUser.UserID,
		modelUser.FirstName,
		modelUser.LastName,
		modelUser.Email,
		modelUser.PasswordHash,
		modelUser.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // Unique violation
			return fmt.Errorf("%w: email %s is already registered", apperrors.ErrDuplicate, modelUser.Email)
		}
		return fmt.Errorf("failed to save user %s: %w", modelUser.UserID, err)
	}
	return nil
}

// FindUserByID retrieves a user by their ID.
func (r *PgxUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	query := `
		SELECT user_id, first_name, last_name, email, password_hash, created_at
		FROM users
		WHERE user_id = $1;
	`
	return r.scanUser(r.Pool.QueryRow(ctx, query, userID), userID)
}

// FindUserByEmail retrieves a user by their unique email.
func (r *PgxUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `
		SELECT user_id, first_name, last_name, email, password_hash, created_at
		FROM users
		WHERE email = $1;
	`
	return r.scanUser(r.Pool.QueryRow(ctx, query, email), email)
}

func (r *PgxUserRepository) scanUser(row pgx.Row, key string) (*domain.User, error) {
	var modelUser models.User
	err := row.Scan(
		&modelUser.UserID,
		&modelUser.FirstName,
		&modelUser.LastName,
		&modelUser.Email,
		&modelUser.PasswordHash,
		&modelUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user %s: %w", key, err)
	}
	domainUser := mapping.ToDomainUser(modelUser)
	return &domainUser, nil
}

// DeleteUserCascade removes a user and everything they own, as explicit
// ordered deletes inside one transaction: ledger entries first (they hang
// off accounts), then categories, then accounts, then the user row.
func (r *PgxUserRepository) DeleteUserCascade(ctx context.Context, userID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `
		DELETE FROM account_ledger
		WHERE account_id IN (SELECT account_id FROM accounts WHERE user_id = $1);
	`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete ledger entries for user %s: %w", userID, err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM categories WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete categories for user %s: %w", userID, err)
	}

	_, err = tx.Exec(ctx, `DELETE FROM accounts WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete accounts for user %s: %w", userID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM users WHERE user_id = $1;`, userID)
	if err != nil {
		return fmt.Errorf("failed to delete user %s: %w", userID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
