package repositories

import (
	"context"

	"github.com/elephantbook/eb-backend/internal/core/domain"
)

// UserRepositoryFacade defines persistence operations for users.
type UserRepositoryFacade interface {
	// SaveUser inserts a new user. Returns apperrors.ErrDuplicate if the
	// email is already registered.
	SaveUser(ctx context.Context, user domain.User) error
	// FindUserByID returns apperrors.ErrNotFound if no such user exists.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)
	// FindUserByEmail returns apperrors.ErrNotFound if no such user exists.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	// DeleteUserCascade removes the user together with all their ledger
	// entries, categories and accounts, as ordered deletes inside a single
	// transaction.
	DeleteUserCascade(ctx context.Context, userID string) error
}
