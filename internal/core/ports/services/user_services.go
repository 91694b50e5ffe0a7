package services

import (
	"context"
	"time"

	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/elephantbook/eb-backend/internal/dto"
)

// UserSvcFacade defines the identity operations the rest of the application
// consumes. The core only ever sees the resolved user ID.
type UserSvcFacade interface {
	// Register creates a new user with a hashed password. Returns
	// apperrors.ErrDuplicate if the email is already registered.
	Register(ctx context.Context, req dto.SignupRequest) (*domain.User, error)
	// Authenticate verifies the credentials and returns the user, or
	// apperrors.ErrUnauthorized on any mismatch.
	Authenticate(ctx context.Context, email, password string) (*domain.User, error)
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)
	// DeleteUser removes the user and everything they own.
	DeleteUser(ctx context.Context, userID string) error
}

// TokenSvcFacade issues bearer credentials for authenticated users.
type TokenSvcFacade interface {
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error)
}
