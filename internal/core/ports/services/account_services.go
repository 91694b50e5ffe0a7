package services

import (
	"context"

	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/elephantbook/eb-backend/internal/dto"
)

// AccountSvcFacade defines account operations. Every operation takes the
// acting user's ID and treats not-owned accounts as not found.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.AccountWithBalance, error)
	GetAccount(ctx context.Context, userID, accountID string) (*domain.AccountWithBalance, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.AccountWithBalance, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.AccountWithBalance, error)
	// DeleteAccount removes the account and all its entries atomically.
	DeleteAccount(ctx context.Context, userID, accountID string) error
}
