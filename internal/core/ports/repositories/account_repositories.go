package repositories

import (
	"context"

	"github.com/elephantbook/eb-backend/internal/core/domain"
)

// AccountRepositoryFacade defines persistence operations for accounts.
// Every lookup takes the acting user's ID as a first-class query predicate;
// an account that exists but belongs to another user is indistinguishable
// from a missing one (apperrors.ErrNotFound).
type AccountRepositoryFacade interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountForUser(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccountsForUser(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	// DeleteAccountCascade removes the account and all its ledger entries
	// inside a single transaction. Entries are not reparented or archived.
	DeleteAccountCascade(ctx context.Context, accountID string) error
}
