package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/elephantbook/eb-backend/internal/apperrors"
	"github.com/elephantbook/eb-backend/internal/core/domain"
	portsrepo "github.com/elephantbook/eb-backend/internal/core/ports/repositories"
	portssvc "github.com/elephantbook/eb-backend/internal/core/ports/services"
	"github.com/elephantbook/eb-backend/internal/dto"
	"github.com/elephantbook/eb-backend/internal/middleware"
)

// accountService provides account operations. Every read resolves the
// account under the acting user first, and every balance is summed fresh
// from the ledger; nothing is cached or stored.
type accountService struct {
	accountRepo portsrepo.AccountRepositoryFacade
	ledgerRepo  portsrepo.LedgerRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		ledgerRepo:  ledgerRepo,
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount creates a new account for the acting user. A new account
// always starts with a zero balance since it has no entries yet.
func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.AccountWithBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account := domain.Account{
		AccountID:   uuid.NewString(),
		UserID:      userID,
		Name:        req.Name,
		AccountType: req.AccountType,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create account: %w", err)
	}

	logger.Info("Account created", slog.String("account_id", account.AccountID))
	return &domain.AccountWithBalance{Account: account, Balance: decimal.Zero}, nil
}

// GetAccount retrieves one account with its derived balance.
func (s *accountService) GetAccount(ctx context.Context, userID, accountID string) (*domain.AccountWithBalance, error) {
	account, err := s.accountRepo.FindAccountForUser(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}
	return s.withBalance(ctx, account)
}

// ListAccounts retrieves all of the user's accounts, each with its derived
// balance.
func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.AccountWithBalance, error) {
	accounts, err := s.accountRepo.ListAccountsForUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := make([]domain.AccountWithBalance, 0, len(accounts))
	for i := range accounts {
		withBalance, err := s.withBalance(ctx, &accounts[i])
		if err != nil {
			return nil, err
		}
		result = append(result, *withBalance)
	}
	return result, nil
}

// UpdateAccount applies a partial update to an account the user owns.
func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.AccountWithBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	account, err := s.accountRepo.FindAccountForUser(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.AccountType != nil {
		account.AccountType = *req.AccountType
	}

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update account", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Account updated", slog.String("account_id", accountID))
	return s.withBalance(ctx, account)
}

// DeleteAccount removes an account the user owns together with all its
// ledger entries, atomically. Entries are gone for good; they are not
// reparented or archived.
func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Resolve first so a foreign account reads as not found before any
	// delete is attempted.
	if _, err := s.accountRepo.FindAccountForUser(ctx, userID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccountCascade(ctx, accountID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete account", slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) withBalance(ctx context.Context, account *domain.Account) (*domain.AccountWithBalance, error) {
	balance, err := s.ledgerRepo.SumAmountByAccount(ctx, account.AccountID)
	if err != nil {
		return nil, fmt.Errorf("failed to compute balance for account %s: %w", account.AccountID, err)
	}
	return &domain.AccountWithBalance{Account: *account, Balance: balance}, nil
}
