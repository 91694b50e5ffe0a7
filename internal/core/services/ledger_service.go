package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elephantbook/eb-backend/internal/apperrors"
	"github.com/elephantbook/eb-backend/internal/core/domain"
	portsrepo "github.com/elephantbook/eb-backend/internal/core/ports/repositories"
	portssvc "github.com/elephantbook/eb-backend/internal/core/ports/services"
	"github.com/elephantbook/eb-backend/internal/dto"
	"github.com/elephantbook/eb-backend/internal/middleware"
	"github.com/elephantbook/eb-backend/internal/utils/accounting"
)

// ErrSameAccountTransfer is returned when a transfer names the same account
// on both sides.
var ErrSameAccountTransfer = fmt.Errorf("%w: from and to accounts must be different", apperrors.ErrValidation)

// ledgerService provides ledger entry operations and the transfer engine.
// Every referenced account or category is resolved under the acting user
// before a write; a failed resolve rejects the whole write with no partial
// mutation, and a not-owned reference reads exactly like a missing one.
type ledgerService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	categoryRepo portsrepo.CategoryRepositoryFacade
	ledgerRepo   portsrepo.LedgerRepositoryFacade
}

// NewLedgerService creates a new LedgerService.
func NewLedgerService(
	accountRepo portsrepo.AccountRepositoryFacade,
	categoryRepo portsrepo.CategoryRepositoryFacade,
	ledgerRepo portsrepo.LedgerRepositoryFacade,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		accountRepo:  accountRepo,
		categoryRepo: categoryRepo,
		ledgerRepo:   ledgerRepo,
	}
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// CreateEntry records a new ledger entry. When a category is supplied, the
// stored sign is forced to match the category's polarity regardless of the
// caller's sign; without a category the caller's sign is authoritative.
func (s *ledgerService) CreateEntry(ctx context.Context, userID string, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.accountRepo.FindAccountForUser(ctx, userID, req.AccountID); err != nil {
		return nil, err
	}

	amount := req.Amount.Round(2)
	categoryID := ""
	if req.CategoryID != nil && *req.CategoryID != "" {
		category, err := s.categoryRepo.FindCategoryForUser(ctx, userID, *req.CategoryID)
		if err != nil {
			return nil, err
		}
		amount, err = accounting.NormalizeAmount(amount, category.CategoryType)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
		categoryID = category.CategoryID
	}

	narration := ""
	if req.Narration != nil {
		narration = *req.Narration
	}

	entry := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		AccountID:       req.AccountID,
		CreatedBy:       userID,
		Amount:          amount,
		CategoryID:      categoryID,
		Narration:       narration,
		TransactionDate: req.TransactionDate,
		CreatedOn:       time.Now().UTC(),
	}

	if err := s.ledgerRepo.SaveEntry(ctx, entry); err != nil {
		logger.Error("Failed to save ledger entry", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create ledger entry: %w", err)
	}

	logger.Info("Ledger entry created", slog.String("entry_id", entry.EntryID), slog.String("account_id", entry.AccountID))
	return &entry, nil
}

// GetEntry retrieves one entry owned (via its account) by the user.
func (s *ledgerService) GetEntry(ctx context.Context, userID, entryID string) (*domain.LedgerEntry, error) {
	return s.ledgerRepo.FindEntryForUser(ctx, userID, entryID)
}

// ListEntries returns the user's entries matching the filters, newest
// transaction date first.
func (s *ledgerService) ListEntries(ctx context.Context, userID string, params dto.ListLedgerParams) ([]domain.LedgerEntry, error) {
	filter := domain.EntryFilter{
		AccountID:  params.AccountID,
		CategoryID: params.CategoryID,
		StartDate:  params.StartDate,
		EndDate:    params.EndDate,
	}
	return s.ledgerRepo.ListEntriesForUser(ctx, userID, filter)
}

// UpdateEntry rewrites an entry. Every referenced entity in the request is
// resolved under the acting user before anything is persisted, so a write
// that changes both account and category fails wholly if either resolve
// fails. The sign is re-derived from the category on record after the
// update, even when only the amount changed. Setting categoryID to the
// empty string clears the category, making the caller's sign authoritative
// again.
func (s *ledgerService) UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateLedgerEntryRequest) (*domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.ledgerRepo.FindEntryForUser(ctx, userID, entryID)
	if err != nil {
		return nil, err
	}

	if req.AccountID != nil {
		if _, err := s.accountRepo.FindAccountForUser(ctx, userID, *req.AccountID); err != nil {
			return nil, err
		}
		entry.AccountID = *req.AccountID
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			entry.CategoryID = ""
		} else {
			if _, err := s.categoryRepo.FindCategoryForUser(ctx, userID, *req.CategoryID); err != nil {
				return nil, err
			}
			entry.CategoryID = *req.CategoryID
		}
	}
	if req.Amount != nil {
		entry.Amount = req.Amount.Round(2)
	}
	if req.Narration != nil {
		entry.Narration = *req.Narration
	}
	if req.TransactionDate != nil {
		entry.TransactionDate = *req.TransactionDate
	}

	// Re-apply sign normalization from the category now on record, not from
	// whatever polarity it had when the entry was created.
	if entry.CategoryID != "" {
		category, err := s.categoryRepo.FindCategoryForUser(ctx, userID, entry.CategoryID)
		if err != nil {
			return nil, err
		}
		entry.Amount, err = accounting.NormalizeAmount(entry.Amount, category.CategoryType)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
		}
	}

	if err := s.ledgerRepo.UpdateEntry(ctx, *entry); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update ledger entry", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Ledger entry updated", slog.String("entry_id", entryID))
	return entry, nil
}

// DeleteEntry removes a single entry the user owns. Deleting one half of a
// transfer pair leaves its sibling untouched; the pair is not linked after
// creation.
func (s *ledgerService) DeleteEntry(ctx context.Context, userID, entryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.ledgerRepo.FindEntryForUser(ctx, userID, entryID); err != nil {
		return err
	}

	if err := s.ledgerRepo.DeleteEntry(ctx, entryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete ledger entry", slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Ledger entry deleted", slog.String("entry_id", entryID))
	return nil
}

// Transfer creates the two entries of a funds movement between two accounts
// of the same user. Preconditions are checked in order, first failure wins:
// identical accounts are a validation error, then both accounts must
// resolve under the acting user. Both entries carry no category, share the
// transaction date and are persisted in one transaction; the debit entry is
// returned first.
func (s *ledgerService) Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*domain.LedgerEntry, *domain.LedgerEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.FromAccountID == req.ToAccountID {
		return nil, nil, ErrSameAccountTransfer
	}

	fromAccount, err := s.accountRepo.FindAccountForUser(ctx, userID, req.FromAccountID)
	if err != nil {
		return nil, nil, err
	}
	toAccount, err := s.accountRepo.FindAccountForUser(ctx, userID, req.ToAccountID)
	if err != nil {
		return nil, nil, err
	}

	amount := req.Amount.Round(2).Abs()

	debitNarration := "Transfer to " + toAccount.Name
	creditNarration := "Transfer from " + fromAccount.Name
	if req.Narration != nil && *req.Narration != "" {
		debitNarration = *req.Narration
		creditNarration = *req.Narration
	}

	now := time.Now().UTC()
	debit := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		AccountID:       fromAccount.AccountID,
		CreatedBy:       userID,
		Amount:          amount.Neg(),
		Narration:       debitNarration,
		TransactionDate: req.TransactionDate,
		CreatedOn:       now,
	}
	credit := domain.LedgerEntry{
		EntryID:         uuid.NewString(),
		AccountID:       toAccount.AccountID,
		CreatedBy:       userID,
		Amount:          amount,
		Narration:       creditNarration,
		TransactionDate: req.TransactionDate,
		CreatedOn:       now,
	}

	if err := s.ledgerRepo.SaveTransferPair(ctx, debit, credit); err != nil {
		logger.Error("Failed to save transfer pair", slog.String("error", err.Error()))
		return nil, nil, fmt.Errorf("failed to save transfer: %w", err)
	}

	logger.Info("Transfer completed",
		slog.String("from_account_id", fromAccount.AccountID),
		slog.String("to_account_id", toAccount.AccountID),
		slog.String("amount", amount.String()),
	)
	return &debit, &credit, nil
}
