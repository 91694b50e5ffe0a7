package services

import (
	"context"

	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/elephantbook/eb-backend/internal/dto"
)

// LedgerSvcFacade defines ledger entry operations, including the transfer
// engine. All referenced accounts and categories are resolved under the
// acting user before any write.
type LedgerSvcFacade interface {
	CreateEntry(ctx context.Context, userID string, req dto.CreateLedgerEntryRequest) (*domain.LedgerEntry, error)
	GetEntry(ctx context.Context, userID, entryID string) (*domain.LedgerEntry, error)
	ListEntries(ctx context.Context, userID string, params dto.ListLedgerParams) ([]domain.LedgerEntry, error)
	UpdateEntry(ctx context.Context, userID, entryID string, req dto.UpdateLedgerEntryRequest) (*domain.LedgerEntry, error)
	DeleteEntry(ctx context.Context, userID, entryID string) error
	// Transfer atomically creates the two sign-matched entries of a funds
	// movement between two accounts of the same user; the debit entry is
	// returned first.
	Transfer(ctx context.Context, userID string, req dto.TransferRequest) (*domain.LedgerEntry, *domain.LedgerEntry, error)
}
