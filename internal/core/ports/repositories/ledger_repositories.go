package repositories

import (
	"context"

	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// LedgerRepositoryFacade defines persistence operations for ledger entries.
// Entry ownership is derived from the owning user of the entry's account, so
// single-entry lookups join through accounts with the user ID as predicate.
type LedgerRepositoryFacade interface {
	SaveEntry(ctx context.Context, entry domain.LedgerEntry) error
	// SaveTransferPair persists both halves of a transfer inside one
	// transaction; on any failure neither row is persisted.
	SaveTransferPair(ctx context.Context, debit, credit domain.LedgerEntry) error
	FindEntryForUser(ctx context.Context, userID, entryID string) (*domain.LedgerEntry, error)
	// ListEntriesForUser returns the user's entries matching the filter,
	// ordered by transaction date descending.
	ListEntriesForUser(ctx context.Context, userID string, filter domain.EntryFilter) ([]domain.LedgerEntry, error)
	UpdateEntry(ctx context.Context, entry domain.LedgerEntry) error
	DeleteEntry(ctx context.Context, entryID string) error
	// SumAmountByAccount computes the account balance as the exact decimal
	// sum over all its entries, zero when there are none. It is evaluated
	// fresh on every call; balances are never stored.
	SumAmountByAccount(ctx context.Context, accountID string) (decimal.Decimal, error)
}
