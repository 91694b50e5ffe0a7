package mapping

import (
	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/elephantbook/eb-backend/internal/models"
)

// ToModelLedgerEntry converts a domain.LedgerEntry to its database row representation.
func ToModelLedgerEntry(d domain.LedgerEntry) models.LedgerEntry {
	return models.LedgerEntry{
		EntryID:         d.EntryID,
		AccountID:       d.AccountID,
		CreatedBy:       d.CreatedBy,
		Amount:          d.Amount,
		CategoryID:      d.CategoryID,
		Narration:       d.Narration,
		TransactionDate: d.TransactionDate,
		CreatedOn:       d.CreatedOn,
	}
}

// ToDomainLedgerEntry converts a database row to a domain.LedgerEntry.
func ToDomainLedgerEntry(m models.LedgerEntry) domain.LedgerEntry {
	return domain.LedgerEntry{
		EntryID:         m.EntryID,
		AccountID:       m.AccountID,
		CreatedBy:       m.CreatedBy,
		Amount:          m.Amount,
		CategoryID:      m.CategoryID,
		Narration:       m.Narration,
		TransactionDate: m.TransactionDate,
		CreatedOn:       m.CreatedOn,
	}
}
