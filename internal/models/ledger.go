package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the database row representation of a ledger entry.
// Note: CategoryID and Narration are nullable columns; repositories scan
// them through sql.NullString and map NULL to the empty string.
type LedgerEntry struct {
	EntryID         string          `db:"entry_id"`
	AccountID       string          `db:"account_id"`
	CreatedBy       string          `db:"created_by"`
	Amount          decimal.Decimal `db:"amount"`
	CategoryID      string          `db:"category_id"`
	Narration       string          `db:"narration"`
	TransactionDate time.Time       `db:"transaction_date"`
	CreatedOn       time.Time       `db:"created_on"`
}
