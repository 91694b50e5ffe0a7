package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is a single signed monetary movement recorded against one
// account. Positive amounts credit the account, negative amounts debit it.
// Entries created by the transfer engine carry no category.
type LedgerEntry struct {
	EntryID         string          `json:"entryID"`
	AccountID       string          `json:"accountID"`
	CreatedBy       string          `json:"createdBy"` // acting user at creation time, immutable
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      string          `json:"categoryID,omitempty"` // empty when uncategorized
	Narration       string          `json:"narration,omitempty"`
	TransactionDate time.Time       `json:"transactionDate"` // when the movement economically occurred
	CreatedOn       time.Time       `json:"createdOn"`       // record creation timestamp, immutable
}

// EntryFilter narrows a ledger listing. Zero values mean "no filter".
type EntryFilter struct {
	AccountID  string
	CategoryID string
	StartDate  *time.Time
	EndDate    *time.Time
}
