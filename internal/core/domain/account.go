package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a named bucket of funds owned by exactly one user.
// Its balance is never stored; it is always derived by summing the
// amounts of its ledger entries.
type Account struct {
	AccountID   string    `json:"accountID"`
	UserID      string    `json:"userID"`
	Name        string    `json:"name"`
	AccountType string    `json:"accountType"` // free-form tag, e.g. "checking", "cash"
	CreatedAt   time.Time `json:"createdAt"`
}

// AccountWithBalance pairs an account with its derived balance.
type AccountWithBalance struct {
	Account
	Balance decimal.Decimal `json:"balance"`
}
