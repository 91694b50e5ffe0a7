package models

import "time"

// Account is the database row representation of an account.
// No balance column exists; balances are derived from account_ledger.
type Account struct {
	AccountID   string    `db:"account_id"`
	UserID      string    `db:"user_id"`
	Name        string    `db:"account_name"`
	AccountType string    `db:"account_type"`
	CreatedAt   time.Time `db:"created_at"`
}
