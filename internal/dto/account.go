package dto

import (
	"time"

	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name        string `json:"name" binding:"required"`
	AccountType string `json:"accountType" binding:"required"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdateAccountRequest struct {
	Name        *string `json:"name"`
	AccountType *string `json:"accountType"`
}

// AccountResponse defines the data returned for an account, including its
// derived balance. The balance is computed fresh on every read.
type AccountResponse struct {
	AccountID   string          `json:"accountID"`
	UserID      string          `json:"userID"`
	Name        string          `json:"name"`
	AccountType string          `json:"accountType"`
	Balance     decimal.Decimal `json:"balance"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain.AccountWithBalance to AccountResponse DTO.
func ToAccountResponse(acc *domain.AccountWithBalance) AccountResponse {
	return AccountResponse{
		AccountID:   acc.AccountID,
		UserID:      acc.UserID,
		Name:        acc.Name,
		AccountType: acc.AccountType,
		Balance:     acc.Balance,
		CreatedAt:   acc.CreatedAt,
	}
}

// ToListAccountResponse converts a slice of domain.AccountWithBalance to
// a slice of AccountResponse DTOs.
func ToListAccountResponse(accounts []domain.AccountWithBalance) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i := range accounts {
		res[i] = ToAccountResponse(&accounts[i])
	}
	return res
}
