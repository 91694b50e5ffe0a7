package dto

import (
	"time"

	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateLedgerEntryRequest defines the data needed to record a ledger entry.
// The caller-supplied sign of Amount is authoritative only when no category
// is given; otherwise the category's polarity decides the stored sign.
type CreateLedgerEntryRequest struct {
	AccountID       string          `json:"accountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	CategoryID      *string         `json:"categoryID"`
	Narration       *string         `json:"narration"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
}

// UpdateLedgerEntryRequest defines the data allowed for updating an entry.
// Pointers distinguish omitted fields from zero values.
type UpdateLedgerEntryRequest struct {
	AccountID       *string          `json:"accountID"`
	Amount          *decimal.Decimal `json:"amount"`
	CategoryID      *string          `json:"categoryID"`
	Narration       *string          `json:"narration"`
	TransactionDate *time.Time       `json:"transactionDate"`
}

// ListLedgerParams defines the query filters for listing ledger entries.
type ListLedgerParams struct {
	AccountID  string     `form:"accountID"`
	CategoryID string     `form:"categoryID"`
	StartDate  *time.Time `form:"startDate" time_format:"2006-01-02T15:04:05Z07:00"`
	EndDate    *time.Time `form:"endDate" time_format:"2006-01-02T15:04:05Z07:00"`
}

// LedgerEntryResponse defines the data returned for a ledger entry.
type LedgerEntryResponse struct {
	EntryID         string          `json:"entryID"`
	AccountID       string          `json:"accountID"`
	CreatedBy       string          `json:"createdBy"`
	Amount          decimal.Decimal `json:"amount"`
	CategoryID      *string         `json:"categoryID"`
	Narration       *string         `json:"narration"`
	TransactionDate time.Time       `json:"transactionDate"`
	CreatedOn       time.Time       `json:"createdOn"`
}

// ToLedgerEntryResponse converts a domain.LedgerEntry to LedgerEntryResponse DTO.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	resp := LedgerEntryResponse{
		EntryID:         e.EntryID,
		AccountID:       e.AccountID,
		CreatedBy:       e.CreatedBy,
		Amount:          e.Amount,
		TransactionDate: e.TransactionDate,
		CreatedOn:       e.CreatedOn,
	}
	if e.CategoryID != "" {
		categoryID := e.CategoryID
		resp.CategoryID = &categoryID
	}
	if e.Narration != "" {
		narration := e.Narration
		resp.Narration = &narration
	}
	return resp
}

// ToListLedgerEntryResponse converts a slice of domain.LedgerEntry to DTOs.
func ToListLedgerEntryResponse(entries []domain.LedgerEntry) []LedgerEntryResponse {
	res := make([]LedgerEntryResponse, len(entries))
	for i := range entries {
		res[i] = ToLedgerEntryResponse(&entries[i])
	}
	return res
}

// TransferRequest defines the data needed to move funds between two accounts
// owned by the same user.
type TransferRequest struct {
	FromAccountID   string          `json:"fromAccountID" binding:"required"`
	ToAccountID     string          `json:"toAccountID" binding:"required"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Narration       *string         `json:"narration"`
	TransactionDate time.Time       `json:"transactionDate" binding:"required"`
}
