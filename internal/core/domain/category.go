package domain

import "time"

// CategoryType defines the polarity of a category.
type CategoryType string

const (
	Income  CategoryType = "income"
	Expense CategoryType = "expense"
)

// IsValid reports whether the category type is one of the two allowed values.
func (t CategoryType) IsValid() bool {
	return t == Income || t == Expense
}

// Category is a user-defined label with a fixed polarity. The polarity
// drives the sign applied to new ledger writes referencing it.
type Category struct {
	CategoryID   string       `json:"categoryID"`
	UserID       string       `json:"userID"`
	CategoryType CategoryType `json:"categoryType"`
	Name         string       `json:"name"`
	CreatedAt    time.Time    `json:"createdAt"`
}
