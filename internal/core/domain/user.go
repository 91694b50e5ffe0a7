package domain

import "time"

// User represents a registered user of the application.
// It is the ownership anchor for accounts and categories.
type User struct {
	UserID       string    `json:"userID"`
	FirstName    string    `json:"firstName"`
	LastName     string    `json:"lastName"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
