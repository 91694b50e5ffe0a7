package models

import "time"

// Category is the database row representation of a category.
type Category struct {
	CategoryID   string    `db:"category_id"`
	UserID       string    `db:"user_id"`
	CategoryType string    `db:"category_type"`
	Name         string    `db:"name"`
	CreatedAt    time.Time `db:"created_at"`
}
