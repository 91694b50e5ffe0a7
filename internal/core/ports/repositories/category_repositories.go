package repositories

import (
	"context"

	"github.com/elephantbook/eb-backend/internal/core/domain"
)

// CategoryRepositoryFacade defines persistence operations for categories.
// Lookups are ownership-scoped like account lookups.
type CategoryRepositoryFacade interface {
	SaveCategory(ctx context.Context, category domain.Category) error
	FindCategoryForUser(ctx context.Context, userID, categoryID string) (*domain.Category, error)
	ListCategoriesForUser(ctx context.Context, userID string) ([]domain.Category, error)
	UpdateCategory(ctx context.Context, category domain.Category) error
	// DeleteCategoryAndUnlinkEntries deletes the category and nulls the
	// category reference on any ledger entries still pointing at it, both
	// inside a single transaction. Entry amounts are left untouched.
	DeleteCategoryAndUnlinkEntries(ctx context.Context, categoryID string) error
}
