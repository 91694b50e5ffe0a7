package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/elephantbook/eb-backend/internal/apperrors"
	"github.com/elephantbook/eb-backend/internal/core/domain"
	portsrepo "github.com/elephantbook/eb-backend/internal/core/ports/repositories"
	portssvc "github.com/elephantbook/eb-backend/internal/core/ports/services"
	"github.com/elephantbook/eb-backend/internal/dto"
	"github.com/elephantbook/eb-backend/internal/middleware"
)

// categoryService provides category operations. The category_type check is
// enforced here so an invalid polarity can never reach the ledger.
type categoryService struct {
	categoryRepo portsrepo.CategoryRepositoryFacade
}

// NewCategoryService creates a new CategoryService.
func NewCategoryService(categoryRepo portsrepo.CategoryRepositoryFacade) portssvc.CategorySvcFacade {
	return &categoryService{categoryRepo: categoryRepo}
}

var _ portssvc.CategorySvcFacade = (*categoryService)(nil)

// CreateCategory creates a new category for the acting user.
func (s *categoryService) CreateCategory(ctx context.Context, userID string, req dto.CreateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.CategoryType.IsValid() {
		return nil, fmt.Errorf("%w: category_type must be 'income' or 'expense'", apperrors.ErrValidation)
	}

	category := domain.Category{
		CategoryID:   uuid.NewString(),
		UserID:       userID,
		CategoryType: req.CategoryType,
		Name:         req.Name,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.categoryRepo.SaveCategory(ctx, category); err != nil {
		logger.Error("Failed to save category", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	logger.Info("Category created", slog.String("category_id", category.CategoryID))
	return &category, nil
}

// GetCategory retrieves one category owned by the user.
func (s *categoryService) GetCategory(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	return s.categoryRepo.FindCategoryForUser(ctx, userID, categoryID)
}

// ListCategories retrieves all of the user's categories.
func (s *categoryService) ListCategories(ctx context.Context, userID string) ([]domain.Category, error) {
	return s.categoryRepo.ListCategoriesForUser(ctx, userID)
}

// UpdateCategory applies a partial update to a category the user owns.
// A type change only affects the sign of future ledger writes referencing
// the category; persisted amounts are never recomputed.
func (s *categoryService) UpdateCategory(ctx context.Context, userID, categoryID string, req dto.UpdateCategoryRequest) (*domain.Category, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	category, err := s.categoryRepo.FindCategoryForUser(ctx, userID, categoryID)
	if err != nil {
		return nil, err
	}

	if req.CategoryType != nil {
		if !req.CategoryType.IsValid() {
			return nil, fmt.Errorf("%w: category_type must be 'income' or 'expense'", apperrors.ErrValidation)
		}
		category.CategoryType = *req.CategoryType
	}
	if req.Name != nil {
		category.Name = *req.Name
	}

	if err := s.categoryRepo.UpdateCategory(ctx, *category); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to update category", slog.String("error", err.Error()))
		}
		return nil, err
	}

	logger.Info("Category updated", slog.String("category_id", categoryID))
	return category, nil
}

// DeleteCategory removes a category the user owns. Ledger entries that
// still reference it are unlinked (category set to null) in the same
// transaction; their amounts keep the sign they were persisted with.
func (s *categoryService) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.categoryRepo.FindCategoryForUser(ctx, userID, categoryID); err != nil {
		return err
	}

	if err := s.categoryRepo.DeleteCategoryAndUnlinkEntries(ctx, categoryID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete category", slog.String("error", err.Error()))
		}
		return err
	}

	logger.Info("Category deleted", slog.String("category_id", categoryID))
	return nil
}
