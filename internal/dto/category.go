package dto

import (
	"time"

	"github.com/elephantbook/eb-backend/internal/core/domain"
)

// CreateCategoryRequest defines the data needed to create a new category.
// CategoryType is validated again in the service layer so the same rule
// applies to every caller, not only HTTP binding.
type CreateCategoryRequest struct {
	CategoryType domain.CategoryType `json:"categoryType" binding:"required,oneof=income expense"`
	Name         string              `json:"name" binding:"required"`
}

// UpdateCategoryRequest defines the data allowed for updating a category.
type UpdateCategoryRequest struct {
	CategoryType *domain.CategoryType `json:"categoryType" binding:"omitempty,oneof=income expense"`
	Name         *string              `json:"name"`
}

// CategoryResponse defines the data returned for a category.
type CategoryResponse struct {
	CategoryID   string              `json:"categoryID"`
	UserID       string              `json:"userID"`
	CategoryType domain.CategoryType `json:"categoryType"`
	Name         string              `json:"name"`
	CreatedAt    time.Time           `json:"createdAt"`
}

// ToCategoryResponse converts a domain.Category to CategoryResponse DTO.
func ToCategoryResponse(cat *domain.Category) CategoryResponse {
	return CategoryResponse{
		CategoryID:   cat.CategoryID,
		UserID:       cat.UserID,
		CategoryType: cat.CategoryType,
		Name:         cat.Name,
		CreatedAt:    cat.CreatedAt,
	}
}

// ToListCategoryResponse converts a slice of domain.Category to CategoryResponse DTOs.
func ToListCategoryResponse(categories []domain.Category) []CategoryResponse {
	res := make([]CategoryResponse, len(categories))
	for i := range categories {
		res[i] = ToCategoryResponse(&categories[i])
	}
	return res
}
