package mapping

import (
	"github.com/elephantbook/eb-backend/internal/core/domain"
	"github.com/elephantbook/eb-backend/internal/models"
)

// ToModelCategory converts a domain.Category to its database row representation.
func ToModelCategory(d domain.Category) models.Category {
	return models.Category{
		CategoryID:   d.CategoryID,
		UserID:       d.UserID,
		CategoryType: string(d.CategoryType),
		Name:         d.Name,
		CreatedAt:    d.CreatedAt,
	}
}

// ToDomainCategory converts a database row to a domain.Category.
func ToDomainCategory(m models.Category) domain.Category {
	return domain.Category{
		CategoryID:   m.CategoryID,
		UserID:       m.UserID,
		CategoryType: domain.CategoryType(m.CategoryType),
		Name:         m.Name,
		CreatedAt:    m.CreatedAt,
	}
}
