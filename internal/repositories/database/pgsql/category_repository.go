package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/elephantbook/eb-backend/internal/apperrors"
	"github.com/elephantbook/eb-backend/internal/core/domain"
	portsrepo "github.com/elephantbook/eb-backend/internal/core/ports/repositories"
	"github.com/elephantbook/eb-backend/internal/models"
	"github.com/elephantbook/eb-backend/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCategoryRepository struct {
	BaseRepository
}

// newPgxCategoryRepository creates a new repository for category data.
func newPgxCategoryRepository(pool *pgxpool.Pool) portsrepo.CategoryRepositoryFacade {
	return &PgxCategoryRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.CategoryRepositoryFacade = (*PgxCategoryRepository)(nil)

// SaveCategory inserts a new category.
func (r *PgxCategoryRepository) SaveCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		INSERT INTO categories (category_id, user_id, category_type, name, created_at)
		VALUES ($1, $2, $3, $4, $5);
	`
	_, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.UserID,
		modelCat.CategoryType,
		modelCat.Name,
		modelCat.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save category %s: %w", modelCat.CategoryID, err)
	}
	return nil
}

// FindCategoryForUser retrieves a category by ID, scoped to the owning user.
func (r *PgxCategoryRepository) FindCategoryForUser(ctx context.Context, userID, categoryID string) (*domain.Category, error) {
	query := `
		SELECT category_id, user_id, category_type, name, created_at
		FROM categories
		WHERE category_id = $1 AND user_id = $2;
	`
	var modelCat models.Category
	err := r.Pool.QueryRow(ctx, query, categoryID, userID).Scan(
		&modelCat.CategoryID,
		&modelCat.UserID,
		&modelCat.CategoryType,
		&modelCat.Name,
		&modelCat.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find category %s: %w", categoryID, err)
	}
	domainCat := mapping.ToDomainCategory(modelCat)
	return &domainCat, nil
}

// ListCategoriesForUser retrieves all categories owned by the user.
func (r *PgxCategoryRepository) ListCategoriesForUser(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `
		SELECT category_id, user_id, category_type, name, created_at
		FROM categories
		WHERE user_id = $1
		ORDER BY name;
	`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query categories for user %s: %w", userID, err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var modelCat models.Category
		err := rows.Scan(
			&modelCat.CategoryID,
			&modelCat.UserID,
			&modelCat.CategoryType,
			&modelCat.Name,
			&modelCat.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category row for user %s: %w", userID, err)
		}
		categories = append(categories, mapping.ToDomainCategory(modelCat))
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("error iterating category rows for user %s: %w", userID, rows.Err())
	}
	return categories, nil
}

// UpdateCategory updates the mutable fields of an existing category.
// Changing the type never touches amounts already persisted; only future
// writes referencing the category pick up the new polarity.
func (r *PgxCategoryRepository) UpdateCategory(ctx context.Context, category domain.Category) error {
	modelCat := mapping.ToModelCategory(category)

	query := `
		UPDATE categories
		SET category_type = $2, name = $3
		WHERE category_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query,
		modelCat.CategoryID,
		modelCat.CategoryType,
		modelCat.Name,
	)
	if err != nil {
		return fmt.Errorf("failed to execute update category %s: %w", modelCat.CategoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteCategoryAndUnlinkEntries deletes the category and nulls the category
// reference on any ledger entries still pointing at it, inside one
// transaction. Entry amounts keep the sign they were persisted with.
func (r *PgxCategoryRepository) DeleteCategoryAndUnlinkEntries(ctx context.Context, categoryID string) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx)

	_, err = tx.Exec(ctx, `UPDATE account_ledger SET category_id = NULL WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to unlink ledger entries from category %s: %w", categoryID, err)
	}

	cmdTag, err := tx.Exec(ctx, `DELETE FROM categories WHERE category_id = $1;`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", categoryID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
