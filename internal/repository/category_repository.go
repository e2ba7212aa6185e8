package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"quantapress/internal/models"
)

type categoryRepository struct {
	db *sqlx.DB
}

func NewCategoryRepository(db *sqlx.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, category *models.Category) error {
	if category.CategoryID == "" {
		category.CategoryID = uuid.New().String()
	}

	query := `
		INSERT INTO categories (category_id, project_id, name, slug)
		VALUES (:category_id, :project_id, :name, :slug)
	`

	if _, err := r.db.NamedExecContext(ctx, query, category); err != nil {
		return fmt.Errorf("failed to create category: %w", translateError(err))
	}

	return nil
}

func (r *categoryRepository) ListByProject(ctx context.Context, projectID string) ([]models.Category, error) {
	query := `SELECT * FROM categories WHERE project_id = $1 ORDER BY name`

	var categories []models.Category
	if err := r.db.SelectContext(ctx, &categories, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) ListByPostID(ctx context.Context, postID string) ([]models.Category, error) {
	query := `
		SELECT c.* FROM categories c
		JOIN post_categories pc ON pc.category_id = c.category_id
		WHERE pc.post_id = $1
		ORDER BY c.name
	`

	var categories []models.Category
	if err := r.db.SelectContext(ctx, &categories, query, postID); err != nil {
		return nil, fmt.Errorf("failed to list post categories: %w", err)
	}

	return categories, nil
}

func (r *categoryRepository) Delete(ctx context.Context, categoryID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE category_id = $1`, categoryID)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
