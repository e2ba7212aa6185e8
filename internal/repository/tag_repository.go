package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"quantapress/internal/models"
)

type tagRepository struct {
	db *sqlx.DB
}

func NewTagRepository(db *sqlx.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetBySlug(ctx context.Context, projectID, slug string) (*models.Tag, error) {
	query := `SELECT * FROM tags WHERE project_id = $1 AND slug = $2`

	var tag models.Tag
	err := r.db.GetContext(ctx, &tag, query, projectID, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}

	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if tag.TagID == "" {
		tag.TagID = uuid.New().String()
	}

	query := `
		INSERT INTO tags (tag_id, project_id, name, slug, color)
		VALUES (:tag_id, :project_id, :name, :slug, :color)
	`

	if _, err := r.db.NamedExecContext(ctx, query, tag); err != nil {
		return fmt.Errorf("failed to create tag: %w", translateError(err))
	}

	return nil
}

func (r *tagRepository) ListByProject(ctx context.Context, projectID string) ([]models.Tag, error) {
	query := `SELECT * FROM tags WHERE project_id = $1 ORDER BY name`

	var tags []models.Tag
	if err := r.db.SelectContext(ctx, &tags, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list tags: %w", err)
	}

	return tags, nil
}

func (r *tagRepository) ListByPostID(ctx context.Context, postID string) ([]models.Tag, error) {
	query := `
		SELECT t.* FROM tags t
		JOIN post_tags pt ON pt.tag_id = t.tag_id
		WHERE pt.post_id = $1
		ORDER BY t.name
	`

	var tags []models.Tag
	if err := r.db.SelectContext(ctx, &tags, query, postID); err != nil {
		return nil, fmt.Errorf("failed to list post tags: %w", err)
	}

	return tags, nil
}
