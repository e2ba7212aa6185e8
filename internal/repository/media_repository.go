package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"quantapress/internal/models"
)

type mediaRepository struct {
	db *sqlx.DB
}

func NewMediaRepository(db *sqlx.DB) MediaRepository {
	return &mediaRepository{db: db}
}

func (r *mediaRepository) Create(ctx context.Context, asset *models.MediaAsset) error {
	if asset.MediaID == "" {
		asset.MediaID = uuid.New().String()
	}
	asset.CreatedAt = time.Now()

	query := `
		INSERT INTO media_assets
		(media_id, project_id, uploader_id, file_url, file_name, mime_type,
		 size_bytes, width, height, alt_text, title, caption, description, created_at)
		VALUES
		(:media_id, :project_id, :uploader_id, :file_url, :file_name, :mime_type,
		 :size_bytes, :width, :height, :alt_text, :title, :caption, :description, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, asset); err != nil {
		return fmt.Errorf("failed to create media asset: %w", translateError(err))
	}

	return nil
}

func (r *mediaRepository) GetByID(ctx context.Context, mediaID string) (*models.MediaAsset, error) {
	query := `SELECT * FROM media_assets WHERE media_id = $1`

	var asset models.MediaAsset
	err := r.db.GetContext(ctx, &asset, query, mediaID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get media asset: %w", err)
	}

	return &asset, nil
}

func (r *mediaRepository) ListByProject(ctx context.Context, projectID string) ([]models.MediaAsset, error) {
	query := `SELECT * FROM media_assets WHERE project_id = $1 ORDER BY created_at DESC`

	var assets []models.MediaAsset
	if err := r.db.SelectContext(ctx, &assets, query, projectID); err != nil {
		return nil, fmt.Errorf("failed to list media assets: %w", err)
	}

	return assets, nil
}

func (r *mediaRepository) UpdateMeta(ctx context.Context, asset *models.MediaAsset) error {
	query := `
		UPDATE media_assets SET
			alt_text = :alt_text,
			title = :title,
			caption = :caption,
			description = :description
		WHERE media_id = :media_id
	`

	result, err := r.db.NamedExecContext(ctx, query, asset)
	if err != nil {
		return fmt.Errorf("failed to update media asset: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check updated rows: %w", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *mediaRepository) Delete(ctx context.Context, mediaID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM media_assets WHERE media_id = $1`, mediaID)
	if err != nil {
		return fmt.Errorf("failed to delete media asset: %w", err)
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

func (r *mediaRepository) Count(ctx context.Context, projectID string) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM media_assets WHERE project_id = $1`, projectID)
	if err != nil {
		return 0, fmt.Errorf("failed to count media assets: %w", err)
	}
	return count, nil
}
