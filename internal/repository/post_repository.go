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

type postRepository struct {
	db *sqlx.DB
}

func NewPostRepository(db *sqlx.DB) PostRepository {
	return &postRepository{db: db}
}

// Insert writes a brand-new post row and its taxonomy links in one
// transaction. The generated id is written back into post.PostID.
func (r *postRepository) Insert(ctx context.Context, post *models.Post, tagIDs, categoryIDs []string) error {
	if post.PostID == "" {
		post.PostID = uuid.New().String()
	}

	now := time.Now()
	post.CreatedAt = now
	post.UpdatedAt = now

	query := `
		INSERT INTO posts
		(post_id, project_id, author_id, idempotency_key, title, slug, content,
		 excerpt, seo_title, seo_description, featured_image_id, status,
		 published_at, created_at, updated_at)
		VALUES
		(:post_id, :project_id, :author_id, :idempotency_key, :title, :slug, :content,
		 :excerpt, :seo_title, :seo_description, :featured_image_id, :status,
		 :published_at, :created_at, :updated_at)
	`

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.NamedExecContext(ctx, query, post); err != nil {
			return fmt.Errorf("failed to create post: %w", translateError(err))
		}
		return replaceLinks(ctx, tx, post.PostID, tagIDs, categoryIDs)
	})
}

// Update rewrites an existing post row by id and replaces its taxonomy links
// in one transaction.
func (r *postRepository) Update(ctx context.Context, post *models.Post, tagIDs, categoryIDs []string) error {
	post.UpdatedAt = time.Now()

	query := `
		UPDATE posts SET
			title = :title,
			slug = :slug,
			content = :content,
			excerpt = :excerpt,
			seo_title = :seo_title,
			seo_description = :seo_description,
			featured_image_id = :featured_image_id,
			status = :status,
			published_at = :published_at,
			updated_at = :updated_at
		WHERE post_id = :post_id
	`

	return r.inTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.NamedExecContext(ctx, query, post)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", translateError(err))
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check updated rows: %w", err)
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}

		return replaceLinks(ctx, tx, post.PostID, tagIDs, categoryIDs)
	})
}

func (r *postRepository) inTx(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// replaceLinks swaps out the full generation of link rows for the post:
// delete everything, insert the new set. The link tables carry no attributes
// beyond the pair, so full replacement is equivalent to a diff.
func replaceLinks(ctx context.Context, tx *sqlx.Tx, postID string, tagIDs, categoryIDs []string) error {
	if _, err := tx.ExecContext(ctx, `DELETE FROM post_tags WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to clear post tags: %w", err)
	}
	for _, tagID := range tagIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_tags (post_id, tag_id) VALUES ($1, $2)`, postID, tagID); err != nil {
			return fmt.Errorf("failed to link tag: %w", translateError(err))
		}
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM post_categories WHERE post_id = $1`, postID); err != nil {
		return fmt.Errorf("failed to clear post categories: %w", err)
	}
	for _, categoryID := range categoryIDs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO post_categories (post_id, category_id) VALUES ($1, $2)`, postID, categoryID); err != nil {
			return fmt.Errorf("failed to link category: %w", translateError(err))
		}
	}

	return nil
}

func (r *postRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	query := `SELECT * FROM posts WHERE post_id = $1`

	var post models.Post
	err := r.db.GetContext(ctx, &post, query, postID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}

	return &post, nil
}

func (r *postRepository) List(ctx context.Context, projectID, status string) ([]models.Post, error) {
	var posts []models.Post
	var err error

	if status == "" {
		query := `SELECT * FROM posts WHERE project_id = $1 ORDER BY updated_at DESC`
		err = r.db.SelectContext(ctx, &posts, query, projectID)
	} else {
		query := `SELECT * FROM posts WHERE project_id = $1 AND status = $2 ORDER BY updated_at DESC`
		err = r.db.SelectContext(ctx, &posts, query, projectID, status)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) ListPublished(ctx context.Context, projectID string, filter PublishedFilter) ([]models.PublicPost, error) {
	query := `
		SELECT p.post_id, p.title, p.slug, p.excerpt, p.content,
		       p.seo_title, p.seo_description, p.published_at,
		       m.file_url AS featured_image_url, m.alt_text AS featured_image_alt
		FROM posts p
		LEFT JOIN media_assets m ON m.media_id = p.featured_image_id
		WHERE p.project_id = $1 AND p.status = 'published'
	`
	args := []interface{}{projectID}

	if filter.Slug != "" {
		query += ` AND p.slug = $2`
		args = append(args, filter.Slug)
	} else if filter.Tag != "" {
		query += `
		AND EXISTS (
			SELECT 1 FROM post_tags pt
			JOIN tags t ON t.tag_id = pt.tag_id
			WHERE pt.post_id = p.post_id AND t.slug = $2
		)`
		args = append(args, filter.Tag)
	}

	query += ` ORDER BY p.published_at DESC`

	var posts []models.PublicPost
	if err := r.db.SelectContext(ctx, &posts, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}

	return posts, nil
}

func (r *postRepository) Delete(ctx context.Context, postID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM posts WHERE post_id = $1`, postID)
	if err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
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

func (r *postRepository) ExistsByIdempotencyKey(ctx context.Context, authorID, idempotencyKey string) (bool, error) {
	if idempotencyKey == "" {
		return false, nil
	}

	query := `SELECT COUNT(*) FROM posts WHERE author_id = $1 AND idempotency_key = $2`

	var count int
	if err := r.db.GetContext(ctx, &count, query, authorID, idempotencyKey); err != nil {
		return false, fmt.Errorf("failed to check idempotency key: %w", err)
	}

	return count > 0, nil
}

func (r *postRepository) CountByStatus(ctx context.Context, projectID string) (map[string]int, error) {
	query := `SELECT status, COUNT(*) AS count FROM posts WHERE project_id = $1 GROUP BY status`

	rows, err := r.db.QueryxContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to count posts: %w", err)
	}
	defer rows.Close()

	counts := map[string]int{
		models.StatusDraft:     0,
		models.StatusPublished: 0,
		models.StatusArchived:  0,
	}
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan post count: %w", err)
		}
		counts[status] = count
	}

	return counts, rows.Err()
}
