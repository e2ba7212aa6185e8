package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"quantapress/internal/models"
)

type authorRepository struct {
	db *sqlx.DB
}

func NewAuthorRepository(db *sqlx.DB) AuthorRepository {
	return &authorRepository{db: db}
}

// Upsert inserts the author row keyed on the identity-provider id, or
// refreshes email/name/avatar on the existing row. Posts reference authors by
// foreign key, so this must have committed before any post write.
func (r *authorRepository) Upsert(ctx context.Context, author *models.Author) error {
	if author.Role == "" {
		author.Role = "editor"
	}

	query := `
		INSERT INTO authors (author_id, email, full_name, avatar_url, role)
		VALUES (:author_id, :email, :full_name, :avatar_url, :role)
		ON CONFLICT (author_id) DO UPDATE SET
			email = EXCLUDED.email,
			full_name = EXCLUDED.full_name,
			avatar_url = EXCLUDED.avatar_url
	`

	if _, err := r.db.NamedExecContext(ctx, query, author); err != nil {
		return fmt.Errorf("failed to upsert author: %w", err)
	}

	return nil
}

func (r *authorRepository) GetByID(ctx context.Context, authorID string) (*models.Author, error) {
	query := `SELECT * FROM authors WHERE author_id = $1`

	var author models.Author
	err := r.db.GetContext(ctx, &author, query, authorID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get author: %w", err)
	}

	return &author, nil
}
