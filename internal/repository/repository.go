package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"quantapress/internal/models"
)

type ProjectRepository interface {
	GetByID(ctx context.Context, projectID string) (*models.Project, error)
	GetByAPIKey(ctx context.Context, apiKey string) (*models.Project, error)
	Create(ctx context.Context, project *models.Project) error
}

type AuthorRepository interface {
	Upsert(ctx context.Context, author *models.Author) error
	GetByID(ctx context.Context, authorID string) (*models.Author, error)
}

// PublishedFilter narrows the public read query. Zero value means "all
// published posts of the project".
type PublishedFilter struct {
	Slug string
	Tag  string
}

type PostRepository interface {
	// Insert and Update write the post row and replace both taxonomy link
	// sets in a single transaction.
	Insert(ctx context.Context, post *models.Post, tagIDs, categoryIDs []string) error
	Update(ctx context.Context, post *models.Post, tagIDs, categoryIDs []string) error
	GetByID(ctx context.Context, postID string) (*models.Post, error)
	List(ctx context.Context, projectID, status string) ([]models.Post, error)
	ListPublished(ctx context.Context, projectID string, filter PublishedFilter) ([]models.PublicPost, error)
	Delete(ctx context.Context, postID string) error
	ExistsByIdempotencyKey(ctx context.Context, authorID, idempotencyKey string) (bool, error)
	CountByStatus(ctx context.Context, projectID string) (map[string]int, error)
}

type TagRepository interface {
	GetBySlug(ctx context.Context, projectID, slug string) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	ListByProject(ctx context.Context, projectID string) ([]models.Tag, error)
	ListByPostID(ctx context.Context, postID string) ([]models.Tag, error)
}

type CategoryRepository interface {
	Create(ctx context.Context, category *models.Category) error
	ListByProject(ctx context.Context, projectID string) ([]models.Category, error)
	ListByPostID(ctx context.Context, postID string) ([]models.Category, error)
	Delete(ctx context.Context, categoryID string) error
}

type MediaRepository interface {
	Create(ctx context.Context, asset *models.MediaAsset) error
	GetByID(ctx context.Context, mediaID string) (*models.MediaAsset, error)
	ListByProject(ctx context.Context, projectID string) ([]models.MediaAsset, error)
	UpdateMeta(ctx context.Context, asset *models.MediaAsset) error
	Delete(ctx context.Context, mediaID string) error
	Count(ctx context.Context, projectID string) (int, error)
}

type Repository struct {
	Project  ProjectRepository
	Author   AuthorRepository
	Post     PostRepository
	Tag      TagRepository
	Category CategoryRepository
	Media    MediaRepository
}

func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{
		Project:  NewProjectRepository(db),
		Author:   NewAuthorRepository(db),
		Post:     NewPostRepository(db),
		Tag:      NewTagRepository(db),
		Category: NewCategoryRepository(db),
		Media:    NewMediaRepository(db),
	}
}
