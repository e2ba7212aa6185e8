package service_test

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"quantapress/internal/models"
	"quantapress/internal/repository"
	"quantapress/internal/service"
)

type MockAuthorRepository struct {
	mock.Mock
}

func (m *MockAuthorRepository) Upsert(ctx context.Context, author *models.Author) error {
	args := m.Called(ctx, author)
	return args.Error(0)
}

func (m *MockAuthorRepository) GetByID(ctx context.Context, authorID string) (*models.Author, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

type MockAuthorService struct {
	mock.Mock
}

func (m *MockAuthorService) EnsureAuthor(ctx context.Context, identity *models.Identity) (*models.Author, error) {
	args := m.Called(ctx, identity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Author), args.Error(1)
}

type MockTaxonomyService struct {
	mock.Mock
}

func (m *MockTaxonomyService) ResolveTags(ctx context.Context, projectID string, labels []string) ([]string, error) {
	args := m.Called(ctx, projectID, labels)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

type MockPostRepository struct {
	mock.Mock
}

func (m *MockPostRepository) Insert(ctx context.Context, post *models.Post, tagIDs, categoryIDs []string) error {
	args := m.Called(ctx, post, tagIDs, categoryIDs)
	return args.Error(0)
}

func (m *MockPostRepository) Update(ctx context.Context, post *models.Post, tagIDs, categoryIDs []string) error {
	args := m.Called(ctx, post, tagIDs, categoryIDs)
	return args.Error(0)
}

func (m *MockPostRepository) GetByID(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostRepository) List(ctx context.Context, projectID, status string) ([]models.Post, error) {
	args := m.Called(ctx, projectID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostRepository) ListPublished(ctx context.Context, projectID string, filter repository.PublishedFilter) ([]models.PublicPost, error) {
	args := m.Called(ctx, projectID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PublicPost), args.Error(1)
}

func (m *MockPostRepository) Delete(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

func (m *MockPostRepository) ExistsByIdempotencyKey(ctx context.Context, authorID, idempotencyKey string) (bool, error) {
	args := m.Called(ctx, authorID, idempotencyKey)
	return args.Bool(0), args.Error(1)
}

func (m *MockPostRepository) CountByStatus(ctx context.Context, projectID string) (map[string]int, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]int), args.Error(1)
}

type MockTagRepository struct {
	mock.Mock
}

func (m *MockTagRepository) GetBySlug(ctx context.Context, projectID, slug string) (*models.Tag, error) {
	args := m.Called(ctx, projectID, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Tag), args.Error(1)
}

func (m *MockTagRepository) Create(ctx context.Context, tag *models.Tag) error {
	args := m.Called(ctx, tag)
	return args.Error(0)
}

func (m *MockTagRepository) ListByProject(ctx context.Context, projectID string) ([]models.Tag, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

func (m *MockTagRepository) ListByPostID(ctx context.Context, postID string) ([]models.Tag, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Tag), args.Error(1)
}

type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, category *models.Category) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) ListByProject(ctx context.Context, projectID string) ([]models.Category, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByPostID(ctx context.Context, postID string) ([]models.Category, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Category), args.Error(1)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, categoryID string) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

type MockMediaRepository struct {
	mock.Mock
}

func (m *MockMediaRepository) Create(ctx context.Context, asset *models.MediaAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockMediaRepository) GetByID(ctx context.Context, mediaID string) (*models.MediaAsset, error) {
	args := m.Called(ctx, mediaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) ListByProject(ctx context.Context, projectID string) ([]models.MediaAsset, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.MediaAsset), args.Error(1)
}

func (m *MockMediaRepository) UpdateMeta(ctx context.Context, asset *models.MediaAsset) error {
	args := m.Called(ctx, asset)
	return args.Error(0)
}

func (m *MockMediaRepository) Delete(ctx context.Context, mediaID string) error {
	args := m.Called(ctx, mediaID)
	return args.Error(0)
}

func (m *MockMediaRepository) Count(ctx context.Context, projectID string) (int, error) {
	args := m.Called(ctx, projectID)
	return args.Int(0), args.Error(1)
}

type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) UploadFile(ctx context.Context, projectID, fileName string, file io.Reader, size int64) (string, string, error) {
	args := m.Called(ctx, projectID, fileName, file, size)
	return args.String(0), args.String(1), args.Error(2)
}

func (m *MockStorage) DeleteFile(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func (m *MockStorage) ObjectNameFromURL(fileURL string) (string, error) {
	args := m.Called(fileURL)
	return args.String(0), args.Error(1)
}

var _ service.AuthorService = (*MockAuthorService)(nil)
var _ service.TaxonomyService = (*MockTaxonomyService)(nil)
var _ repository.PostRepository = (*MockPostRepository)(nil)
var _ repository.TagRepository = (*MockTagRepository)(nil)
