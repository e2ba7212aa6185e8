package handlers_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"quantapress/internal/models"
	"quantapress/internal/repository"
	"quantapress/internal/service"
)

type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) GetByID(ctx context.Context, projectID string) (*models.Project, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) GetByAPIKey(ctx context.Context, apiKey string) (*models.Project, error) {
	args := m.Called(ctx, apiKey)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectRepository) Create(ctx context.Context, project *models.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
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

type MockPostService struct {
	mock.Mock
}

func (m *MockPostService) Save(ctx context.Context, identity *models.Identity, req service.SaveRequest) (*models.Post, error) {
	args := m.Called(ctx, identity, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	args := m.Called(ctx, postID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Post), args.Error(1)
}

func (m *MockPostService) ListPosts(ctx context.Context, projectID, status string) ([]models.Post, error) {
	args := m.Called(ctx, projectID, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Post), args.Error(1)
}

func (m *MockPostService) DeletePost(ctx context.Context, postID string) error {
	args := m.Called(ctx, postID)
	return args.Error(0)
}

var _ repository.ProjectRepository = (*MockProjectRepository)(nil)
var _ repository.PostRepository = (*MockPostRepository)(nil)
var _ service.PostService = (*MockPostService)(nil)
