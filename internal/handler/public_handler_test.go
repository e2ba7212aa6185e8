package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	handlers "quantapress/internal/handler"
	"quantapress/internal/models"
	"quantapress/internal/repository"
)

func publicHandlers(projectRepo *MockProjectRepository, postRepo *MockPostRepository) *handlers.Handlers {
	return &handlers.Handlers{
		ProjectRepo: projectRepo,
		PostRepo:    postRepo,
	}
}

func TestPublicPostsMissingKey(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	postRepo := new(MockPostRepository)
	h := publicHandlers(projectRepo, postRepo)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts", nil)
	rec := httptest.NewRecorder()

	h.PublicPosts(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	// No key means no store round trip at all.
	projectRepo.AssertNotCalled(t, "GetByAPIKey")
	postRepo.AssertNotCalled(t, "ListPublished")
}

func TestPublicPostsInvalidKey(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	postRepo := new(MockPostRepository)
	h := publicHandlers(projectRepo, postRepo)

	projectRepo.On("GetByAPIKey", mock.Anything, "wrong").
		Return(nil, repository.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?key=wrong", nil)
	rec := httptest.NewRecorder()

	h.PublicPosts(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
	postRepo.AssertNotCalled(t, "ListPublished")
}

func TestPublicPostsSlugNotFound(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	postRepo := new(MockPostRepository)
	h := publicHandlers(projectRepo, postRepo)

	projectRepo.On("GetByAPIKey", mock.Anything, "qp_key").
		Return(&models.Project{ProjectID: "proj-1", Name: "Demo"}, nil)
	postRepo.On("ListPublished", mock.Anything, "proj-1", repository.PublishedFilter{Slug: "missing"}).
		Return([]models.PublicPost{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?key=qp_key&slug=missing", nil)
	rec := httptest.NewRecorder()

	h.PublicPosts(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPublicPostsSingleBySlug(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	postRepo := new(MockPostRepository)
	h := publicHandlers(projectRepo, postRepo)

	now := time.Now()
	projectRepo.On("GetByAPIKey", mock.Anything, "qp_key").
		Return(&models.Project{ProjectID: "proj-1", Name: "Demo"}, nil)
	postRepo.On("ListPublished", mock.Anything, "proj-1", repository.PublishedFilter{Slug: "hello"}).
		Return([]models.PublicPost{
			{PostID: "post-1", Title: "Hello", Slug: "hello", PublishedAt: &now},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?key=qp_key&slug=hello", nil)
	rec := httptest.NewRecorder()

	h.PublicPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.PublicPostResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "hello", resp.Data.Slug)
}

func TestPublicPostsListEnvelope(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	postRepo := new(MockPostRepository)
	h := publicHandlers(projectRepo, postRepo)

	now := time.Now()
	earlier := now.Add(-2 * time.Hour)
	projectRepo.On("GetByAPIKey", mock.Anything, "qp_key").
		Return(&models.Project{ProjectID: "proj-1", Name: "Demo"}, nil)
	postRepo.On("ListPublished", mock.Anything, "proj-1", repository.PublishedFilter{}).
		Return([]models.PublicPost{
			{PostID: "post-2", Slug: "newer", PublishedAt: &now},
			{PostID: "post-1", Slug: "older", PublishedAt: &earlier},
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?key=qp_key", nil)
	rec := httptest.NewRecorder()

	h.PublicPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp handlers.PublicListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Meta.Count)
	assert.Equal(t, "Demo", resp.Meta.Project)
	require.Len(t, resp.Data, 2)
	assert.True(t, resp.Data[0].PublishedAt.After(*resp.Data[1].PublishedAt),
		"most recent post comes first")
}

func TestPublicPostsEmptyList(t *testing.T) {
	projectRepo := new(MockProjectRepository)
	postRepo := new(MockPostRepository)
	h := publicHandlers(projectRepo, postRepo)

	projectRepo.On("GetByAPIKey", mock.Anything, "qp_key").
		Return(&models.Project{ProjectID: "proj-1", Name: "Demo"}, nil)
	postRepo.On("ListPublished", mock.Anything, "proj-1", repository.PublishedFilter{}).
		Return([]models.PublicPost(nil), nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/posts?key=qp_key", nil)
	rec := httptest.NewRecorder()

	h.PublicPosts(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"meta":{"count":0,"project":"Demo"},"data":[]}`, rec.Body.String())
}
