package service

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"quantapress/internal/config"
	"quantapress/internal/models"
	"quantapress/internal/repository"
	"quantapress/internal/slug"
)

// SaveRequest carries the full editable state of a post for one save action.
// PostID is empty while the post is an unsaved draft; the first successful
// save assigns it.
type SaveRequest struct {
	PostID          string
	ProjectID       string
	IdempotencyKey  *string
	Title           string
	Slug            string
	Content         json.RawMessage
	Excerpt         string
	SEOTitle        string
	SEODescription  string
	FeaturedImageID *string
	Tags            []string
	CategoryIDs     []string
	TargetStatus    string
}

type PostService interface {
	Save(ctx context.Context, identity *models.Identity, req SaveRequest) (*models.Post, error)
	GetPost(ctx context.Context, postID string) (*models.Post, error)
	ListPosts(ctx context.Context, projectID, status string) ([]models.Post, error)
	DeletePost(ctx context.Context, postID string) error
}

type postService struct {
	postRepo     repository.PostRepository
	tagRepo      repository.TagRepository
	categoryRepo repository.CategoryRepository
	author       AuthorService
	taxonomy     TaxonomyService
	saveTimeout  time.Duration

	mu       sync.Mutex
	inFlight map[string]bool
}

func NewPostService(
	postRepo repository.PostRepository,
	tagRepo repository.TagRepository,
	categoryRepo repository.CategoryRepository,
	author AuthorService,
	taxonomy TaxonomyService,
	cfg *config.Config,
) PostService {
	return &postService{
		postRepo:     postRepo,
		tagRepo:      tagRepo,
		categoryRepo: categoryRepo,
		author:       author,
		taxonomy:     taxonomy,
		saveTimeout:  cfg.SaveTimeout,
		inFlight:     make(map[string]bool),
	}
}

// Save is the single entry point of the post lifecycle. It runs the save
// pipeline strictly in order: validate, provision the author, resolve tags,
// then write the post row and both taxonomy link sets in one transaction.
// A second save for the same post is rejected while one is running, so a
// slow first insert can never be followed by a duplicate insert.
func (s *postService) Save(ctx context.Context, identity *models.Identity, req SaveRequest) (*models.Post, error) {
	if identity == nil || identity.ID == "" {
		return nil, ErrIdentityRequired
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrTitleRequired
	}
	if req.ProjectID == "" {
		return nil, ErrProjectRequired
	}
	if req.TargetStatus != models.StatusDraft && req.TargetStatus != models.StatusPublished {
		return nil, ErrInvalidStatus
	}

	if !s.acquire(saveKey(identity, req)) {
		return nil, ErrSaveInFlight
	}
	defer s.release(saveKey(identity, req))

	ctx, cancel := context.WithTimeout(ctx, s.saveTimeout)
	defer cancel()

	// Author row must exist before the post row references it.
	if _, err := s.author.EnsureAuthor(ctx, identity); err != nil {
		return nil, err
	}

	var existing *models.Post
	if req.PostID != "" {
		var err error
		existing, err = s.postRepo.GetByID(ctx, req.PostID)
		if err != nil {
			return nil, err
		}
	}

	post := s.buildPost(identity, req, existing)

	tagIDs, err := s.taxonomy.ResolveTags(ctx, post.ProjectID, req.Tags)
	if err != nil {
		return nil, err
	}

	if existing == nil {
		if req.IdempotencyKey != nil && *req.IdempotencyKey != "" {
			used, err := s.postRepo.ExistsByIdempotencyKey(ctx, identity.ID, *req.IdempotencyKey)
			if err != nil {
				return nil, err
			}
			if used {
				return nil, repository.ErrIdempotencyKeyUsed
			}
		}
		err = s.postRepo.Insert(ctx, post, tagIDs, req.CategoryIDs)
	} else {
		err = s.postRepo.Update(ctx, post, tagIDs, req.CategoryIDs)
	}
	if err != nil {
		return nil, err
	}

	return post, nil
}

// buildPost assembles the row to persist from the request and, for updates,
// the previously persisted state.
func (s *postService) buildPost(identity *models.Identity, req SaveRequest, existing *models.Post) *models.Post {
	post := &models.Post{
		ProjectID:       req.ProjectID,
		AuthorID:        identity.ID,
		IdempotencyKey:  req.IdempotencyKey,
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		SEOTitle:        req.SEOTitle,
		SEODescription:  req.SEODescription,
		FeaturedImageID: req.FeaturedImageID,
		Status:          req.TargetStatus,
	}

	if existing != nil {
		post.PostID = existing.PostID
		post.AuthorID = existing.AuthorID
		post.ProjectID = existing.ProjectID
		post.IdempotencyKey = existing.IdempotencyKey
		post.CreatedAt = existing.CreatedAt
		post.PublishedAt = existing.PublishedAt
		if post.Slug == "" {
			post.Slug = existing.Slug
		}
	} else if post.Slug == "" {
		// Slug auto-derives from the title only while the post is unsaved
		// and the user has not supplied one.
		post.Slug = slug.Make(req.Title)
	}

	// published_at is stamped exactly once, on the first transition into
	// published. Re-publishing later does not refresh it.
	if req.TargetStatus == models.StatusPublished && post.PublishedAt == nil {
		now := time.Now()
		post.PublishedAt = &now
	}

	return post
}

func saveKey(identity *models.Identity, req SaveRequest) string {
	if req.PostID != "" {
		return "post/" + req.PostID
	}
	return "new/" + identity.ID
}

func (s *postService) acquire(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight[key] {
		return false
	}
	s.inFlight[key] = true
	return true
}

func (s *postService) release(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.inFlight, key)
}

func (s *postService) GetPost(ctx context.Context, postID string) (*models.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	if post.Tags, err = s.tagRepo.ListByPostID(ctx, postID); err != nil {
		return nil, err
	}
	if post.Categories, err = s.categoryRepo.ListByPostID(ctx, postID); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) ListPosts(ctx context.Context, projectID, status string) ([]models.Post, error) {
	return s.postRepo.List(ctx, projectID, status)
}

func (s *postService) DeletePost(ctx context.Context, postID string) error {
	return s.postRepo.Delete(ctx, postID)
}
