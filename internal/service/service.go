package service

import (
	"errors"

	"quantapress/internal/config"
	"quantapress/internal/repository"
	"quantapress/internal/storage"
)

// Validation and sequencing failures surfaced to the caller before or during
// a save. Handlers map these to HTTP status codes with errors.Is.
var (
	ErrIdentityRequired = errors.New("you must be signed in to save")
	ErrTitleRequired    = errors.New("a title is required")
	ErrProjectRequired  = errors.New("a project must be resolved before saving")
	ErrInvalidStatus    = errors.New("target status must be draft or published")

	// ErrAuthorProvision means the author upsert failed and the post write
	// was never attempted: nothing has been persisted.
	ErrAuthorProvision = errors.New("could not verify author profile")

	// ErrSaveInFlight rejects a save while another save for the same post is
	// still running.
	ErrSaveInFlight = errors.New("a save is already in progress for this post")
)

type Service struct {
	Author   AuthorService
	Taxonomy TaxonomyService
	Post     PostService
	Media    MediaService
	Stats    StatsService
}

func NewService(rep *repository.Repository, cfg *config.Config, store storage.Storage) *Service {
	author := NewAuthorService(rep.Author)
	taxonomy := NewTaxonomyService(rep.Tag)

	return &Service{
		Author:   author,
		Taxonomy: taxonomy,
		Post:     NewPostService(rep.Post, rep.Tag, rep.Category, author, taxonomy, cfg),
		Media:    NewMediaService(rep.Media, author, store),
		Stats:    NewStatsService(rep.Post, rep.Tag, rep.Media),
	}
}
