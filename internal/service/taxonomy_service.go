package service

import (
	"context"
	"errors"
	"strings"

	"quantapress/internal/models"
	"quantapress/internal/repository"
	"quantapress/internal/slug"
)

type TaxonomyService interface {
	ResolveTags(ctx context.Context, projectID string, labels []string) ([]string, error)
}

type taxonomyService struct {
	tagRepo repository.TagRepository
}

func NewTaxonomyService(tagRepo repository.TagRepository) TaxonomyService {
	return &taxonomyService{tagRepo: tagRepo}
}

// ResolveTags maps free-text tag labels to persisted tag ids within the
// project. Labels are identified by their slug, so case and whitespace
// variants of the same label ("Astrology", "astrology ") collapse into one
// tag row. Missing tags are created on demand.
func (s *taxonomyService) ResolveTags(ctx context.Context, projectID string, labels []string) ([]string, error) {
	var tagIDs []string
	seen := make(map[string]bool)

	for _, label := range labels {
		tagSlug := slug.Make(label)
		if tagSlug == "" || seen[tagSlug] {
			continue
		}
		seen[tagSlug] = true

		tag, err := s.tagRepo.GetBySlug(ctx, projectID, tagSlug)
		if errors.Is(err, repository.ErrNotFound) {
			tag = &models.Tag{
				ProjectID: projectID,
				Name:      strings.TrimSpace(label),
				Slug:      tagSlug,
			}
			err = s.tagRepo.Create(ctx, tag)
			if errors.Is(err, repository.ErrSlugTaken) {
				// Lost the race to a concurrent save; the row exists now.
				tag, err = s.tagRepo.GetBySlug(ctx, projectID, tagSlug)
			}
		}
		if err != nil {
			return nil, err
		}

		tagIDs = append(tagIDs, tag.TagID)
	}

	return tagIDs, nil
}
