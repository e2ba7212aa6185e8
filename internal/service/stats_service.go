package service

import (
	"context"

	"quantapress/internal/repository"
)

type ProjectStats struct {
	Posts map[string]int `json:"posts"`
	Media int            `json:"media"`
	Tags  int            `json:"tags"`
}

type StatsService interface {
	ProjectStats(ctx context.Context, projectID string) (*ProjectStats, error)
}

type statsService struct {
	postRepo  repository.PostRepository
	tagRepo   repository.TagRepository
	mediaRepo repository.MediaRepository
}

func NewStatsService(postRepo repository.PostRepository, tagRepo repository.TagRepository, mediaRepo repository.MediaRepository) StatsService {
	return &statsService{postRepo: postRepo, tagRepo: tagRepo, mediaRepo: mediaRepo}
}

func (s *statsService) ProjectStats(ctx context.Context, projectID string) (*ProjectStats, error) {
	postCounts, err := s.postRepo.CountByStatus(ctx, projectID)
	if err != nil {
		return nil, err
	}

	mediaCount, err := s.mediaRepo.Count(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tags, err := s.tagRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	return &ProjectStats{
		Posts: postCounts,
		Media: mediaCount,
		Tags:  len(tags),
	}, nil
}
