package handlers

import (
	"github.com/go-playground/validator/v10"

	"quantapress/internal/config"
	"quantapress/internal/database"
	"quantapress/internal/repository"
	"quantapress/internal/service"
)

type Handlers struct {
	PostService  service.PostService
	MediaService service.MediaService
	StatsService service.StatsService
	ProjectRepo  repository.ProjectRepository
	PostRepo     repository.PostRepository
	TagRepo      repository.TagRepository
	CategoryRepo repository.CategoryRepository
	DB           *database.DB
	Cfg          *config.Config
	Validate     *validator.Validate
}

func NewHandlers(repo *repository.Repository, service *service.Service, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		PostService:  service.Post,
		MediaService: service.Media,
		StatsService: service.Stats,
		ProjectRepo:  repo.Project,
		PostRepo:     repo.Post,
		TagRepo:      repo.Tag,
		CategoryRepo: repo.Category,
		DB:           db,
		Cfg:          cfg,
		Validate:     validator.New(),
	}
}
