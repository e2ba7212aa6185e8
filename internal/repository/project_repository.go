package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"quantapress/internal/models"
)

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) GetByID(ctx context.Context, projectID string) (*models.Project, error) {
	query := `SELECT * FROM projects WHERE project_id = $1`

	var project models.Project
	err := r.db.GetContext(ctx, &project, query, projectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}

	return &project, nil
}

func (r *projectRepository) GetByAPIKey(ctx context.Context, apiKey string) (*models.Project, error) {
	query := `SELECT * FROM projects WHERE api_key = $1`

	var project models.Project
	err := r.db.GetContext(ctx, &project, query, apiKey)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get project by api key: %w", err)
	}

	return &project, nil
}

func (r *projectRepository) Create(ctx context.Context, project *models.Project) error {
	if project.ProjectID == "" {
		project.ProjectID = uuid.New().String()
	}
	if project.APIKey == "" {
		project.APIKey = "qp_" + uuid.New().String()
	}
	if project.AllowedDomains == nil {
		project.AllowedDomains = []string{}
	}
	project.CreatedAt = time.Now()

	query := `
		INSERT INTO projects (project_id, name, api_key, allowed_domains, created_at)
		VALUES (:project_id, :name, :api_key, :allowed_domains, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, project); err != nil {
		return fmt.Errorf("failed to create project: %w", translateError(err))
	}

	return nil
}
