package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"zentproje-backend/internal/domain"
)

type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, featuredOnly bool) ([]domain.Project, error)
	Update(ctx context.Context, project *domain.Project) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type projectRepository struct {
	db *sqlx.DB
}

func NewProjectRepository(db *sqlx.DB) ProjectRepository {
	return &projectRepository{db: db}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	query := `
		INSERT INTO projects (
			project_id, title, description, image, status, priority, client,
			start_date, end_date, budget, currency, tags, progress,
			team_members, featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		project.ID, project.Title, project.Description, project.Image,
		project.Status, project.Priority, project.Client, project.StartDate,
		project.EndDate, project.Budget, project.Currency, project.Tags,
		project.Progress, project.TeamMembers, project.Featured,
	).Scan(&project.CreatedAt, &project.UpdatedAt)
}

func (r *projectRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	var project domain.Project
	query := `SELECT * FROM projects WHERE project_id = $1`

	err := r.db.GetContext(ctx, &project, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, featuredOnly bool) ([]domain.Project, error) {
	var projects []domain.Project

	query := `SELECT * FROM projects ORDER BY created_at DESC`
	if featuredOnly {
		query = `SELECT * FROM projects WHERE featured = true ORDER BY created_at DESC`
	}

	err := r.db.SelectContext(ctx, &projects, query)
	return projects, err
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	query := `
		UPDATE projects
		SET title = :title, description = :description, image = :image,
			status = :status, priority = :priority, client = :client,
			start_date = :start_date, end_date = :end_date, budget = :budget,
			currency = :currency, tags = :tags, progress = :progress,
			team_members = :team_members, featured = :featured,
			updated_at = NOW()
		WHERE project_id = :project_id`

	res, err := r.db.NamedExecContext(ctx, query, project)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}

func (r *projectRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE project_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrProjectNotFound
	}
	return nil
}
