package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"zentproje-backend/internal/domain"
)

type StoryRepository interface {
	Create(ctx context.Context, story *domain.Story) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	ListActive(ctx context.Context) ([]domain.Story, error)
	ListAll(ctx context.Context) ([]domain.Story, error)
	Update(ctx context.Context, story *domain.Story) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type storyRepository struct {
	db *sqlx.DB
}

func NewStoryRepository(db *sqlx.DB) StoryRepository {
	return &storyRepository{db: db}
}

func (r *storyRepository) Create(ctx context.Context, story *domain.Story) error {
	query := `
		INSERT INTO stories (story_id, title, image, thumbnail, description, sort_order, expires_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		story.ID, story.Title, story.Image, story.Thumbnail,
		story.Description, story.SortOrder, story.ExpiresAt,
	).Scan(&story.CreatedAt, &story.UpdatedAt)
}

func (r *storyRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	var story domain.Story
	query := `SELECT * FROM stories WHERE story_id = $1`

	err := r.db.GetContext(ctx, &story, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &story, nil
}

func (r *storyRepository) ListActive(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	query := `
		SELECT * FROM stories
		WHERE expires_at IS NULL OR expires_at > NOW()
		ORDER BY sort_order ASC, created_at DESC`

	err := r.db.SelectContext(ctx, &stories, query)
	return stories, err
}

func (r *storyRepository) ListAll(ctx context.Context) ([]domain.Story, error) {
	var stories []domain.Story
	query := `SELECT * FROM stories ORDER BY sort_order ASC, created_at DESC`

	err := r.db.SelectContext(ctx, &stories, query)
	return stories, err
}

func (r *storyRepository) Update(ctx context.Context, story *domain.Story) error {
	query := `
		UPDATE stories
		SET title = :title, image = :image, thumbnail = :thumbnail,
			description = :description, sort_order = :sort_order,
			expires_at = :expires_at, updated_at = NOW()
		WHERE story_id = :story_id`

	res, err := r.db.NamedExecContext(ctx, query, story)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrStoryNotFound
	}
	return nil
}

func (r *storyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM stories WHERE story_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrStoryNotFound
	}
	return nil
}
