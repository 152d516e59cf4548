package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"zentproje-backend/internal/domain"
)

type BlogPostRepository interface {
	Create(ctx context.Context, post *domain.BlogPost) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	List(ctx context.Context, publishedOnly bool, params domain.PaginationParams) ([]domain.BlogPost, int64, error)
	Update(ctx context.Context, post *domain.BlogPost) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type blogPostRepository struct {
	db *sqlx.DB
}

func NewBlogPostRepository(db *sqlx.DB) BlogPostRepository {
	return &blogPostRepository{db: db}
}

func (r *blogPostRepository) Create(ctx context.Context, post *domain.BlogPost) error {
	query := `
		INSERT INTO blog_posts (post_id, title, slug, excerpt, content, image, published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		post.ID, post.Title, post.Slug, post.Excerpt, post.Content,
		post.Image, post.Published, post.PublishedAt,
	).Scan(&post.CreatedAt, &post.UpdatedAt)
	if isUniqueViolation(err, "") {
		return domain.ErrSlugExists
	}
	return err
}

func (r *blogPostRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	var post domain.BlogPost
	query := `SELECT * FROM blog_posts WHERE post_id = $1`

	err := r.db.GetContext(ctx, &post, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	var post domain.BlogPost
	query := `SELECT * FROM blog_posts WHERE slug = $1`

	err := r.db.GetContext(ctx, &post, query, slug)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogPostRepository) List(ctx context.Context, publishedOnly bool, params domain.PaginationParams) ([]domain.BlogPost, int64, error) {
	params.Validate()

	where := ``
	if publishedOnly {
		where = `WHERE published = true`
	}

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM blog_posts `+where); err != nil {
		return nil, 0, err
	}

	var posts []domain.BlogPost
	query := `SELECT * FROM blog_posts ` + where + ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &posts, query, params.PageSize, params.Offset())
	return posts, total, err
}

func (r *blogPostRepository) Update(ctx context.Context, post *domain.BlogPost) error {
	query := `
		UPDATE blog_posts
		SET title = :title, slug = :slug, excerpt = :excerpt,
			content = :content, image = :image, published = :published,
			published_at = :published_at, updated_at = NOW()
		WHERE post_id = :post_id`

	res, err := r.db.NamedExecContext(ctx, query, post)
	if isUniqueViolation(err, "") {
		return domain.ErrSlugExists
	}
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *blogPostRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM blog_posts WHERE post_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}
