package blog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
)

type Service interface {
	Create(ctx context.Context, input domain.CreatePostInput) (*domain.BlogPost, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error)
	List(ctx context.Context, publishedOnly bool, params domain.PaginationParams) (*domain.PaginatedResponse[domain.BlogPost], error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdatePostInput) (*domain.BlogPost, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	postRepo repository.BlogPostRepository
}

func NewService(postRepo repository.BlogPostRepository) Service {
	return &service{postRepo: postRepo}
}

func (s *service) Create(ctx context.Context, input domain.CreatePostInput) (*domain.BlogPost, error) {
	post := &domain.BlogPost{
		ID:        uuid.New(),
		Title:     input.Title,
		Slug:      input.Slug,
		Excerpt:   input.Excerpt,
		Content:   input.Content,
		Image:     input.Image,
		Published: input.Published,
	}
	if post.Published {
		now := time.Now()
		post.PublishedAt = &now
	}

	if err := s.postRepo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.BlogPost, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

// GetBySlug serves the public article page, so it never returns drafts.
func (s *service) GetBySlug(ctx context.Context, slug string) (*domain.BlogPost, error) {
	post, err := s.postRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if post == nil || !post.Published {
		return nil, domain.ErrPostNotFound
	}
	return post, nil
}

func (s *service) List(ctx context.Context, publishedOnly bool, params domain.PaginationParams) (*domain.PaginatedResponse[domain.BlogPost], error) {
	params.Validate()

	posts, total, err := s.postRepo.List(ctx, publishedOnly, params)
	if err != nil {
		return nil, err
	}

	resp := domain.NewPaginatedResponse(posts, params.Page, params.PageSize, total)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdatePostInput) (*domain.BlogPost, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, domain.ErrPostNotFound
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Slug != nil {
		post.Slug = *input.Slug
	}
	if input.Excerpt != nil {
		post.Excerpt = input.Excerpt
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Image != nil {
		post.Image = input.Image
	}
	if input.Published != nil {
		// First publication stamps published_at; unpublishing keeps it.
		if *input.Published && !post.Published && post.PublishedAt == nil {
			now := time.Now()
			post.PublishedAt = &now
		}
		post.Published = *input.Published
	}

	if err := s.postRepo.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.postRepo.Delete(ctx, id)
}
