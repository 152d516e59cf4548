package story

import (
	"context"

	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
)

type Service interface {
	Create(ctx context.Context, input domain.CreateStoryInput) (*domain.Story, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error)
	ListActive(ctx context.Context) ([]domain.Story, error)
	ListAll(ctx context.Context) ([]domain.Story, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateStoryInput) (*domain.Story, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	storyRepo repository.StoryRepository
}

func NewService(storyRepo repository.StoryRepository) Service {
	return &service{storyRepo: storyRepo}
}

func (s *service) Create(ctx context.Context, input domain.CreateStoryInput) (*domain.Story, error) {
	thumbnail := input.Thumbnail
	if thumbnail == "" {
		thumbnail = input.Image
	}

	story := &domain.Story{
		ID:          uuid.New(),
		Title:       input.Title,
		Image:       input.Image,
		Thumbnail:   thumbnail,
		Description: input.Description,
		SortOrder:   input.SortOrder,
		ExpiresAt:   input.ExpiresAt,
	}

	if err := s.storyRepo.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, domain.ErrStoryNotFound
	}
	return story, nil
}

func (s *service) ListActive(ctx context.Context) ([]domain.Story, error) {
	return s.storyRepo.ListActive(ctx)
}

func (s *service) ListAll(ctx context.Context) ([]domain.Story, error) {
	return s.storyRepo.ListAll(ctx)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateStoryInput) (*domain.Story, error) {
	story, err := s.storyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if story == nil {
		return nil, domain.ErrStoryNotFound
	}

	if input.Title != nil {
		story.Title = *input.Title
	}
	if input.Image != nil {
		story.Image = *input.Image
	}
	if input.Thumbnail != nil {
		story.Thumbnail = *input.Thumbnail
	}
	if input.Description != nil {
		story.Description = input.Description
	}
	if input.SortOrder != nil {
		story.SortOrder = *input.SortOrder
	}
	if input.ExpiresAt != nil {
		story.ExpiresAt = input.ExpiresAt
	}

	if err := s.storyRepo.Update(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.storyRepo.Delete(ctx, id)
}
