package subscription

import (
	"context"

	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
)

type Service interface {
	Subscribe(ctx context.Context, input domain.SubscribeInput) (*domain.Subscription, error)
	Unsubscribe(ctx context.Context, email string) error
	List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.Subscription], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	subRepo repository.SubscriptionRepository
}

func NewService(subRepo repository.SubscriptionRepository) Service {
	return &service{subRepo: subRepo}
}

func (s *service) Subscribe(ctx context.Context, input domain.SubscribeInput) (*domain.Subscription, error) {
	sub := &domain.Subscription{
		ID:     uuid.New(),
		Email:  input.Email,
		Active: true,
	}

	if err := s.subRepo.Create(ctx, sub); err != nil {
		return nil, err
	}
	return sub, nil
}

func (s *service) Unsubscribe(ctx context.Context, email string) error {
	return s.subRepo.DeleteByEmail(ctx, email)
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.Subscription], error) {
	params.Validate()

	subs, total, err := s.subRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := domain.NewPaginatedResponse(subs, params.Page, params.PageSize, total)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.subRepo.Delete(ctx, id)
}
