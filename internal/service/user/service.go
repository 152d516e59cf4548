package user

import (
	"context"

	"github.com/google/uuid"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
)

type Service interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.User], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	userRepo repository.UserRepository
}

func NewService(userRepo repository.UserRepository) Service {
	return &service{userRepo: userRepo}
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *service) List(ctx context.Context, params domain.PaginationParams) (*domain.PaginatedResponse[domain.User], error) {
	params.Validate()

	users, total, err := s.userRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	resp := domain.NewPaginatedResponse(users, params.Page, params.PageSize, total)
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}
