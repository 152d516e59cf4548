package project

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
)

const (
	cacheKeyFeatured = "projects:featured"
	cacheTTL         = 5 * time.Minute
)

type Service interface {
	Create(ctx context.Context, input domain.CreateProjectInput) (*domain.Project, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, featuredOnly bool) ([]domain.Project, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdateProjectInput) (*domain.Project, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	projectRepo repository.ProjectRepository
	redis       *redis.Client
}

func NewService(projectRepo repository.ProjectRepository, redis *redis.Client) Service {
	return &service{
		projectRepo: projectRepo,
		redis:       redis,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreateProjectInput) (*domain.Project, error) {
	status := input.Status
	if status == "" {
		status = "PLANNING"
	}
	priority := input.Priority
	if priority == "" {
		priority = "MEDIUM"
	}
	currency := input.Currency
	if currency == "" {
		currency = "TRY"
	}

	project := &domain.Project{
		ID:          uuid.New(),
		Title:       input.Title,
		Description: input.Description,
		Image:       input.Image,
		Status:      status,
		Priority:    priority,
		Client:      input.Client,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
		Budget:      input.Budget,
		Currency:    currency,
		Tags:        input.Tags,
		Progress:    input.Progress,
		TeamMembers: input.TeamMembers,
		Featured:    input.Featured,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return project, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}
	return project, nil
}

func (s *service) List(ctx context.Context, featuredOnly bool) ([]domain.Project, error) {
	if featuredOnly && s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKeyFeatured).Result(); err == nil {
			var projects []domain.Project
			if json.Unmarshal([]byte(cached), &projects) == nil {
				return projects, nil
			}
		}
	}

	projects, err := s.projectRepo.List(ctx, featuredOnly)
	if err != nil {
		return nil, err
	}

	if featuredOnly && s.redis != nil {
		if data, err := json.Marshal(projects); err == nil {
			_ = s.redis.Set(ctx, cacheKeyFeatured, data, cacheTTL).Err()
		}
	}

	return projects, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdateProjectInput) (*domain.Project, error) {
	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domain.ErrProjectNotFound
	}

	if input.Title != nil {
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Image != nil {
		project.Image = *input.Image
	}
	if input.Status != nil {
		project.Status = *input.Status
	}
	if input.Priority != nil {
		project.Priority = *input.Priority
	}
	if input.Client != nil {
		project.Client = *input.Client
	}
	if input.StartDate != nil {
		project.StartDate = input.StartDate
	}
	if input.EndDate != nil {
		project.EndDate = input.EndDate
	}
	if input.Budget != nil {
		project.Budget = *input.Budget
	}
	if input.Currency != nil {
		project.Currency = *input.Currency
	}
	if input.Tags != nil {
		project.Tags = *input.Tags
	}
	if input.Progress != nil {
		project.Progress = *input.Progress
	}
	if input.TeamMembers != nil {
		project.TeamMembers = *input.TeamMembers
	}
	if input.Featured != nil {
		project.Featured = *input.Featured
	}

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return project, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, cacheKeyFeatured).Err()
	}
}
