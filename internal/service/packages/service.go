package packages

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"zentproje-backend/internal/catalog"
	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
)

const (
	cacheKeyActive = "packages:active"
	cacheTTL       = 5 * time.Minute
)

type Service interface {
	Create(ctx context.Context, input domain.CreatePackageInput) (*domain.ServicePackage, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServicePackage, error)
	ListActive(ctx context.Context) ([]domain.ServicePackage, error)
	ListAll(ctx context.Context) ([]domain.ServicePackage, error)
	Update(ctx context.Context, id uuid.UUID, input domain.UpdatePackageInput) (*domain.ServicePackage, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	pkgRepo repository.PackageRepository
	redis   *redis.Client
}

func NewService(pkgRepo repository.PackageRepository, redis *redis.Client) Service {
	return &service{
		pkgRepo: pkgRepo,
		redis:   redis,
	}
}

func (s *service) Create(ctx context.Context, input domain.CreatePackageInput) (*domain.ServicePackage, error) {
	if bad, ok := catalog.ValidAddonIDs(input.IncludedExtraFeatures); !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAddon, bad)
	}

	currency := input.Currency
	if currency == "" {
		currency = "TRY"
	}
	active := true
	if input.Active != nil {
		active = *input.Active
	}

	pkg := &domain.ServicePackage{
		ID:                    uuid.New(),
		Name:                  input.Name,
		Description:           input.Description,
		ShortDescription:      input.ShortDescription,
		Price:                 input.Price,
		Currency:              currency,
		Category:              input.Category,
		Features:              input.Features,
		IncludedExtraFeatures: input.IncludedExtraFeatures,
		Duration:              input.Duration,
		DeliveryTime:          input.DeliveryTime,
		MaxRevisions:          input.MaxRevisions,
		Popular:               input.Popular,
		Active:                active,
	}

	if err := s.pkgRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return pkg, nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServicePackage, error) {
	pkg, err := s.pkgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrPackageNotFound
	}
	return pkg, nil
}

func (s *service) ListActive(ctx context.Context) ([]domain.ServicePackage, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKeyActive).Result(); err == nil {
			var packages []domain.ServicePackage
			if json.Unmarshal([]byte(cached), &packages) == nil {
				return packages, nil
			}
		}
	}

	packages, err := s.pkgRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(packages); err == nil {
			_ = s.redis.Set(ctx, cacheKeyActive, data, cacheTTL).Err()
		}
	}

	return packages, nil
}

func (s *service) ListAll(ctx context.Context) ([]domain.ServicePackage, error) {
	return s.pkgRepo.List(ctx, false)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input domain.UpdatePackageInput) (*domain.ServicePackage, error) {
	pkg, err := s.pkgRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, domain.ErrPackageNotFound
	}

	if input.Name != nil {
		pkg.Name = *input.Name
	}
	if input.Description != nil {
		pkg.Description = *input.Description
	}
	if input.ShortDescription != nil {
		pkg.ShortDescription = *input.ShortDescription
	}
	if input.Price != nil {
		pkg.Price = *input.Price
	}
	if input.Currency != nil {
		pkg.Currency = *input.Currency
	}
	if input.Category != nil {
		pkg.Category = *input.Category
	}
	if input.Features != nil {
		pkg.Features = *input.Features
	}
	if input.IncludedExtraFeatures != nil {
		if bad, ok := catalog.ValidAddonIDs(*input.IncludedExtraFeatures); !ok {
			return nil, fmt.Errorf("%w: %s", domain.ErrUnknownAddon, bad)
		}
		pkg.IncludedExtraFeatures = *input.IncludedExtraFeatures
	}
	if input.Duration != nil {
		pkg.Duration = *input.Duration
	}
	if input.DeliveryTime != nil {
		pkg.DeliveryTime = *input.DeliveryTime
	}
	if input.MaxRevisions != nil {
		pkg.MaxRevisions = *input.MaxRevisions
	}
	if input.Popular != nil {
		pkg.Popular = *input.Popular
	}
	if input.Active != nil {
		pkg.Active = *input.Active
	}

	if err := s.pkgRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	s.invalidateCache(ctx)
	return pkg, nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.pkgRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *service) invalidateCache(ctx context.Context) {
	if s.redis != nil {
		_ = s.redis.Del(ctx, cacheKeyActive).Err()
	}
}
