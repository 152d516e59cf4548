package dashboard

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"zentproje-backend/internal/repository"
)

const (
	cacheKey = "dashboard:stats"
	cacheTTL = 1 * time.Minute
)

type Service interface {
	GetStats(ctx context.Context) (*repository.Stats, error)
}

type service struct {
	statsRepo repository.StatsRepository
	redis     *redis.Client
}

func NewService(statsRepo repository.StatsRepository, redis *redis.Client) Service {
	return &service{
		statsRepo: statsRepo,
		redis:     redis,
	}
}

func (s *service) GetStats(ctx context.Context) (*repository.Stats, error) {
	if s.redis != nil {
		if cached, err := s.redis.Get(ctx, cacheKey).Result(); err == nil {
			var stats repository.Stats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return &stats, nil
			}
		}
	}

	stats, err := s.statsRepo.GetStats(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		if data, err := json.Marshal(stats); err == nil {
			_ = s.redis.Set(ctx, cacheKey, data, cacheTTL).Err()
		}
	}

	return stats, nil
}
