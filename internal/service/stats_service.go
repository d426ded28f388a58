package service

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/stemsi/quizmaster-backend/internal/config"
	"github.com/stemsi/quizmaster-backend/internal/model"
	"github.com/stemsi/quizmaster-backend/internal/repository"
)

// StatsOverview is the user stats plus the number of attempts not yet folded in.
type StatsOverview struct {
	model.UserStats
	PendingUpdates int64 `json:"pending_updates"`
}

type StatsService struct {
	statsRepo *repository.StatsRepository
	rdb       *redis.Client
}

func NewStatsService(statsRepo *repository.StatsRepository, rdb *redis.Client) *StatsService {
	return &StatsService{statsRepo: statsRepo, rdb: rdb}
}

// Get returns the aggregated user stats.
func (s *StatsService) Get(ctx context.Context) (*StatsOverview, error) {
	stats, err := s.statsRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("get stats: %w", err)
	}

	// Queue depth is informational only.
	pending, _ := s.rdb.LLen(ctx, config.WorkerKey.PersistStatsQueue).Result()

	return &StatsOverview{UserStats: *stats, PendingUpdates: pending}, nil
}
