package services

import (
	"context"

	"github.com/dmitrijs2005/timediary/internal/models"
	"github.com/dmitrijs2005/timediary/internal/repositories/stats"
)

// StatsService exposes the display-only counters. The values are returned
// verbatim from the store and are never recomputed from the collections.
type StatsService interface {
	Get(ctx context.Context) (models.Stats, error)
}

type statsService struct {
	stats stats.Repository
}

// NewStatsService constructs a StatsService over the stats repository.
func NewStatsService(st stats.Repository) StatsService {
	return &statsService{stats: st}
}

func (s *statsService) Get(ctx context.Context) (models.Stats, error) {
	return s.stats.Get(ctx)
}
