package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/stats"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
)

type statisticsService struct {
	entryStore store.EntryStore
	clock      *utils.Clock
	logger     *logger.Logger
}

func NewStatisticsService(entryStore store.EntryStore, clock *utils.Clock, logger *logger.Logger) StatisticsService {
	return &statisticsService{entryStore: entryStore, clock: clock, logger: logger}
}

// Statistics aggregates every stored entry relative to today in the
// configured zone.
func (s *statisticsService) Statistics(ctx context.Context) (models.Stats, error) {
	entries, err := s.entryStore.GetAllEntries(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*statisticsService.Statistics").Msg("error loading entries")
		return models.Stats{}, fmt.Errorf("error loading entries for statistics: %w", err)
	}
	return stats.Calculate(entries, s.clock.Now()), nil
}
