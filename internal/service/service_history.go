package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/stats"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
)

type historyService struct {
	entryStore store.EntryStore
	logger     *logger.Logger
}

func NewHistoryService(entryStore store.EntryStore, logger *logger.Logger) HistoryService {
	return &historyService{entryStore: entryStore, logger: logger}
}

func (s *historyService) Month(ctx context.Context, month string) ([]models.HistoryDay, error) {
	start, end, err := utils.MonthRange(month)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMonth, err)
	}

	entries, err := s.entryStore.GetEntriesByDateRange(ctx, start, end)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*historyService.Month").Str("month", month).Msg("error loading month")
		return nil, fmt.Errorf("error loading history for %s: %w", month, err)
	}

	days := make([]models.HistoryDay, 0, len(entries))
	for _, entry := range models.FilterWithContent(entries) {
		days = append(days, models.HistoryDay{Date: entry.Date, IsFavorite: entry.IsFavorite})
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})
	return days, nil
}

func (s *historyService) Favorites(ctx context.Context) ([]models.DailyEntry, error) {
	entries, err := s.entryStore.GetAllEntries(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*historyService.Favorites").Msg("error loading entries")
		return nil, fmt.Errorf("error loading favorites: %w", err)
	}

	favorites := make([]models.DailyEntry, 0)
	for _, entry := range models.FilterWithContent(entries) {
		if entry.IsFavorite {
			favorites = append(favorites, entry)
		}
	}
	sort.SliceStable(favorites, func(i, j int) bool {
		return favorites[i].Date > favorites[j].Date
	})
	return favorites, nil
}

type timelineService struct {
	entryStore store.EntryStore
	logger     *logger.Logger
}

func NewTimelineService(entryStore store.EntryStore, logger *logger.Logger) TimelineService {
	return &timelineService{entryStore: entryStore, logger: logger}
}

func (s *timelineService) Timeline(ctx context.Context, section models.Section) ([]models.TimelineGroup, error) {
	if !section.IsValid() {
		return nil, fmt.Errorf("%w: unknown section %q", ErrInvalidDataProvided, section)
	}

	entries, err := s.entryStore.GetAllEntries(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*timelineService.Timeline").Str("section", string(section)).Msg("error loading entries")
		return nil, fmt.Errorf("error loading timeline: %w", err)
	}
	return stats.Timeline(entries, section), nil
}
