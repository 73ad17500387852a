package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
)

type entryService struct {
	entryStore store.EntryStore
	prefetcher Prefetcher
	ids        utils.IDGenerator
	clock      *utils.Clock

	logger *logger.Logger
}

// NewEntryService builds the EntryService. prefetcher may be nil.
func NewEntryService(entryStore store.EntryStore, prefetcher Prefetcher, ids utils.IDGenerator, clock *utils.Clock, logger *logger.Logger) EntryService {
	return &entryService{
		entryStore: entryStore,
		prefetcher: prefetcher,
		ids:        ids,
		clock:      clock,
		logger:     logger,
	}
}

func (s *entryService) GetEntry(ctx context.Context, date string) (models.DailyEntry, error) {
	entry, err := s.entryStore.GetEntryByDate(ctx, date)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.GetEntry").Str("date", date).Msg("error getting entry")
		return models.DailyEntry{}, fmt.Errorf("error getting entry for %s: %w", date, err)
	}

	if s.prefetcher != nil {
		s.prefetcher.Prefetch(ctx, date)
	}
	return entry, nil
}

func (s *entryService) SaveEntry(ctx context.Context, date string, entry models.DailyEntry) (models.DailyEntry, error) {
	entry.Date = date
	prepared := s.prepare(entry, s.clock.Now())

	saved, err := s.entryStore.SaveEntry(ctx, prepared)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*entryService.SaveEntry").Str("date", date).Msg("error saving entry")
		return models.DailyEntry{}, fmt.Errorf("error saving entry for %s: %w", date, err)
	}
	return saved, nil
}

func (s *entryService) ListEntries(ctx context.Context, from, to string) ([]models.DailyEntry, error) {
	log := logger.FromContext(ctx)

	var (
		entries []models.DailyEntry
		err     error
	)
	switch {
	case from == "" && to == "":
		entries, err = s.entryStore.GetAllEntries(ctx)
	case from == "" || to == "":
		return nil, ErrIncompleteRange
	default:
		entries, err = s.entryStore.GetEntriesByDateRange(ctx, from, to)
	}
	if err != nil {
		log.Err(err).Str("func", "*entryService.ListEntries").Str("from", from).Str("to", to).Msg("error listing entries")
		return nil, fmt.Errorf("error listing entries: %w", err)
	}
	return entries, nil
}

func (s *entryService) ActiveDate(date string) (string, bool) {
	if models.IsValidDate(date) {
		return date, true
	}
	return s.clock.Today(), false
}

// prepare applies the save-time rules to an entry received from a client:
// item ids and timestamps are filled, free text of items is trimmed, blank
// exercise units get the type's default and todo completion times follow
// the completed flag.
func (s *entryService) prepare(entry models.DailyEntry, now time.Time) models.DailyEntry {
	now = now.UTC()

	exercises := make([]models.ExerciseItem, 0, len(entry.Exercises))
	for _, ex := range entry.Exercises {
		if ex.ID == "" {
			ex.ID = s.ids.Generate()
		}
		ex.Name = strings.TrimSpace(ex.Name)
		ex.Unit = strings.TrimSpace(ex.Unit)
		if ex.Unit == "" {
			ex.Unit = ex.Type.DefaultUnit()
		}
		exercises = append(exercises, ex)
	}
	entry.Exercises = exercises

	todos := make([]models.TodoItem, 0, len(entry.Todos))
	for _, todo := range entry.Todos {
		if todo.ID == "" {
			todo.ID = s.ids.Generate()
		}
		if todo.CreatedAt.IsZero() {
			todo.CreatedAt = now
		}
		todo.Text = strings.TrimSpace(todo.Text)
		switch {
		case !todo.Completed:
			todo.CompletedAt = nil
		case todo.CompletedAt == nil:
			completedAt := now
			todo.CompletedAt = &completedAt
		}
		todos = append(todos, todo)
	}
	entry.Todos = todos

	discoveries := make([]models.DiscoveryItem, 0, len(entry.Discoveries))
	for _, d := range entry.Discoveries {
		if d.ID == "" {
			d.ID = s.ids.Generate()
		}
		if d.CreatedAt.IsZero() {
			d.CreatedAt = now
		}
		d.Content = strings.TrimSpace(d.Content)
		discoveries = append(discoveries, d)
	}
	entry.Discoveries = discoveries

	return entry
}
