package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/search"
	"github.com/MKhiriev/go-daily-diary/internal/store"
	"github.com/MKhiriev/go-daily-diary/models"
)

type searchService struct {
	entryStore store.EntryStore
	logger     *logger.Logger
}

func NewSearchService(entryStore store.EntryStore, logger *logger.Logger) SearchService {
	return &searchService{entryStore: entryStore, logger: logger}
}

// Search scans all entries. A blank query returns no results without
// touching the store.
func (s *searchService) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return []models.SearchResult{}, nil
	}

	entries, err := s.entryStore.GetAllEntries(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*searchService.Search").Msg("error loading entries")
		return nil, fmt.Errorf("error loading entries for search: %w", err)
	}
	return search.Search(entries, query, search.DefaultLimit), nil
}
