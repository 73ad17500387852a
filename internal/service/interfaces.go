//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

package service

import (
	"context"

	"github.com/MKhiriev/go-daily-diary/models"
)

// EntryService reads and saves whole days.
type EntryService interface {
	// GetEntry returns the entry of date, or an unsaved empty template. The
	// adjacent days are prefetched in the background.
	GetEntry(ctx context.Context, date string) (models.DailyEntry, error)
	// SaveEntry stores entry under date. The date argument wins over
	// entry.Date.
	SaveEntry(ctx context.Context, date string, entry models.DailyEntry) (models.DailyEntry, error)
	// ListEntries returns the entries of the inclusive range, or all entries
	// when both bounds are empty.
	ListEntries(ctx context.Context, from, to string) ([]models.DailyEntry, error)
	// ActiveDate returns date when it is a valid YYYY-MM-DD date, otherwise
	// today. ok reports whether date was used as is.
	ActiveDate(date string) (active string, ok bool)
}

type StatisticsService interface {
	Statistics(ctx context.Context) (models.Stats, error)
}

type SearchService interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
}

type ExportService interface {
	Export(ctx context.Context, request models.ExportRequest) (models.ExportDocument, error)
}

// HistoryService backs the calendar view.
type HistoryService interface {
	// Month lists the days of a YYYY-MM month that have content.
	Month(ctx context.Context, month string) ([]models.HistoryDay, error)
	// Favorites returns favorite days with content, newest first.
	Favorites(ctx context.Context) ([]models.DailyEntry, error)
}

type TimelineService interface {
	Timeline(ctx context.Context, section models.Section) ([]models.TimelineGroup, error)
}

type PreferencesService interface {
	GetPreferences(ctx context.Context) (models.StatisticsPreferences, error)
	UpdatePreferences(ctx context.Context, update models.StatisticsPreferencesUpdate) (models.StatisticsPreferences, error)
	ResetPreferences(ctx context.Context) (models.StatisticsPreferences, error)
}

type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// Prefetcher warms the cache around a date.
type Prefetcher interface {
	Prefetch(ctx context.Context, date string)
}

// EntryServiceWrapper defines middleware composition for EntryService.
// Implementations wrap an existing EntryService to add behavior such as
// validation.
type EntryServiceWrapper interface {
	Wrap(EntryService) EntryService
}
