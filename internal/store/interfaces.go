//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

package store

import (
	"context"

	"github.com/MKhiriev/go-daily-diary/models"
)

// EntryStore is the persistence contract for diary entries. Both backends
// return normalized entries: ids and dates filled, collections non-nil.
type EntryStore interface {
	// GetEntryByDate returns the stored entry for date, or an unsaved empty
	// template when none exists. The returned Date always equals date.
	GetEntryByDate(ctx context.Context, date string) (models.DailyEntry, error)
	// GetEntriesByDateRange returns entries with start <= date <= end in
	// ascending date order. Bounds are compared lexicographically.
	GetEntriesByDateRange(ctx context.Context, start, end string) ([]models.DailyEntry, error)
	// GetAllEntries returns every stored entry in ascending date order.
	GetAllEntries(ctx context.Context) ([]models.DailyEntry, error)
	// SaveEntry upserts the whole entry keyed by (user, date) and returns
	// the persisted value.
	SaveEntry(ctx context.Context, entry models.DailyEntry) (models.DailyEntry, error)
}

// UserRepository persists accounts of the remote backend.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User, passwordHash string) (models.User, error)
	FindUserByLogin(ctx context.Context, login string) (models.User, string, error)
}

// PreferencesStore persists the statistics display toggles.
type PreferencesStore interface {
	// GetPreferences returns the stored preferences or the defaults.
	GetPreferences(ctx context.Context) (models.StatisticsPreferences, error)
	SavePreferences(ctx context.Context, prefs models.StatisticsPreferences) error
	// ResetPreferences removes stored preferences so defaults apply again.
	ResetPreferences(ctx context.Context) error
}
