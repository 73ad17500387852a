package store

import (
	"time"

	"github.com/MKhiriev/go-daily-diary/models"
)

// NormalizeEntry returns entry with every invariant of a stored entry in
// place: id set (newID when missing), Date forced to date, collections
// non-nil and created_at set (now when missing).
//
// It is idempotent: normalizing a normalized entry with the same arguments
// returns it unchanged.
func NormalizeEntry(entry models.DailyEntry, date, newID string, now time.Time) models.DailyEntry {
	if entry.ID == "" {
		entry.ID = newID
	}
	entry.Date = date

	if entry.Exercises == nil {
		entry.Exercises = []models.ExerciseItem{}
	}
	if entry.Todos == nil {
		entry.Todos = []models.TodoItem{}
	}
	if entry.Discoveries == nil {
		entry.Discoveries = []models.DiscoveryItem{}
	}

	if entry.CreatedAt.IsZero() {
		entry.CreatedAt = now.UTC()
	}

	return entry
}
