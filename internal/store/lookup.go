package store

import (
	"time"

	"github.com/MKhiriev/go-daily-diary/models"
)

// Lookup is the outcome of finding an entry by date: either a stored entry
// or nothing. Backends produce it internally and resolve it to a template
// at their boundary.
type Lookup struct {
	entry models.DailyEntry
	found bool
}

// Found wraps a stored entry.
func Found(entry models.DailyEntry) Lookup {
	return Lookup{entry: entry, found: true}
}

// Absent reports that no entry is stored for the date.
func Absent() Lookup {
	return Lookup{}
}

// Entry returns the stored entry and whether there was one.
func (l Lookup) Entry() (models.DailyEntry, bool) {
	return l.entry, l.found
}

// Resolve returns the normalized stored entry, or an empty template for
// date when absent.
func (l Lookup) Resolve(date, newID string, now time.Time) models.DailyEntry {
	if l.found {
		return NormalizeEntry(l.entry, date, newID, now)
	}
	return NormalizeEntry(models.DailyEntry{}, date, newID, now)
}
