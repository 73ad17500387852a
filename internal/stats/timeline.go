package stats

import (
	"sort"
	"strings"

	"github.com/MKhiriev/go-daily-diary/models"
)

// HasSection reports whether entry has content in section. Thoughts made of
// whitespace only do not count here.
func HasSection(entry models.DailyEntry, section models.Section) bool {
	switch section {
	case models.SectionThoughts:
		return strings.TrimSpace(entry.Thoughts) != ""
	case models.SectionDiet:
		return entry.HasDiet()
	case models.SectionExercise:
		return entry.HasExercises()
	case models.SectionTodos:
		return entry.HasTodos()
	case models.SectionDiscoveries:
		return entry.HasDiscoveries()
	}
	return false
}

// Timeline returns the entries having section content, newest first,
// grouped by month (newest month first).
func Timeline(entries []models.DailyEntry, section models.Section) []models.TimelineGroup {
	matching := make([]models.DailyEntry, 0)
	for _, entry := range entries {
		if HasSection(entry, section) {
			matching = append(matching, entry)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Date > matching[j].Date
	})

	groups := make([]models.TimelineGroup, 0)
	for _, entry := range matching {
		month := monthOf(entry.Date)
		if n := len(groups); n > 0 && groups[n-1].Month == month {
			groups[n-1].Entries = append(groups[n-1].Entries, entry)
			continue
		}
		groups = append(groups, models.TimelineGroup{Month: month, Entries: []models.DailyEntry{entry}})
	}
	return groups
}

func monthOf(date string) string {
	if len(date) < len(models.MonthLayout) {
		return date
	}
	return date[:len(models.MonthLayout)]
}
