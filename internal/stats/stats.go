package stats

import (
	"math"
	"time"

	"github.com/MKhiriev/go-daily-diary/models"
)

// daysInWeek is the length of the weekly activity strip.
const daysInWeek = 7

// Calculate aggregates entries as seen on the calendar date of today.
// Only entries with content are counted.
func Calculate(entries []models.DailyEntry, today time.Time) models.Stats {
	nonEmpty := models.FilterWithContent(entries)

	var s models.Stats
	s.TotalEntries = len(nonEmpty)

	for _, entry := range nonEmpty {
		if entry.HasThoughts() {
			s.EntriesWithThoughts++
		}
		if entry.HasDiet() {
			s.EntriesWithDiet++
		}
		if entry.HasExercises() {
			s.EntriesWithExercise++
		}
		if entry.HasTodos() {
			s.EntriesWithTodos++
		}
		if entry.HasDiscoveries() {
			s.EntriesWithDiscoveries++
		}
		if entry.IsFavorite {
			s.FavoriteEntries++
		}

		s.TotalTodos += len(entry.Todos)
		s.CompletedTodos += entry.CompletedTodos()
		s.TotalExercises += len(entry.Exercises)
		s.TotalDiscoveries += len(entry.Discoveries)
	}

	dates := dateSet(nonEmpty)
	day := calendarDay(today)

	s.TotalDays = len(dates)
	s.TodoCompletionRate = CompletionRate(s.CompletedTodos, s.TotalTodos)
	s.CurrentStreak = CurrentStreak(dates, day)
	s.LongestStreak = max(LongestStreak(dates), s.CurrentStreak)
	s.WeeklyActivity = WeeklyActivity(dates, day)

	return s
}

// CompletionRate returns completed/total as a rounded percentage, 0 when
// total is 0.
func CompletionRate(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(completed) / float64(total) * 100))
}

// WeeklyActivity reports, Sunday first, which days of today's week are in
// dates.
func WeeklyActivity(dates map[string]struct{}, today time.Time) []models.DayActivity {
	start := calendarDay(today).AddDate(0, 0, -int(today.Weekday()))

	week := make([]models.DayActivity, 0, daysInWeek)
	for i := range daysInWeek {
		date := models.FormatDate(start.AddDate(0, 0, i))
		_, ok := dates[date]
		week = append(week, models.DayActivity{Date: date, HasEntry: ok})
	}
	return week
}

func dateSet(entries []models.DailyEntry) map[string]struct{} {
	dates := make(map[string]struct{}, len(entries))
	for _, entry := range entries {
		dates[entry.Date] = struct{}{}
	}
	return dates
}

// calendarDay returns UTC midnight of t's wall-clock date in t's location.
func calendarDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
