package stats

import (
	"testing"
	"time"

	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(date string) time.Time {
	t, err := models.ParseDate(date)
	if err != nil {
		panic(err)
	}
	return t.Add(15 * time.Hour)
}

func withThoughts(dates ...string) []models.DailyEntry {
	entries := make([]models.DailyEntry, 0, len(dates))
	for _, date := range dates {
		entries = append(entries, models.DailyEntry{Date: date, Thoughts: "note"})
	}
	return entries
}

// ── streaks ───────────────────────────────────────────────────────────────────

func TestCalculate_StreakExample(t *testing.T) {
	s := Calculate(withThoughts("2024-01-01", "2024-01-02", "2024-01-03", "2024-01-05"), at("2024-01-05"))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
}

func TestCalculate_Empty(t *testing.T) {
	s := Calculate(nil, at("2024-01-05"))

	assert.Zero(t, s.TotalEntries)
	assert.Zero(t, s.CurrentStreak)
	assert.Zero(t, s.LongestStreak)
	assert.Zero(t, s.TodoCompletionRate)
	require.Len(t, s.WeeklyActivity, 7)
	for _, d := range s.WeeklyActivity {
		assert.False(t, d.HasEntry)
	}
}

func TestCalculate_SingleEntryToday(t *testing.T) {
	s := Calculate(withThoughts("2024-01-05"), at("2024-01-05"))

	assert.Equal(t, 1, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
}

func TestCalculate_NonConsecutive(t *testing.T) {
	s := Calculate(withThoughts("2024-01-01", "2024-01-03", "2024-01-05", "2024-01-07"), at("2024-02-01"))

	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 1, s.LongestStreak)
}

func TestCalculate_OnlyYesterday(t *testing.T) {
	s := Calculate(withThoughts("2024-01-03", "2024-01-04"), at("2024-01-05"))

	assert.Equal(t, 0, s.CurrentStreak)
	assert.Equal(t, 2, s.LongestStreak)
}

func TestCalculate_CurrentStreakIsLongest(t *testing.T) {
	s := Calculate(withThoughts("2023-12-31", "2024-01-01", "2024-01-02", "2024-01-03"), at("2024-01-03"))

	assert.Equal(t, 4, s.CurrentStreak)
	assert.Equal(t, 4, s.LongestStreak)
}

func TestCalculate_StreakAcrossMonthAndDST(t *testing.T) {
	// 2024-03-31 is a DST switch in Europe; dates are compared as calendar days.
	s := Calculate(withThoughts("2024-03-30", "2024-03-31", "2024-04-01"), at("2024-04-01"))

	assert.Equal(t, 3, s.CurrentStreak)
	assert.Equal(t, 3, s.LongestStreak)
}

func TestCalculate_TodayInLocalZone(t *testing.T) {
	// 2024-01-05 23:30 in Los Angeles is already 2024-01-06 in UTC.
	la, err := time.LoadLocation("America/Los_Angeles")
	require.NoError(t, err)
	today := time.Date(2024, 1, 5, 23, 30, 0, 0, la)

	s := Calculate(withThoughts("2024-01-05"), today)
	assert.Equal(t, 1, s.CurrentStreak)
}

// ── counts ────────────────────────────────────────────────────────────────────

func TestCalculate_Counts(t *testing.T) {
	entries := []models.DailyEntry{
		{
			Date:       "2024-01-01",
			Thoughts:   "a",
			Diet:       models.Diet{Lunch: "soup"},
			IsFavorite: true,
			Todos: []models.TodoItem{
				{ID: "1", Completed: true},
				{ID: "2"},
				{ID: "3", Completed: true},
			},
		},
		{
			Date:        "2024-01-02",
			Exercises:   []models.ExerciseItem{{ID: "x"}, {ID: "y"}},
			Discoveries: []models.DiscoveryItem{{ID: "d"}},
		},
		// empty, favorite only: excluded everywhere
		{Date: "2024-01-03", IsFavorite: true},
		{Date: "2024-01-04"},
	}

	s := Calculate(entries, at("2024-01-10"))

	assert.Equal(t, 2, s.TotalEntries)
	assert.Equal(t, 2, s.TotalDays)
	assert.Equal(t, 1, s.EntriesWithThoughts)
	assert.Equal(t, 1, s.EntriesWithDiet)
	assert.Equal(t, 1, s.EntriesWithExercise)
	assert.Equal(t, 1, s.EntriesWithTodos)
	assert.Equal(t, 1, s.EntriesWithDiscoveries)
	assert.Equal(t, 1, s.FavoriteEntries)
	assert.Equal(t, 3, s.TotalTodos)
	assert.Equal(t, 2, s.CompletedTodos)
	assert.Equal(t, 67, s.TodoCompletionRate)
	assert.Equal(t, 2, s.TotalExercises)
	assert.Equal(t, 1, s.TotalDiscoveries)
	assert.Equal(t, 2, s.LongestStreak)
}

// ── weekly activity ───────────────────────────────────────────────────────────

func TestWeeklyActivity_SundayStart(t *testing.T) {
	// 2024-01-10 is a Wednesday; its week is 2024-01-07 (Sun) .. 2024-01-13 (Sat).
	s := Calculate(withThoughts("2024-01-06", "2024-01-07", "2024-01-10", "2024-01-14"), at("2024-01-10"))

	require.Len(t, s.WeeklyActivity, 7)
	assert.Equal(t, "2024-01-07", s.WeeklyActivity[0].Date)
	assert.Equal(t, "2024-01-13", s.WeeklyActivity[6].Date)

	got := make([]bool, 0, 7)
	for _, d := range s.WeeklyActivity {
		got = append(got, d.HasEntry)
	}
	assert.Equal(t, []bool{true, false, false, true, false, false, false}, got)
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(0, 0))
	assert.Equal(t, 50, CompletionRate(1, 2))
	assert.Equal(t, 33, CompletionRate(1, 3))
	assert.Equal(t, 100, CompletionRate(4, 4))
}

func TestLongestStreak_IgnoresBadDates(t *testing.T) {
	dates := map[string]struct{}{"2024-01-01": {}, "2024-01-02": {}, "garbage": {}}
	assert.Equal(t, 2, LongestStreak(dates))
}
