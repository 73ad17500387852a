package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDailyEntry_HasContent(t *testing.T) {
	tests := []struct {
		name  string
		entry DailyEntry
		want  bool
	}{
		{name: "empty", entry: DailyEntry{Date: "2024-01-01"}, want: false},
		{name: "favorite only", entry: DailyEntry{Date: "2024-01-01", IsFavorite: true}, want: false},
		{name: "thoughts", entry: DailyEntry{Thoughts: "x"}, want: true},
		{name: "whitespace thoughts count", entry: DailyEntry{Thoughts: " "}, want: true},
		{name: "one meal", entry: DailyEntry{Diet: Diet{Snacks: "nuts"}}, want: true},
		{name: "exercise", entry: DailyEntry{Exercises: []ExerciseItem{{ID: "1"}}}, want: true},
		{name: "todo", entry: DailyEntry{Todos: []TodoItem{{ID: "1"}}}, want: true},
		{name: "discovery", entry: DailyEntry{Discoveries: []DiscoveryItem{{ID: "1"}}}, want: true},
		{name: "empty slices", entry: DailyEntry{Exercises: []ExerciseItem{}, Todos: []TodoItem{}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.entry.HasContent())
		})
	}
}

func TestFilterWithContent(t *testing.T) {
	entries := []DailyEntry{
		{Date: "2024-01-01", Thoughts: "a"},
		{Date: "2024-01-02", IsFavorite: true},
		{Date: "2024-01-03", Todos: []TodoItem{{ID: "t"}}},
	}

	filtered := FilterWithContent(entries)
	assert.Len(t, filtered, 2)
	assert.Equal(t, "2024-01-01", filtered[0].Date)
	assert.Equal(t, "2024-01-03", filtered[1].Date)
}

func TestExerciseType_DefaultUnit(t *testing.T) {
	assert.Equal(t, "sets", ExerciseReps.DefaultUnit())
	assert.Equal(t, "mins", ExerciseDuration.DefaultUnit())
	assert.Equal(t, "km", ExerciseDistance.DefaultUnit())
	assert.Equal(t, "", ExerciseType("swim").DefaultUnit())
}

func TestSplitDuration(t *testing.T) {
	mins, secs := SplitDuration(12.5)
	assert.Equal(t, 12, mins)
	assert.Equal(t, 30, secs)

	mins, secs = SplitDuration(0.25)
	assert.Equal(t, 0, mins)
	assert.Equal(t, 15, secs)
}

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2024-02-29"))
	assert.False(t, IsValidDate("2023-02-29"))
	assert.False(t, IsValidDate("2024-1-05"))
	assert.False(t, IsValidDate("not-a-date"))
	assert.False(t, IsValidDate(""))
}

func TestDailyEntry_CompletedTodos(t *testing.T) {
	entry := DailyEntry{Todos: []TodoItem{{Completed: true}, {Completed: false}, {Completed: true}}}
	assert.Equal(t, 2, entry.CompletedTodos())
}
