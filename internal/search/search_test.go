package search

import (
	"fmt"
	"testing"

	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Search ────────────────────────────────────────────────────────────────────

func TestSearch_CapAndOrder(t *testing.T) {
	entries := make([]models.DailyEntry, 0, 25)
	for i := 1; i <= 25; i++ {
		entries = append(entries, models.DailyEntry{
			Date:     fmt.Sprintf("2024-01-%02d", i),
			Thoughts: "went running today",
		})
	}

	results := Search(entries, "running", 0)

	require.Len(t, results, DefaultLimit)
	assert.Equal(t, "2024-01-25", results[0].Entry.Date)
	assert.Equal(t, "2024-01-06", results[19].Entry.Date)
	for i := 1; i < len(results); i++ {
		assert.Greater(t, results[i-1].Entry.Date, results[i].Entry.Date)
	}
}

func TestSearch_BlankQuery(t *testing.T) {
	entries := []models.DailyEntry{{Date: "2024-01-01", Thoughts: "  "}}

	assert.Empty(t, Search(entries, "", 20))
	assert.Empty(t, Search(entries, "   ", 20))
	assert.NotNil(t, Search(entries, "", 20))
}

func TestSearch_FirstMatchPerSection(t *testing.T) {
	entry := models.DailyEntry{
		Date:     "2024-02-01",
		Thoughts: "Coffee with Anna",
		Diet:     models.Diet{Breakfast: "eggs", Lunch: "iced COFFEE", Snacks: "coffee beans"},
		Exercises: []models.ExerciseItem{
			{ID: "1", Name: "push-ups"},
			{ID: "2", Name: "coffee run"},
			{ID: "3", Name: "coffee walk"},
		},
		Todos:       []models.TodoItem{{ID: "t", Text: "buy tea"}},
		Discoveries: []models.DiscoveryItem{{ID: "d", Content: "Coffee grows on trees"}},
	}

	results := Search([]models.DailyEntry{entry}, "Coffee", 20)
	require.Len(t, results, 1)

	assert.Equal(t, []models.Match{
		{Type: models.MatchThoughts, Text: "Coffee with Anna"},
		{Type: models.MatchDiet, Text: "iced COFFEE"},
		{Type: models.MatchExercise, Text: "coffee run"},
		{Type: models.MatchDiscovery, Text: "Coffee grows on trees"},
	}, results[0].Matches)
}

func TestSearch_NoMatch(t *testing.T) {
	entries := []models.DailyEntry{{Date: "2024-01-01", Thoughts: "quiet day"}}
	assert.Empty(t, Search(entries, "loud", 20))
}

func TestSearch_CustomLimit(t *testing.T) {
	entries := []models.DailyEntry{
		{Date: "2024-01-01", Todos: []models.TodoItem{{Text: "call mom"}}},
		{Date: "2024-01-03", Todos: []models.TodoItem{{Text: "call bank"}}},
		{Date: "2024-01-02", Todos: []models.TodoItem{{Text: "call dentist"}}},
	}

	results := Search(entries, "call", 2)
	require.Len(t, results, 2)
	assert.Equal(t, "2024-01-03", results[0].Entry.Date)
	assert.Equal(t, "2024-01-02", results[1].Entry.Date)
}

// ── Highlight ─────────────────────────────────────────────────────────────────

func TestHighlight(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		query string
		want  []models.Segment
	}{
		{
			name:  "case insensitive, every occurrence",
			text:  "Run, run, RUN",
			query: "run",
			want: []models.Segment{
				{Text: "Run", Highlighted: true},
				{Text: ", "},
				{Text: "run", Highlighted: true},
				{Text: ", "},
				{Text: "RUN", Highlighted: true},
			},
		},
		{
			name:  "metacharacters are literal",
			text:  "cost (approx.) $5",
			query: "(approx.)",
			want: []models.Segment{
				{Text: "cost "},
				{Text: "(approx.)", Highlighted: true},
				{Text: " $5"},
			},
		},
		{
			name:  "no match",
			text:  "hello",
			query: "xyz",
			want:  []models.Segment{{Text: "hello"}},
		},
		{
			name:  "empty query",
			text:  "hello",
			query: "",
			want:  []models.Segment{{Text: "hello"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Highlight(tt.text, tt.query))
		})
	}
}
