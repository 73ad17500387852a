// Package search finds diary entries containing a free-text query.
package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/MKhiriev/go-daily-diary/models"
)

// DefaultLimit caps the number of results returned by Search.
const DefaultLimit = 20

// Search returns the entries in which query occurs as a case-insensitive
// substring, newest first and at most limit long. A non-positive limit means
// DefaultLimit. A blank query yields no results.
func Search(entries []models.DailyEntry, query string, limit int) []models.SearchResult {
	results := make([]models.SearchResult, 0)
	if strings.TrimSpace(query) == "" {
		return results
	}
	if limit <= 0 {
		limit = DefaultLimit
	}

	q := strings.ToLower(query)
	for _, entry := range entries {
		if matches := matchEntry(entry, q); len(matches) > 0 {
			results = append(results, models.SearchResult{Entry: entry, Matches: matches})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Entry.Date > results[j].Entry.Date
	})
	if len(results) > limit {
		results = results[:limit]
	}
	return results
}

// matchEntry reports at most one match per section of entry.
func matchEntry(entry models.DailyEntry, q string) []models.Match {
	var matches []models.Match
	add := func(t models.MatchType, texts []string) {
		if text, ok := firstMatch(texts, q); ok {
			matches = append(matches, models.Match{Type: t, Text: text})
		}
	}

	add(models.MatchThoughts, []string{entry.Thoughts})
	add(models.MatchDiet, entry.Diet.Slots())
	add(models.MatchExercise, collect(entry.Exercises, func(e models.ExerciseItem) string { return e.Name }))
	add(models.MatchTodo, collect(entry.Todos, func(t models.TodoItem) string { return t.Text }))
	add(models.MatchDiscovery, collect(entry.Discoveries, func(d models.DiscoveryItem) string { return d.Content }))

	return matches
}

// firstMatch returns the first of texts containing the lowercased query q.
func firstMatch(texts []string, q string) (string, bool) {
	for _, text := range texts {
		if strings.Contains(strings.ToLower(text), q) {
			return text, true
		}
	}
	return "", false
}

func collect[T any](items []T, field func(T) string) []string {
	texts := make([]string, 0, len(items))
	for _, item := range items {
		texts = append(texts, field(item))
	}
	return texts
}

// Highlight splits text into segments, marking every case-insensitive
// occurrence of query. Regular expression metacharacters in query match
// literally.
func Highlight(text, query string) []models.Segment {
	if query == "" {
		return []models.Segment{{Text: text}}
	}

	re := regexp.MustCompile("(?i)" + regexp.QuoteMeta(query))

	segments := make([]models.Segment, 0)
	last := 0
	for _, loc := range re.FindAllStringIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, models.Segment{Text: text[last:loc[0]]})
		}
		segments = append(segments, models.Segment{Text: text[loc[0]:loc[1]], Highlighted: true})
		last = loc[1]
	}
	if last < len(text) || len(segments) == 0 {
		segments = append(segments, models.Segment{Text: text[last:]})
	}
	return segments
}
