package export

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-daily-diary/models"
)

// exportedAtLayout matches ISO-8601 with millisecond precision in UTC.
const exportedAtLayout = "2006-01-02T15:04:05.000Z07:00"

// jsonDocument is the JSON export layout.
type jsonDocument struct {
	ExportedAt   string      `json:"exportedAt"`
	TotalEntries int         `json:"totalEntries"`
	Entries      []jsonEntry `json:"entries"`
}

// jsonEntry is an exported day. Sections not selected for export are nil and
// absent from the output.
type jsonEntry struct {
	Date      string                 `json:"date"`
	Thoughts  *string                `json:"thoughts,omitempty"`
	Diet      *models.Diet           `json:"diet,omitempty"`
	Exercises *[]models.ExerciseItem `json:"exercises,omitempty"`
	Todos     *[]models.TodoItem     `json:"todos,omitempty"`
}

func toJSON(entries []models.DailyEntry, opts models.ExportOptions, now time.Time) (string, error) {
	doc := jsonDocument{
		ExportedAt:   now.UTC().Format(exportedAtLayout),
		TotalEntries: len(entries),
		Entries:      make([]jsonEntry, 0, len(entries)),
	}

	for _, entry := range entries {
		out := jsonEntry{Date: entry.Date}
		if opts.IncludeThoughts {
			out.Thoughts = &entry.Thoughts
		}
		if opts.IncludeDiet {
			out.Diet = &entry.Diet
		}
		if opts.IncludeExercise {
			exercises := nonNil(entry.Exercises)
			out.Exercises = &exercises
		}
		if opts.IncludeTodos {
			todos := nonNil(entry.Todos)
			out.Todos = &todos
		}
		doc.Entries = append(doc.Entries, out)
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding export: %w", err)
	}
	return string(data), nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
