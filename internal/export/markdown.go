package export

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/MKhiriev/go-daily-diary/internal/stats"
	"github.com/MKhiriev/go-daily-diary/models"
)

const (
	exportedOnLayout = "January 2, 2006 at 3:04 PM"
	headingLayout    = "Monday, January 2, 2006"
	unnamedExercise  = "Unnamed"
)

type markdownWriter struct {
	lines []string
}

func (w *markdownWriter) line(s string) {
	w.lines = append(w.lines, s)
}

func (w *markdownWriter) linef(format string, args ...any) {
	w.lines = append(w.lines, fmt.Sprintf(format, args...))
}

func (w *markdownWriter) section(title string) {
	w.line(title)
	w.line("")
}

func (w *markdownWriter) String() string {
	return strings.Join(w.lines, "\n")
}

func toMarkdown(entries []models.DailyEntry, opts models.ExportOptions, now time.Time) string {
	w := &markdownWriter{}

	w.section("# My Diary Export")
	w.linef("> Exported on %s", now.Format(exportedOnLayout))
	w.linef("> Total entries: %d", len(entries))
	w.line("")
	w.section("---")

	for _, entry := range entries {
		w.section("## " + heading(entry.Date))

		if opts.IncludeThoughts && entry.HasThoughts() {
			w.section("### 💭 Thoughts & Reflection")
			w.section(entry.Thoughts)
		}

		if opts.IncludeDiet && entry.HasDiet() {
			w.section("### 🍽️ Diet")
			writeMeal(w, "Breakfast", entry.Diet.Breakfast)
			writeMeal(w, "Lunch", entry.Diet.Lunch)
			writeMeal(w, "Dinner", entry.Diet.Dinner)
			writeMeal(w, "Snacks", entry.Diet.Snacks)
			w.line("")
		}

		if opts.IncludeExercise && entry.HasExercises() {
			w.section("### 🏃 Exercise")
			for _, ex := range entry.Exercises {
				name := ex.Name
				if name == "" {
					name = unnamedExercise
				}
				w.linef("- **%s:** %s %s", name, strconv.FormatFloat(ex.Value, 'f', -1, 64), ex.Unit)
			}
			w.line("")
		}

		// The summary is written even without todos so every exported day
		// reports its progress.
		if opts.IncludeTodos {
			w.section("### ✅ Tasks")
			for _, todo := range entry.Todos {
				checkbox := "[ ]"
				if todo.Completed {
					checkbox = "[x]"
				}
				w.linef("- %s %s", checkbox, todo.Text)
			}
			if entry.HasTodos() {
				w.line("")
			}
			w.section(completedLine(entry.CompletedTodos(), len(entry.Todos)))
		}

		w.section("---")
	}

	return w.String()
}

func writeMeal(w *markdownWriter, label, meal string) {
	if meal != "" {
		w.linef("- **%s:** %s", label, meal)
	}
}

func completedLine(completed, total int) string {
	return fmt.Sprintf("> Completed: %d/%d (%d%%)", completed, total, stats.CompletionRate(completed, total))
}

func heading(date string) string {
	day, err := models.ParseDate(date)
	if err != nil {
		return date
	}
	return day.Format(headingLayout)
}
