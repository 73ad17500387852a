package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/go-daily-diary/internal/search"
	"github.com/MKhiriev/go-daily-diary/internal/stats"
	"github.com/MKhiriev/go-daily-diary/models"
)

type renderer struct {
	w  io.Writer
	st styles
}

func newRenderer(w io.Writer) *renderer {
	return &renderer{w: w, st: newStyles(w)}
}

func (r *renderer) line(s string) {
	fmt.Fprintln(r.w, s)
}

func (r *renderer) linef(format string, args ...any) {
	fmt.Fprintf(r.w, format+"\n", args...)
}

func (r *renderer) field(label, value string) {
	r.linef("  %s %s", r.st.label.Render(label+":"), value)
}

// ── entries ─────────────────────────────────────────────────────────────────

func (r *renderer) entry(e models.DailyEntry) {
	title := e.Date
	if e.IsFavorite {
		title += " ★"
	}
	r.line(r.st.title.Render(title))

	if !e.HasContent() {
		r.line(r.st.muted.Render("  nothing written yet"))
		return
	}

	if e.HasThoughts() {
		r.line(r.st.heading.Render("Thoughts"))
		for _, l := range strings.Split(e.Thoughts, "\n") {
			r.line("  " + l)
		}
	}

	if e.HasDiet() {
		r.line(r.st.heading.Render("Diet"))
		labels := []string{"Breakfast", "Lunch", "Dinner", "Snacks"}
		for i, meal := range e.Diet.Slots() {
			if meal != "" {
				r.field(labels[i], meal)
			}
		}
	}

	if e.HasExercises() {
		r.line(r.st.heading.Render("Exercise"))
		for _, ex := range e.Exercises {
			r.linef("  - %s: %s", ex.Name, exerciseValue(ex))
		}
	}

	if e.HasTodos() {
		r.line(r.st.heading.Render(fmt.Sprintf("Todos (%d/%d)", e.CompletedTodos(), len(e.Todos))))
		for _, todo := range e.Todos {
			box := "[ ]"
			if todo.Completed {
				box = "[x]"
			}
			r.linef("  %s %s", box, todo.Text)
		}
	}

	if e.HasDiscoveries() {
		r.line(r.st.heading.Render("Discoveries"))
		for _, d := range e.Discoveries {
			r.linef("  - %s %s", r.st.label.Render("["+string(d.Category)+"]"), d.Content)
		}
	}
}

func exerciseValue(ex models.ExerciseItem) string {
	if ex.Type == models.ExerciseDuration {
		mins, secs := models.SplitDuration(ex.Value)
		return fmt.Sprintf("%dm %02ds", mins, secs)
	}
	return fmt.Sprintf("%g %s", ex.Value, ex.Unit)
}

// entrySummary is the one-line form used in listings.
func (r *renderer) entrySummary(e models.DailyEntry) {
	star := " "
	if e.IsFavorite {
		star = "★"
	}

	parts := make([]string, 0, 5)
	for _, section := range []models.Section{
		models.SectionThoughts, models.SectionDiet, models.SectionExercise,
		models.SectionTodos, models.SectionDiscoveries,
	} {
		if stats.HasSection(e, section) {
			parts = append(parts, string(section))
		}
	}

	r.linef("%s %s  %s", star, e.Date, r.st.muted.Render(strings.Join(parts, ", ")))
}

func (r *renderer) entries(entries []models.DailyEntry, empty string) {
	if len(entries) == 0 {
		r.line(r.st.muted.Render(empty))
		return
	}
	for _, e := range entries {
		r.entrySummary(e)
	}
}

// ── history and timeline ────────────────────────────────────────────────────

func (r *renderer) history(month string, days []models.HistoryDay) {
	r.line(r.st.title.Render(month))
	if len(days) == 0 {
		r.line(r.st.muted.Render("  no entries this month"))
		return
	}
	for _, day := range days {
		marker := "•"
		if day.IsFavorite {
			marker = "★"
		}
		r.linef("  %s %s", marker, day.Date)
	}
}

func (r *renderer) timeline(section models.Section, groups []models.TimelineGroup) {
	if len(groups) == 0 {
		r.line(r.st.muted.Render("no entries with " + string(section)))
		return
	}
	for _, group := range groups {
		r.line(r.st.title.Render(group.Month))
		for _, e := range group.Entries {
			r.entrySummary(e)
		}
	}
}

// ── statistics ──────────────────────────────────────────────────────────────

func (r *renderer) statistics(s models.Stats, prefs models.StatisticsPreferences) {
	r.line(r.st.title.Render("Statistics"))
	r.field("Entries", fmt.Sprint(s.TotalEntries))

	if prefs.ShowSectionOverview {
		r.line(r.st.heading.Render("Sections"))
		r.field("Thoughts", fmt.Sprint(s.EntriesWithThoughts))
		r.field("Diet", fmt.Sprint(s.EntriesWithDiet))
		r.field("Exercise", fmt.Sprint(s.EntriesWithExercise))
		r.field("Todos", fmt.Sprint(s.EntriesWithTodos))
		r.field("Discoveries", fmt.Sprint(s.EntriesWithDiscoveries))
	}

	if prefs.ShowTodoProgress {
		r.line(r.st.heading.Render("Todo progress"))
		r.field("Completed", fmt.Sprintf("%d/%d (%d%%)", s.CompletedTodos, s.TotalTodos, s.TodoCompletionRate))
	}

	if prefs.ShowStreak {
		r.line(r.st.heading.Render("Streak"))
		r.field("Current", fmt.Sprintf("%d days", s.CurrentStreak))
		r.field("Longest", fmt.Sprintf("%d days", s.LongestStreak))
	}

	if prefs.ShowFavorites {
		r.line(r.st.heading.Render("Favorites"))
		r.field("Favorite entries", fmt.Sprint(s.FavoriteEntries))
	}

	if prefs.ShowWeeklyActivity {
		r.line(r.st.heading.Render("This week"))
		days := make([]string, 0, len(s.WeeklyActivity))
		for _, day := range s.WeeklyActivity {
			mark := "·"
			if day.HasEntry {
				mark = "■"
			}
			days = append(days, mark)
		}
		r.line("  " + strings.Join(days, " "))
	}
}

// ── search ──────────────────────────────────────────────────────────────────

func (r *renderer) searchResults(query string, results []models.SearchResult) {
	if len(results) == 0 {
		r.line(r.st.muted.Render(fmt.Sprintf("no results for %q", query)))
		return
	}
	for _, result := range results {
		r.line(r.st.title.Render(result.Entry.Date))
		for _, match := range result.Matches {
			r.linef("  %s %s", r.st.label.Render(string(match.Type)+":"), r.highlighted(match.Text, query))
		}
	}
}

func (r *renderer) highlighted(text, query string) string {
	var b strings.Builder
	for _, seg := range search.Highlight(text, query) {
		if seg.Highlighted {
			b.WriteString(r.st.highlight.Render(seg.Text))
			continue
		}
		b.WriteString(seg.Text)
	}
	return b.String()
}

// ── preferences ─────────────────────────────────────────────────────────────

func (r *renderer) preferences(p models.StatisticsPreferences) {
	onOff := func(v bool) string {
		if v {
			return r.st.success.Render("on")
		}
		return r.st.muted.Render("off")
	}
	r.line(r.st.title.Render("Statistics preferences"))
	r.field("section-overview", onOff(p.ShowSectionOverview))
	r.field("todo-progress", onOff(p.ShowTodoProgress))
	r.field("streak", onOff(p.ShowStreak))
	r.field("favorites", onOff(p.ShowFavorites))
	r.field("weekly-activity", onOff(p.ShowWeeklyActivity))
}
