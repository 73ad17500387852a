// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"math"
	"time"
)

// DateLayout is the canonical calendar date format used as the business key
// of a [DailyEntry]. Lexicographic order of dates in this layout equals
// chronological order.
const DateLayout = "2006-01-02"

// MonthLayout is the layout of month keys ("2024-01") used by history and
// timeline groupings.
const MonthLayout = "2006-01"

// ExerciseType is the closed set of measurement kinds an exercise can have.
type ExerciseType string

const (
	// ExerciseReps counts repetitions or sets (strength training).
	ExerciseReps ExerciseType = "reps"
	// ExerciseDuration measures minutes; fractional part carries seconds.
	ExerciseDuration ExerciseType = "duration"
	// ExerciseDistance measures a travelled distance.
	ExerciseDistance ExerciseType = "distance"
)

// DefaultUnit returns the unit label pre-filled for a new exercise of type t.
func (t ExerciseType) DefaultUnit() string {
	switch t {
	case ExerciseReps:
		return "sets"
	case ExerciseDuration:
		return "mins"
	case ExerciseDistance:
		return "km"
	default:
		return ""
	}
}

// IsValid reports whether t belongs to the closed exercise type set.
func (t ExerciseType) IsValid() bool {
	switch t {
	case ExerciseReps, ExerciseDuration, ExerciseDistance:
		return true
	}
	return false
}

// DiscoveryCategory is the closed set of discovery tags.
type DiscoveryCategory string

const (
	DiscoveryIdea        DiscoveryCategory = "idea"
	DiscoveryLearning    DiscoveryCategory = "learning"
	DiscoveryInspiration DiscoveryCategory = "inspiration"
	DiscoveryOther       DiscoveryCategory = "other"
)

// IsValid reports whether c belongs to the closed discovery category set.
func (c DiscoveryCategory) IsValid() bool {
	switch c {
	case DiscoveryIdea, DiscoveryLearning, DiscoveryInspiration, DiscoveryOther:
		return true
	}
	return false
}

// Diet holds the four fixed meal slots of a day.
type Diet struct {
	Breakfast string `json:"breakfast"`
	Lunch     string `json:"lunch"`
	Dinner    string `json:"dinner"`
	Snacks    string `json:"snacks"`
}

// Slots returns the meal slots in display order.
func (d Diet) Slots() []string {
	return []string{d.Breakfast, d.Lunch, d.Dinner, d.Snacks}
}

// ExerciseItem is a single logged exercise.
type ExerciseItem struct {
	ID   string       `json:"id"`
	Name string       `json:"name"`
	Type ExerciseType `json:"type"`
	// Value is reps/sets, distance, or minutes (mins + secs/60) depending on Type.
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// SplitDuration converts a fractional minutes value into whole minutes and
// rounded seconds.
func SplitDuration(totalMinutes float64) (mins, secs int) {
	whole := math.Floor(totalMinutes)
	return int(whole), int(math.Round((totalMinutes - whole) * 60))
}

// TodoItem is a single to-do of a day.
type TodoItem struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"createdAt"`
	CompletedAt *time.Time `json:"completedAt,omitempty"`
}

// DiscoveryItem is an idea or insight captured during a day.
type DiscoveryItem struct {
	ID        string            `json:"id"`
	Content   string            `json:"content"`
	Category  DiscoveryCategory `json:"category"`
	CreatedAt time.Time         `json:"createdAt"`
}

// DailyEntry is the whole journal record of one calendar date.
//
// Date is the business key: a user owns at most one entry per date. ID is a
// synthetic identifier assigned once at creation. UserID is populated only by
// the multi-user (SQL) backend.
type DailyEntry struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Thoughts    string          `json:"thoughts"`
	Diet        Diet            `json:"diet"`
	Exercises   []ExerciseItem  `json:"exercises"`
	Todos       []TodoItem      `json:"todos"`
	Discoveries []DiscoveryItem `json:"discoveries"`
	IsFavorite  bool            `json:"isFavorite"`
	CreatedAt   time.Time       `json:"created_at"`
	UserID      int64           `json:"user_id,omitempty"`
}

// HasThoughts reports whether the entry has any reflection text.
func (e DailyEntry) HasThoughts() bool {
	return e.Thoughts != ""
}

// HasDiet reports whether at least one meal slot is filled.
func (e DailyEntry) HasDiet() bool {
	return e.Diet.Breakfast != "" || e.Diet.Lunch != "" || e.Diet.Dinner != "" || e.Diet.Snacks != ""
}

// HasExercises reports whether at least one exercise was logged.
func (e DailyEntry) HasExercises() bool {
	return len(e.Exercises) > 0
}

// HasTodos reports whether the entry has at least one to-do.
func (e DailyEntry) HasTodos() bool {
	return len(e.Todos) > 0
}

// HasDiscoveries reports whether the entry has at least one discovery.
func (e DailyEntry) HasDiscoveries() bool {
	return len(e.Discoveries) > 0
}

// HasContent is the single emptiness predicate used by history, search,
// statistics and export. The favorite flag alone is not content.
func (e DailyEntry) HasContent() bool {
	return e.HasThoughts() || e.HasDiet() || e.HasExercises() || e.HasTodos() || e.HasDiscoveries()
}

// CompletedTodos returns how many to-dos of the entry are completed.
func (e DailyEntry) CompletedTodos() int {
	completed := 0
	for _, todo := range e.Todos {
		if todo.Completed {
			completed++
		}
	}
	return completed
}

// FilterWithContent returns the entries that have content, preserving order.
func FilterWithContent(entries []DailyEntry) []DailyEntry {
	filtered := make([]DailyEntry, 0, len(entries))
	for _, entry := range entries {
		if entry.HasContent() {
			filtered = append(filtered, entry)
		}
	}
	return filtered
}

// ParseDate parses a YYYY-MM-DD string into a UTC midnight time.
func ParseDate(date string) (time.Time, error) {
	return time.Parse(DateLayout, date)
}

// IsValidDate reports whether date is a real calendar date in YYYY-MM-DD form.
func IsValidDate(date string) bool {
	if len(date) != len(DateLayout) {
		return false
	}
	_, err := ParseDate(date)
	return err == nil
}

// FormatDate renders t's calendar date (in t's location) as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
