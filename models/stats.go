package models

// Stats is the aggregate view over every non-empty entry of a user.
type Stats struct {
	TotalEntries           int `json:"totalEntries"`
	TotalDays              int `json:"totalDays"`
	EntriesWithThoughts    int `json:"entriesWithThoughts"`
	EntriesWithDiet        int `json:"entriesWithDiet"`
	EntriesWithExercise    int `json:"entriesWithExercise"`
	EntriesWithTodos       int `json:"entriesWithTodos"`
	EntriesWithDiscoveries int `json:"entriesWithDiscoveries"`
	FavoriteEntries        int `json:"favoriteEntries"`
	TotalTodos             int `json:"totalTodos"`
	CompletedTodos         int `json:"completedTodos"`
	TotalExercises         int `json:"totalExercises"`
	TotalDiscoveries       int `json:"totalDiscoveries"`
	CurrentStreak          int `json:"currentStreak"`
	LongestStreak          int `json:"longestStreak"`

	// TodoCompletionRate is the rounded percentage of completed to-dos,
	// zero when there are none.
	TodoCompletionRate int `json:"todoCompletionRate"`

	// WeeklyActivity always holds seven days, Sunday first.
	WeeklyActivity []DayActivity `json:"weeklyActivity"`
}

// DayActivity marks whether a day of the current week has an entry.
type DayActivity struct {
	Date     string `json:"date"`
	HasEntry bool   `json:"hasEntry"`
}

// Section names one content section of an entry.
type Section string

const (
	SectionThoughts    Section = "thoughts"
	SectionDiet        Section = "diet"
	SectionExercise    Section = "exercise"
	SectionTodos       Section = "todos"
	SectionDiscoveries Section = "discoveries"
)

// IsValid reports whether s is one of the known sections.
func (s Section) IsValid() bool {
	switch s {
	case SectionThoughts, SectionDiet, SectionExercise, SectionTodos, SectionDiscoveries:
		return true
	}
	return false
}

// TimelineGroup holds the entries of one month (MonthLayout key) that have
// content in a given section, newest first.
type TimelineGroup struct {
	Month   string       `json:"month"`
	Entries []DailyEntry `json:"entries"`
}

// HistoryDay is a calendar marker for a date that has content.
type HistoryDay struct {
	Date       string `json:"date"`
	IsFavorite bool   `json:"isFavorite"`
}
