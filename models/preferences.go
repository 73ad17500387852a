package models

// StatisticsPreferences holds the display toggles of the statistics view.
type StatisticsPreferences struct {
	ShowSectionOverview bool `json:"showSectionOverview"`
	ShowTodoProgress    bool `json:"showTodoProgress"`
	ShowStreak          bool `json:"showStreak"`
	ShowFavorites       bool `json:"showFavorites"`
	ShowWeeklyActivity  bool `json:"showWeeklyActivity"`
}

// DefaultStatisticsPreferences returns the preferences of a user that never
// changed them.
func DefaultStatisticsPreferences() StatisticsPreferences {
	return StatisticsPreferences{
		ShowSectionOverview: true,
		ShowTodoProgress:    true,
	}
}

// StatisticsPreferencesUpdate is a partial update; nil fields keep their
// current value.
type StatisticsPreferencesUpdate struct {
	ShowSectionOverview *bool `json:"showSectionOverview,omitempty"`
	ShowTodoProgress    *bool `json:"showTodoProgress,omitempty"`
	ShowStreak          *bool `json:"showStreak,omitempty"`
	ShowFavorites       *bool `json:"showFavorites,omitempty"`
	ShowWeeklyActivity  *bool `json:"showWeeklyActivity,omitempty"`
}

// Apply returns p with every non-nil field of u applied.
func (u StatisticsPreferencesUpdate) Apply(p StatisticsPreferences) StatisticsPreferences {
	if u.ShowSectionOverview != nil {
		p.ShowSectionOverview = *u.ShowSectionOverview
	}
	if u.ShowTodoProgress != nil {
		p.ShowTodoProgress = *u.ShowTodoProgress
	}
	if u.ShowStreak != nil {
		p.ShowStreak = *u.ShowStreak
	}
	if u.ShowFavorites != nil {
		p.ShowFavorites = *u.ShowFavorites
	}
	if u.ShowWeeklyActivity != nil {
		p.ShowWeeklyActivity = *u.ShowWeeklyActivity
	}
	return p
}
