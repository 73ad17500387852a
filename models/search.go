package models

// MatchType names the entry section a search hit came from.
type MatchType string

const (
	MatchThoughts  MatchType = "thoughts"
	MatchDiet      MatchType = "diet"
	MatchExercise  MatchType = "exercise"
	MatchTodo      MatchType = "todo"
	MatchDiscovery MatchType = "discovery"
)

// Match is one matching snippet of an entry. Text is the full original
// field value, not a fragment.
type Match struct {
	Type MatchType `json:"type"`
	Text string    `json:"text"`
}

// SearchResult is an entry that matched a query together with at most one
// match per section.
type SearchResult struct {
	Entry   DailyEntry `json:"entry"`
	Matches []Match    `json:"matches"`
}

// Segment is a piece of highlighted text. Highlighted segments are the
// fragments that matched the query case-insensitively.
type Segment struct {
	Text        string `json:"text"`
	Highlighted bool   `json:"highlighted"`
}
