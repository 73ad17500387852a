// Package stats computes the aggregate statistics, writing streaks and
// section timelines of a user's diary. Everything here is a pure function
// of the entries and the reference "today".
package stats
