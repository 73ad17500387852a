package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	// ErrUnknownExerciseType is returned when a payload carries an exercise
	// type outside reps/duration/distance.
	ErrUnknownExerciseType = errors.New("unknown exercise type")
	// ErrUnknownDiscoveryCategory is returned when a payload carries a
	// discovery category outside idea/learning/inspiration/other.
	ErrUnknownDiscoveryCategory = errors.New("unknown discovery category")
)

// DecodeEntry decodes a raw entry payload into a [DailyEntry].
//
// Decoding is strict: collections must be JSON arrays (or null) and enum
// tags must belong to their closed sets. The resulting entry is not
// normalized; callers fill ids, dates and empty collections themselves.
func DecodeEntry(payload []byte) (DailyEntry, error) {
	var entry DailyEntry
	if err := json.Unmarshal(payload, &entry); err != nil {
		return DailyEntry{}, fmt.Errorf("error decoding entry payload: %w", err)
	}

	for i, exercise := range entry.Exercises {
		if !exercise.Type.IsValid() {
			return DailyEntry{}, fmt.Errorf("exercise #%d has type %q: %w", i, exercise.Type, ErrUnknownExerciseType)
		}
	}
	for i, discovery := range entry.Discoveries {
		if !discovery.Category.IsValid() {
			return DailyEntry{}, fmt.Errorf("discovery #%d has category %q: %w", i, discovery.Category, ErrUnknownDiscoveryCategory)
		}
	}

	return entry, nil
}

// DecodeEntries decodes a JSON object mapping dates to entry payloads, the
// layout used by the local single-key store.
//
// Undecodable members are reported through onError and skipped; the
// returned map holds only the members that decoded cleanly.
func DecodeEntries(blob []byte, onError func(date string, err error)) (map[string]DailyEntry, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(blob, &raw); err != nil {
		return nil, fmt.Errorf("error decoding entries mapping: %w", err)
	}

	entries := make(map[string]DailyEntry, len(raw))
	for date, payload := range raw {
		entry, err := DecodeEntry(payload)
		if err != nil {
			if onError != nil {
				onError(date, err)
			}
			continue
		}
		entries[date] = entry
	}

	return entries, nil
}
