package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeEntry(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		payload := []byte(`{
			"id": "e1",
			"date": "2024-01-15",
			"thoughts": "quiet day",
			"diet": {"breakfast": "oats", "lunch": "", "dinner": "", "snacks": ""},
			"exercises": [{"id": "x1", "name": "Run", "type": "distance", "value": 5, "unit": "km"}],
			"todos": [{"id": "t1", "text": "write", "completed": true, "createdAt": "2024-01-15T08:00:00Z", "completedAt": "2024-01-15T09:00:00Z"}],
			"discoveries": [{"id": "d1", "content": "sleep helps", "category": "learning", "createdAt": "2024-01-15T10:00:00Z"}],
			"isFavorite": true,
			"created_at": "2024-01-15T07:00:00Z"
		}`)

		entry, err := DecodeEntry(payload)
		require.NoError(t, err)
		assert.Equal(t, "2024-01-15", entry.Date)
		assert.Equal(t, "oats", entry.Diet.Breakfast)
		require.Len(t, entry.Exercises, 1)
		assert.Equal(t, ExerciseDistance, entry.Exercises[0].Type)
		require.Len(t, entry.Todos, 1)
		require.NotNil(t, entry.Todos[0].CompletedAt)
		assert.True(t, entry.IsFavorite)
	})

	t.Run("null collections are accepted", func(t *testing.T) {
		entry, err := DecodeEntry([]byte(`{"date":"2024-01-15","exercises":null,"todos":null}`))
		require.NoError(t, err)
		assert.Nil(t, entry.Exercises)
	})

	t.Run("non-array collection", func(t *testing.T) {
		_, err := DecodeEntry([]byte(`{"date":"2024-01-15","todos":{"a":1}}`))
		assert.Error(t, err)
	})

	t.Run("unknown exercise type", func(t *testing.T) {
		_, err := DecodeEntry([]byte(`{"exercises":[{"id":"x","type":"swim","value":1}]}`))
		assert.ErrorIs(t, err, ErrUnknownExerciseType)
	})

	t.Run("unknown discovery category", func(t *testing.T) {
		_, err := DecodeEntry([]byte(`{"discoveries":[{"id":"d","content":"c","category":"dream"}]}`))
		assert.ErrorIs(t, err, ErrUnknownDiscoveryCategory)
	})
}

func TestDecodeEntries(t *testing.T) {
	blob := []byte(`{
		"2024-01-01": {"date": "2024-01-01", "thoughts": "a"},
		"2024-01-02": {"date": "2024-01-02", "todos": "broken"}
	}`)

	var failed []string
	entries, err := DecodeEntries(blob, func(date string, _ error) {
		failed = append(failed, date)
	})
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, "a", entries["2024-01-01"].Thoughts)
	assert.Equal(t, []string{"2024-01-02"}, failed)

	_, err = DecodeEntries([]byte(`[1,2]`), nil)
	assert.Error(t, err)
}
