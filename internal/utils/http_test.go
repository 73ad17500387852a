package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, map[string]int{"totalEntries": 3}, http.StatusCreated)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"totalEntries":3}`, rec.Body.String())
}

func TestWriteJSON_MarshalError(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	assert.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWriteAttachment(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteAttachment(rec, "diary-export-2024-01-15.md", "text/markdown;charset=utf-8", "# My Diary Export")
	require.NoError(t, err)

	assert.Equal(t, "text/markdown;charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename=diary-export-2024-01-15.md`, rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "# My Diary Export", rec.Body.String())
}
