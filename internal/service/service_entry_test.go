package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/mock"
	"github.com/MKhiriev/go-daily-diary/internal/validators"
	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestEntryService(t *testing.T) (EntryService, *mock.MockEntryStore, *mock.MockPrefetcher) {
	ctrl := gomock.NewController(t)
	entryStore := mock.NewMockEntryStore(ctrl)
	prefetcher := mock.NewMockPrefetcher(ctrl)
	svc := NewEntryService(entryStore, prefetcher, &sequenceIDs{}, fixedClock(), logger.Nop())
	return svc, entryStore, prefetcher
}

// ─────────────────────────────────────────────
// GetEntry
// ─────────────────────────────────────────────

func TestEntryService_GetEntry_PrefetchesNeighbours(t *testing.T) {
	svc, entryStore, prefetcher := newTestEntryService(t)
	ctx := context.Background()
	want := models.DailyEntry{ID: "a", Date: "2024-01-10", Thoughts: "hi"}

	gomock.InOrder(
		entryStore.EXPECT().GetEntryByDate(ctx, "2024-01-10").Return(want, nil),
		prefetcher.EXPECT().Prefetch(ctx, "2024-01-10"),
	)

	got, err := svc.GetEntry(ctx, "2024-01-10")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestEntryService_GetEntry_StoreError(t *testing.T) {
	svc, entryStore, _ := newTestEntryService(t)
	storeErr := errors.New("connection reset")

	entryStore.EXPECT().GetEntryByDate(gomock.Any(), "2024-01-10").Return(models.DailyEntry{}, storeErr)

	_, err := svc.GetEntry(context.Background(), "2024-01-10")
	assert.ErrorIs(t, err, storeErr)
}

func TestEntryService_GetEntry_NilPrefetcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	entryStore := mock.NewMockEntryStore(ctrl)
	svc := NewEntryService(entryStore, nil, &sequenceIDs{}, fixedClock(), logger.Nop())

	entryStore.EXPECT().GetEntryByDate(gomock.Any(), "2024-01-10").Return(models.DailyEntry{Date: "2024-01-10"}, nil)

	_, err := svc.GetEntry(context.Background(), "2024-01-10")
	require.NoError(t, err)
}

// ─────────────────────────────────────────────
// SaveEntry
// ─────────────────────────────────────────────

func TestEntryService_SaveEntry_Prepares(t *testing.T) {
	svc, entryStore, _ := newTestEntryService(t)
	earlier := fixedNow.Add(-time.Hour)

	in := models.DailyEntry{
		Date:     "1999-01-01",
		Thoughts: "  kept as typed  ",
		Exercises: []models.ExerciseItem{
			{Name: "  squats ", Type: models.ExerciseReps, Value: 3},
			{ID: "run", Name: "run", Type: models.ExerciseDistance, Value: 5, Unit: " mi "},
		},
		Todos: []models.TodoItem{
			{ID: "t1", Text: " done now ", Completed: true},
			{ID: "t2", Text: "reopened", Completed: false, CompletedAt: &earlier},
			{ID: "t3", Text: "done before", Completed: true, CreatedAt: earlier, CompletedAt: &earlier},
		},
		Discoveries: []models.DiscoveryItem{{Content: " an idea ", Category: models.DiscoveryIdea}},
	}

	entryStore.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.DailyEntry) (models.DailyEntry, error) { return e, nil },
	)

	got, err := svc.SaveEntry(context.Background(), "2024-01-10", in)
	require.NoError(t, err)

	assert.Equal(t, "2024-01-10", got.Date)
	assert.Equal(t, "  kept as typed  ", got.Thoughts)

	require.Len(t, got.Exercises, 2)
	assert.Equal(t, "id-1", got.Exercises[0].ID)
	assert.Equal(t, "squats", got.Exercises[0].Name)
	assert.Equal(t, "sets", got.Exercises[0].Unit)
	assert.Equal(t, "mi", got.Exercises[1].Unit)

	require.Len(t, got.Todos, 3)
	assert.Equal(t, "done now", got.Todos[0].Text)
	require.NotNil(t, got.Todos[0].CompletedAt)
	assert.True(t, got.Todos[0].CompletedAt.Equal(fixedNow))
	assert.True(t, got.Todos[0].CreatedAt.Equal(fixedNow))
	assert.Nil(t, got.Todos[1].CompletedAt)
	assert.True(t, got.Todos[2].CompletedAt.Equal(earlier))
	assert.True(t, got.Todos[2].CreatedAt.Equal(earlier))

	require.Len(t, got.Discoveries, 1)
	assert.Equal(t, "an idea", got.Discoveries[0].Content)
	assert.NotEmpty(t, got.Discoveries[0].ID)
}

func TestEntryService_SaveEntry_DoesNotMutateInput(t *testing.T) {
	svc, entryStore, _ := newTestEntryService(t)
	in := models.DailyEntry{Todos: []models.TodoItem{{Text: " x "}}}

	entryStore.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, e models.DailyEntry) (models.DailyEntry, error) { return e, nil },
	)

	_, err := svc.SaveEntry(context.Background(), "2024-01-10", in)
	require.NoError(t, err)
	assert.Equal(t, " x ", in.Todos[0].Text)
	assert.Empty(t, in.Todos[0].ID)
}

func TestEntryService_SaveEntry_StoreError(t *testing.T) {
	svc, entryStore, _ := newTestEntryService(t)
	storeErr := errors.New("disk full")

	entryStore.EXPECT().SaveEntry(gomock.Any(), gomock.Any()).Return(models.DailyEntry{}, storeErr)

	_, err := svc.SaveEntry(context.Background(), "2024-01-10", models.DailyEntry{})
	assert.ErrorIs(t, err, storeErr)
}

// ─────────────────────────────────────────────
// ListEntries / ActiveDate
// ─────────────────────────────────────────────

func TestEntryService_ListEntries(t *testing.T) {
	svc, entryStore, _ := newTestEntryService(t)
	ctx := context.Background()
	all := []models.DailyEntry{{Date: "2024-01-01"}, {Date: "2024-01-02"}}

	entryStore.EXPECT().GetAllEntries(ctx).Return(all, nil)
	got, err := svc.ListEntries(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, all, got)

	entryStore.EXPECT().GetEntriesByDateRange(ctx, "2024-01-10", "2024-01-10").Return(all[:1], nil)
	got, err = svc.ListEntries(ctx, "2024-01-10", "2024-01-10")
	require.NoError(t, err)
	assert.Len(t, got, 1)

	_, err = svc.ListEntries(ctx, "2024-01-10", "")
	assert.ErrorIs(t, err, ErrIncompleteRange)
}

func TestEntryService_ActiveDate(t *testing.T) {
	svc, _, _ := newTestEntryService(t)

	date, ok := svc.ActiveDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, "2024-02-29", date)

	for _, raw := range []string{"", "2023-02-29", "yesterday", "2024-1-5"} {
		date, ok := svc.ActiveDate(raw)
		assert.False(t, ok, raw)
		assert.Equal(t, "2024-01-10", date, raw)
	}
}

// ─────────────────────────────────────────────
// EntryValidationService
// ─────────────────────────────────────────────

func TestEntryValidationService(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockEntryService(ctrl)
	svc := NewEntryValidationService(validators.NewDiaryValidator()).Wrap(inner)
	ctx := context.Background()

	_, err := svc.GetEntry(ctx, "2024-13-01")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrInvalidDate)

	bad := models.DailyEntry{Exercises: []models.ExerciseItem{{Type: "yoga"}}}
	_, err = svc.SaveEntry(ctx, "2024-01-10", bad)
	assert.ErrorIs(t, err, validators.ErrInvalidExerciseType)

	_, err = svc.ListEntries(ctx, "2024-01-01", "nope")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	inner.EXPECT().GetEntry(ctx, "2024-01-10").Return(models.DailyEntry{Date: "2024-01-10"}, nil)
	_, err = svc.GetEntry(ctx, "2024-01-10")
	require.NoError(t, err)

	good := models.DailyEntry{Todos: []models.TodoItem{{Text: "x"}}}
	inner.EXPECT().SaveEntry(ctx, "2024-01-10", gomock.Any()).Return(models.DailyEntry{}, nil)
	_, err = svc.SaveEntry(ctx, "2024-01-10", good)
	require.NoError(t, err)

	inner.EXPECT().ListEntries(ctx, "", "").Return(nil, nil)
	_, err = svc.ListEntries(ctx, "", "")
	require.NoError(t, err)

	inner.EXPECT().ActiveDate("x").Return("2024-01-10", false)
	date, ok := svc.ActiveDate("x")
	assert.False(t, ok)
	assert.Equal(t, "2024-01-10", date)
}
