package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return &DB{
		DB:                 conn,
		driver:             config.DriverPostgres,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             logger.Nop(),
	}, mock
}

func newTestSQLStore(t *testing.T) (*sqlEntryStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	s := NewSQLEntryStore(db, &sequenceIDs{}, logger.Nop()).(*sqlEntryStore)
	s.now = func() time.Time { return time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC) }
	return s, mock
}

func userContext(userID int64) context.Context {
	return utils.WithUserID(context.Background(), userID)
}

var created = time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)

// ── GetEntryByDate ────────────────────────────────────────────────────────────

func TestSQLEntryStore_GetEntryByDate_Found(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT id, user_id, date, payload, created_at FROM entries WHERE`).
		WithArgs("2024-01-15", int64(7)).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow("e1", int64(7), "2024-01-15", []byte(`{"id":"stale","thoughts":"hello","exercises":null}`), created))

	entry, err := s.GetEntryByDate(userContext(7), "2024-01-15")
	require.NoError(t, err)

	assert.Equal(t, "e1", entry.ID, "id column wins over payload")
	assert.Equal(t, "2024-01-15", entry.Date)
	assert.Equal(t, "hello", entry.Thoughts)
	assert.Equal(t, int64(7), entry.UserID)
	assert.NotNil(t, entry.Exercises)
	assert.Equal(t, created, entry.CreatedAt)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEntryStore_GetEntryByDate_Absent(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT id, user_id, date, payload, created_at FROM entries WHERE`).
		WillReturnError(sql.ErrNoRows)

	entry, err := s.GetEntryByDate(userContext(7), "2024-01-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", entry.Date)
	assert.Equal(t, "id-1", entry.ID)
	assert.Equal(t, int64(7), entry.UserID)
	assert.False(t, entry.HasContent())
}

func TestSQLEntryStore_GetEntryByDate_Unauthenticated(t *testing.T) {
	s, _ := newTestSQLStore(t)

	_, err := s.GetEntryByDate(context.Background(), "2024-01-15")
	assert.ErrorIs(t, err, ErrUnauthenticated)
}

func TestSQLEntryStore_GetEntryByDate_UndecodablePayload(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT id, user_id, date, payload, created_at FROM entries WHERE`).
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow("e1", int64(7), "2024-01-15", []byte(`{"todos":42}`), created))

	_, err := s.GetEntryByDate(userContext(7), "2024-01-15")
	assert.ErrorIs(t, err, ErrDecodingEntry)
}

// ── ranges ────────────────────────────────────────────────────────────────────

func TestSQLEntryStore_GetEntriesByDateRange(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT id, user_id, date, payload, created_at FROM entries WHERE user_id = \$1 AND \(date >= \$2 AND date <= \$3\) ORDER BY date ASC`).
		WithArgs(int64(7), "2024-01-01", "2024-01-31").
		WillReturnRows(sqlmock.NewRows(entryColumns).
			AddRow("a", int64(7), "2024-01-02", []byte(`{"thoughts":"a"}`), created).
			AddRow("b", int64(7), "2024-01-20", []byte(`{"thoughts":"b"}`), created))

	entries, err := s.GetEntriesByDateRange(userContext(7), "2024-01-01", "2024-01-31")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "2024-01-02", entries[0].Date)
	assert.Equal(t, "2024-01-20", entries[1].Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEntryStore_GetAllEntries_QueryError(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT id, user_id, date, payload, created_at FROM entries WHERE user_id = \$1 ORDER BY date ASC`).
		WillReturnError(errors.New("connection reset"))

	_, err := s.GetAllEntries(userContext(7))
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLEntryStore_GetAllEntries_Empty(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`SELECT .* FROM entries`).WillReturnRows(sqlmock.NewRows(entryColumns))

	entries, err := s.GetAllEntries(userContext(7))
	require.NoError(t, err)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

// ── SaveEntry ─────────────────────────────────────────────────────────────────

func TestSQLEntryStore_SaveEntry_Upsert(t *testing.T) {
	s, mock := newTestSQLStore(t)

	mock.ExpectQuery(`INSERT INTO entries \(id,user_id,date,payload,created_at,updated_at\) VALUES \(\$1,\$2,\$3,\$4,\$5,\$6\) ON CONFLICT \(user_id, date\) DO UPDATE`).
		WithArgs("id-1", int64(7), "2024-01-15", sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("existing", created))

	saved, err := s.SaveEntry(userContext(7), models.DailyEntry{Date: "2024-01-15", Thoughts: "x"})
	require.NoError(t, err)

	assert.Equal(t, "existing", saved.ID, "conflicting row keeps its id")
	assert.Equal(t, created, saved.CreatedAt)
	assert.Equal(t, int64(7), saved.UserID)
	assert.NotNil(t, saved.Todos)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLEntryStore_SaveEntry_Errors(t *testing.T) {
	s, mock := newTestSQLStore(t)

	_, err := s.SaveEntry(context.Background(), models.DailyEntry{Date: "2024-01-15"})
	assert.ErrorIs(t, err, ErrUnauthenticated)

	mock.ExpectQuery(`INSERT INTO entries`).WillReturnError(errors.New("disk full"))
	_, err = s.SaveEntry(userContext(7), models.DailyEntry{Date: "2024-01-15"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}
