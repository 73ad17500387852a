package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
)

const entriesTable = "entries"

var entryColumns = []string{"id", "user_id", "date", "payload", "created_at"}

// sqlEntryStore is the multi-user [EntryStore] keeping one row per
// (user_id, date) with the entry JSON in the payload column.
//
// The id and created_at columns are authoritative over the payload copies.
type sqlEntryStore struct {
	db     *DB
	ids    utils.IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewSQLEntryStore constructs the SQL [EntryStore].
func NewSQLEntryStore(db *DB, ids utils.IDGenerator, logger *logger.Logger) EntryStore {
	logger.Debug().Msg("creating sql entry store")
	return &sqlEntryStore{
		db:     db,
		ids:    ids,
		now:    time.Now,
		logger: logger,
	}
}

func (s *sqlEntryStore) GetEntryByDate(ctx context.Context, date string) (models.DailyEntry, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.DailyEntry{}, ErrUnauthenticated
	}

	query, args, err := s.db.builder().
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"user_id": userID, "date": date}).
		ToSql()
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	lookup, err := s.scanLookup(s.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*sqlEntryStore.GetEntryByDate").Str("date", date).Msg("error reading entry")
		return models.DailyEntry{}, err
	}

	entry := lookup.Resolve(date, s.ids.Generate(), s.now())
	entry.UserID = userID
	return entry, nil
}

func (s *sqlEntryStore) GetEntriesByDateRange(ctx context.Context, start, end string) ([]models.DailyEntry, error) {
	return s.list(ctx, sq.And{sq.GtOrEq{"date": start}, sq.LtOrEq{"date": end}})
}

func (s *sqlEntryStore) GetAllEntries(ctx context.Context) ([]models.DailyEntry, error) {
	return s.list(ctx, nil)
}

func (s *sqlEntryStore) list(ctx context.Context, filter sq.Sqlizer) ([]models.DailyEntry, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return nil, ErrUnauthenticated
	}

	builder := s.db.builder().
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("date ASC")
	if filter != nil {
		builder = builder.Where(filter)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sqlEntryStore.list").Bool("retryable", s.db.errorClassificator.Classify(err) == Retryable).Msg("error selecting entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.DailyEntry, 0)
	for rows.Next() {
		entry, err := s.scanEntry(rows)
		if err != nil {
			log.Err(err).Str("func", "*sqlEntryStore.list").Msg("error scanning entry")
			return nil, err
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (s *sqlEntryStore) SaveEntry(ctx context.Context, entry models.DailyEntry) (models.DailyEntry, error) {
	log := logger.FromContext(ctx)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.DailyEntry{}, ErrUnauthenticated
	}

	now := s.now().UTC()
	saved := NormalizeEntry(entry, entry.Date, s.ids.Generate(), now)
	saved.UserID = userID

	payload, err := json.Marshal(saved)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %w", ErrEncodingEntry, err)
	}

	query, args, err := s.db.builder().
		Insert(entriesTable).
		Columns("id", "user_id", "date", "payload", "created_at", "updated_at").
		Values(saved.ID, userID, saved.Date, string(payload), saved.CreatedAt, now).
		Suffix("ON CONFLICT (user_id, date) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at RETURNING id, created_at").
		ToSql()
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var createdAt time.Time
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&saved.ID, &createdAt); err != nil {
		log.Err(err).Str("func", "*sqlEntryStore.SaveEntry").Str("date", saved.Date).
			Bool("retryable", s.db.errorClassificator.Classify(err) == Retryable).Msg("error upserting entry")
		return models.DailyEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	saved.CreatedAt = createdAt.UTC()

	return saved, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func (s *sqlEntryStore) scanLookup(row rowScanner) (Lookup, error) {
	entry, err := s.scanEntry(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Absent(), nil
	}
	if err != nil {
		return Lookup{}, err
	}
	return Found(entry), nil
}

func (s *sqlEntryStore) scanEntry(row rowScanner) (models.DailyEntry, error) {
	var (
		id, date  string
		userID    int64
		payload   []byte
		createdAt time.Time
	)
	if err := row.Scan(&id, &userID, &date, &payload, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.DailyEntry{}, err
		}
		return models.DailyEntry{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	entry, err := models.DecodeEntry(payload)
	if err != nil {
		return models.DailyEntry{}, fmt.Errorf("%w: date %s: %w", ErrDecodingEntry, date, err)
	}

	entry.ID = id
	entry.UserID = userID
	entry.CreatedAt = createdAt.UTC()
	return NormalizeEntry(entry, date, id, createdAt), nil
}
