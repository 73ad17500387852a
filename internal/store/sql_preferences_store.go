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

const preferencesTable = "statistics_preferences"

type sqlPreferencesStore struct {
	db  *DB
	now func() time.Time
}

// NewSQLPreferencesStore constructs the per-user [PreferencesStore].
func NewSQLPreferencesStore(db *DB) PreferencesStore {
	return &sqlPreferencesStore{db: db, now: time.Now}
}

func (s *sqlPreferencesStore) GetPreferences(ctx context.Context) (models.StatisticsPreferences, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return models.StatisticsPreferences{}, ErrUnauthenticated
	}

	query, args, err := s.db.builder().
		Select("payload").
		From(preferencesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return models.StatisticsPreferences{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var payload []byte
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultStatisticsPreferences(), nil
	}
	if err != nil {
		return models.StatisticsPreferences{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	prefs := models.DefaultStatisticsPreferences()
	if err := json.Unmarshal(payload, &prefs); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "*sqlPreferencesStore.GetPreferences").Msg("stored preferences are unreadable, using defaults")
		return models.DefaultStatisticsPreferences(), nil
	}
	return prefs, nil
}

func (s *sqlPreferencesStore) SavePreferences(ctx context.Context, prefs models.StatisticsPreferences) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	payload, err := json.Marshal(prefs)
	if err != nil {
		return fmt.Errorf("error encoding preferences: %w", err)
	}

	query, args, err := s.db.builder().
		Insert(preferencesTable).
		Columns("user_id", "payload", "updated_at").
		Values(userID, string(payload), s.now().UTC()).
		Suffix("ON CONFLICT (user_id) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (s *sqlPreferencesStore) ResetPreferences(ctx context.Context) error {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		return ErrUnauthenticated
	}

	query, args, err := s.db.builder().
		Delete(preferencesTable).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
