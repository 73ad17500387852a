package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
)

// Storages groups the stores injected into the service layer.
//
// UserRepository is nil under the local backend: it has a single implicit
// user and no accounts.
type Storages struct {
	EntryStore       EntryStore
	PreferencesStore PreferencesStore
	UserRepository   UserRepository

	closer func() error
}

// IsRemote reports whether the stores are backed by SQL with accounts.
func (s *Storages) IsRemote() bool {
	return s.UserRepository != nil
}

// Close releases the database connection, if any.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer()
}

// NewStorages selects the backend from cfg: a configured DSN opens the SQL
// backend (and runs migrations), otherwise the local diskv store is used.
func NewStorages(ctx context.Context, cfg config.Storage, ids utils.IDGenerator, log *logger.Logger) (*Storages, error) {
	if !cfg.IsRemote() {
		log.Info().Str("dir", cfg.Local.Dir).Msg("using local entry storage")
		kv := NewDiskv(cfg.Local.Dir)
		return &Storages{
			EntryStore:       NewLocalEntryStore(kv, ids, log),
			PreferencesStore: NewLocalPreferencesStore(kv),
		}, nil
	}

	db, err := connect(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	log.Info().Str("driver", db.driver).Msg("using sql entry storage")
	return NewSQLStorages(db, ids, log), nil
}

// NewSQLStorages wires the SQL stores over an open connection.
func NewSQLStorages(db *DB, ids utils.IDGenerator, log *logger.Logger) *Storages {
	return &Storages{
		EntryStore:       NewSQLEntryStore(db, ids, log),
		PreferencesStore: NewSQLPreferencesStore(db),
		UserRepository:   NewUserRepository(db, log),
		closer:           db.Close,
	}
}

func connect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.DriverName() {
	case config.DriverPostgres:
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
		return db, nil
	case config.DriverSQLite:
		db, err := NewConnectSQLite(ctx, cfg, log)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedDriver, cfg.DriverName())
	}
}
