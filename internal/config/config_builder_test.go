package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "127.0.0.1:1", GRPCAddress: "127.0.0.1:2"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:2", cfg.Server.GRPCAddress)
}

func TestBuild_DefaultsFillGaps(t *testing.T) {
	cfg, err := newConfigBuilder().withFlags([]string{"-stale-time", "1m"}).withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, time.Minute, cfg.Cache.StaleTime)
	assert.Equal(t, 30*time.Minute, cfg.Cache.GCTime)
	assert.Equal(t, "./data", cfg.Storage.Local.Dir)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.False(t, cfg.Storage.IsRemote())
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_LoadsPathFromFlags(t *testing.T) {
	path := writeTempFile(t, `{"storage":{"local":{"dir":"/tmp/diary"}},"cache":{"gc_time":"45m"}}`)

	cfg, err := newConfigBuilder().withFlags([]string{"-c", path}).withJSON().withDefaults().build()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/diary", cfg.Storage.Local.Dir)
	assert.Equal(t, 45*time.Minute, cfg.Cache.GCTime)
}

func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder().withFlags([]string{"-config", "/does/not/exist.json"}).withJSON()
	_, err := b.build()
	assert.Error(t, err)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder().withJSON()
	assert.Empty(t, b.configs)
	assert.NoError(t, b.err)
}

// ── validate ──────────────────────────────────────────────────────────────────

func TestValidate(t *testing.T) {
	remote := func() *StructuredConfig {
		cfg := defaultConfig()
		cfg.Storage.DB.DSN = "postgres://diary@localhost/diary"
		cfg.App.TokenSignKey = "secret"
		return cfg
	}

	t.Run("defaults are valid", func(t *testing.T) {
		assert.NoError(t, defaultConfig().validate())
	})

	t.Run("remote with token settings", func(t *testing.T) {
		assert.NoError(t, remote().validate())
	})

	t.Run("remote without sign key", func(t *testing.T) {
		cfg := remote()
		cfg.App.TokenSignKey = ""
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})

	t.Run("unknown driver", func(t *testing.T) {
		cfg := remote()
		cfg.Storage.DB.Driver = "mysql"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)
	})

	t.Run("unknown time zone", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.App.TimeZone = "Nowhere/City"
		assert.ErrorIs(t, cfg.validate(), ErrInvalidAppConfigs)
	})

	t.Run("gc shorter than stale", func(t *testing.T) {
		cfg := defaultConfig()
		cfg.Cache.GCTime = time.Minute
		assert.ErrorIs(t, cfg.validate(), ErrInvalidCacheConfigs)
	})
}

func TestDB_DriverName(t *testing.T) {
	assert.Equal(t, DriverPostgres, DB{DSN: "postgres://u@h/db"}.DriverName())
	assert.Equal(t, DriverPostgres, DB{DSN: "postgresql://u@h/db"}.DriverName())
	assert.Equal(t, DriverSQLite, DB{DSN: "file:diary.db"}.DriverName())
	assert.Equal(t, DriverSQLite, DB{DSN: "postgres://u@h/db", Driver: DriverSQLite}.DriverName())
}
