package config

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON(t *testing.T) {
	path := writeTempFile(t, `{
		"app": {"token_sign_key": "k", "token_duration": "12h", "time_zone": "UTC"},
		"storage": {"db": {"dsn": "file:diary.db", "driver": "sqlite3"}},
		"server": {"http_address": "0.0.0.0:8080", "request_timeout": 5000000000},
		"cache": {"stale_time": "1m", "gc_time": "10m"},
		"adapter": {"address": "http://localhost:8080", "session_file": "/tmp/s"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "k", cfg.App.TokenSignKey)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, time.Minute, cfg.Cache.StaleTime)
	assert.Equal(t, 10*time.Minute, cfg.Cache.GCTime)
	assert.Zero(t, cfg.Cache.JanitorInterval)
	assert.Equal(t, "/tmp/s", cfg.Adapter.SessionFile)
}

func TestParseJSON_Malformed(t *testing.T) {
	_, err := parseJSON(writeTempFile(t, `{"cache": {"gc_time": true}}`))
	assert.Error(t, err)

	_, err = parseJSON(writeTempFile(t, `not json`))
	assert.Error(t, err)
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(90 * time.Second))
	require.NoError(t, err)
	assert.Equal(t, `"1m30s"`, string(data))
}
