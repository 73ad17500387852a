package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9090", want: "127.0.0.1:9090"},
		{name: "all interfaces", input: ":8080", want: ":8080"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:http", wantErr: true},
		{name: "zero port", input: "localhost:0", wantErr: true},
		{name: "hostname", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var addr NetAddress
	assert.Equal(t, "", addr.String())
}

func TestParseFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:8081",
		"-grpc-address", "127.0.0.1:9091",
		"-d", "postgres://diary@localhost/diary",
		"-token-sign-key", "s",
		"-token-duration", "2h",
		"-tz", "UTC",
		"-gc-time", "1h",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "127.0.0.1:9091", cfg.Server.GRPCAddress)
	assert.Equal(t, "postgres://diary@localhost/diary", cfg.Storage.DB.DSN)
	assert.Equal(t, "s", cfg.App.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, "UTC", cfg.App.TimeZone)
	assert.Equal(t, time.Hour, cfg.Cache.GCTime)
}

func TestParseFlags_Invalid(t *testing.T) {
	_, err := parseFlags([]string{"-a", "nope"})
	assert.Error(t, err)

	_, err = parseFlags([]string{"-unknown"})
	assert.Error(t, err)
}
