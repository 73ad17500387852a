// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"
	"time"
)

// StructuredConfig is the top-level configuration container of the diary
// server.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters, request signing key, version and time zone.
	App App `envPrefix:"APP_"`

	// Storage selects and configures the entry store backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds HTTP and gRPC listener settings.
	Server Server `envPrefix:"SERVER_"`

	// Cache holds the per-date entry cache windows.
	Cache Cache `envPrefix:"CACHE_"`

	// Adapter holds the CLI client connection settings.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey signs and verifies JWT tokens. Required by the remote
	// backend. Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the "iss" claim of issued tokens. Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// TokenDuration is the lifetime of issued tokens. Env: APP_TOKEN_DURATION
	TokenDuration time.Duration `env:"TOKEN_DURATION"`

	// HashKey enables the HashSHA256 body signature on entry saves when set.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`

	// Version is exposed via /api/version/. Env: APP_VERSION
	Version string `env:"VERSION"`

	// TimeZone is the IANA zone that defines "today". Empty means the
	// process local zone. Env: APP_TIME_ZONE
	TimeZone string `env:"TIME_ZONE"`
}

// Storage groups the configuration of both entry store backends. A non-empty
// DB.DSN selects the SQL backend; otherwise the local store is used.
type Storage struct {
	DB    DB    `envPrefix:"DB_"`
	Local Local `envPrefix:"LOCAL_"`
}

// DB holds connection settings of the SQL backend.
type DB struct {
	// DSN is a PostgreSQL URL or a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// Driver overrides the driver guessed from DSN ("pgx" or "sqlite3").
	// Env: STORAGE_DB_DRIVER
	Driver string `env:"DRIVER"`
}

// Driver names accepted by STORAGE_DB_DRIVER.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DriverName returns the database/sql driver for the DSN: the explicit
// Driver when set, pgx for postgres:// URLs and sqlite3 otherwise.
func (db DB) DriverName() string {
	if db.Driver != "" {
		return db.Driver
	}
	if strings.HasPrefix(db.DSN, "postgres://") || strings.HasPrefix(db.DSN, "postgresql://") {
		return DriverPostgres
	}
	return DriverSQLite
}

// IsRemote reports whether the SQL (multi-user) backend is configured.
func (s Storage) IsRemote() bool {
	return s.DB.DSN != ""
}

// Local holds settings of the single-user on-disk store.
type Local struct {
	// Dir is the diskv base directory. Env: STORAGE_LOCAL_DIR
	Dir string `env:"DIR"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the HTTP listen address. Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the listen address of the gRPC health service.
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Cache holds the freshness and retention windows of the entry cache.
type Cache struct {
	// StaleTime is how long a cached entry is served without a background
	// refresh. Env: CACHE_STALE_TIME
	StaleTime time.Duration `env:"STALE_TIME"`

	// GCTime is how long an unused entry stays cached. Env: CACHE_GC_TIME
	GCTime time.Duration `env:"GC_TIME"`

	// JanitorInterval is the eviction sweep period. Env: CACHE_JANITOR_INTERVAL
	JanitorInterval time.Duration `env:"JANITOR_INTERVAL"`
}

// Adapter holds the settings the CLI uses to reach the server.
type Adapter struct {
	// BaseURL of the diary server. Env: ADAPTER_ADDRESS
	BaseURL string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// SessionFile stores the bearer token between CLI invocations.
	// Env: ADAPTER_SESSION_FILE
	SessionFile string `env:"SESSION_FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from environment variables, command-line flags and the JSON file.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(commandLineArgs()).
		withJSON().
		withDefaults().
		build()
}
