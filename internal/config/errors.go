package config

import "errors"

// Validation errors returned when a configuration group is incomplete or
// inconsistent.
var (
	// ErrInvalidStorageConfigs indicates an unknown database driver.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings under the remote
	// backend or an unknown time zone.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidCacheConfigs indicates non-positive windows, or a retention
	// window shorter than the freshness window.
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidAdapterConfigs indicates a missing server URL or timeout.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
