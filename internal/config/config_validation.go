// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// validate checks the merged server configuration.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.IsRemote() {
		switch cfg.Storage.DB.DriverName() {
		case DriverPostgres, DriverSQLite:
		default:
			return fmt.Errorf("%w: unknown driver %q", ErrInvalidStorageConfigs, cfg.Storage.DB.Driver)
		}
		if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
			return fmt.Errorf("%w: remote storage requires token sign key, issuer and duration", ErrInvalidAppConfigs)
		}
	}

	if cfg.App.TimeZone != "" {
		if _, err := time.LoadLocation(cfg.App.TimeZone); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
		}
	}

	if cfg.Cache.StaleTime < 0 || cfg.Cache.GCTime < cfg.Cache.StaleTime || cfg.Cache.JanitorInterval < 0 {
		return ErrInvalidCacheConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.BaseURL == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
