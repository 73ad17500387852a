package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/models"
)

type appInfoService struct {
	version string

	logger *logger.Logger
}

// NewAppInfoService reports the linker-injected build version when present,
// falling back to the configured APP_VERSION.
func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	version := build.BuildVersion()
	if version == "" {
		version = cfg.Version
	}
	if version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	if commit := build.BuildCommit(); commit != "" {
		version = fmt.Sprintf("%s (%s)", version, commit)
	}

	logger.Debug().Str("version", version).Msg("app info service created")
	return &appInfoService{version: version, logger: logger}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.version
}
