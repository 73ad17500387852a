package http

import (
	"time"

	"github.com/MKhiriev/go-daily-diary/internal/config"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/service"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
)

// Handler serves the diary REST API over the service layer.
type Handler struct {
	services *service.Services

	// signer verifies HashSHA256 signatures of saved entries. nil disables
	// the check.
	signer *utils.Signer

	requestTimeout time.Duration

	logger *logger.Logger
}

// NewHandler builds a Handler. Request signing is enabled when cfg.App.HashKey
// is set.
func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services: services,
		logger:   logger,
	}
	if cfg != nil {
		if cfg.App.HashKey != "" {
			h.signer = utils.NewSigner(cfg.App.HashKey)
		}
		h.requestTimeout = cfg.Server.RequestTimeout
	}

	logger.Info().Bool("signing", h.signer != nil).Bool("auth", services.AuthService != nil).Msg("http handler created")
	return h
}
