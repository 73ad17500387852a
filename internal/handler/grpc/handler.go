// Package grpc exposes the diary server over gRPC. Only the standard
// grpc.health.v1 service is served.
package grpc

import (
	"context"

	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health service name reported for the diary API.
const ServiceName = "diary.v1.Diary"

// Handler is the root gRPC transport handler.
//
// It owns the health server whose status follows the server lifecycle:
// SERVING once registered and NOT_SERVING after Shutdown.
type Handler struct {
	services *service.Services
	health   *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] over the service container.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")
	return &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
}

// Register installs the health service on server and marks the diary
// service as serving.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
	h.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	h.health.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_SERVING)
	h.logger.Info().Str("service", ServiceName).Msg("gRPC health service registered")
}

// Shutdown reports NOT_SERVING for every service.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

// Check answers a health probe without a network round trip. It is used by
// tests and by the server's readiness log.
func (h *Handler) Check(ctx context.Context, service string) (healthpb.HealthCheckResponse_ServingStatus, error) {
	resp, err := h.health.Check(ctx, &healthpb.HealthCheckRequest{Service: service})
	if err != nil {
		return healthpb.HealthCheckResponse_UNKNOWN, err
	}
	return resp.GetStatus(), nil
}
