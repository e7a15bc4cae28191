// Package grpc exposes the standard gRPC health service of the list server.
//
// The serving status follows the database: it is SERVING while the store
// answers pings and NOT_SERVING otherwise.
package grpc

import (
	"context"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the health-checked service name besides the overall "".
const ServiceName = "eatthatlist.Lists"

// DefaultProbeInterval is how often the database is pinged.
const DefaultProbeInterval = 5 * time.Second

// Pinger is satisfied by *sql.DB and by the store.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
type Handler struct {
	health *health.Server
	pinger Pinger

	probeInterval time.Duration

	logger *logger.Logger
}

// NewHandler starts in NOT_SERVING until the first successful probe.
func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	h := &Handler{
		health:        health.NewServer(),
		pinger:        pinger,
		probeInterval: DefaultProbeInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	logger.Debug().Msg("gRPC handler created")
	return h
}

// Register attaches the health service to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Probe pings the database once and publishes the result.
func (h *Handler) Probe(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, h.probeInterval)
	defer cancel()

	if h.pinger == nil {
		h.setStatus(healthpb.HealthCheckResponse_SERVING)
		return
	}
	if err := h.pinger.PingContext(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("database ping failed")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

// Watch probes every probe interval until ctx ends.
func (h *Handler) Watch(ctx context.Context) {
	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	for {
		h.Probe(ctx)
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

// Shutdown switches every service to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
