package handler

import (
	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/handler/grpc"
	"github.com/MKhiriev/eat-that-list/internal/handler/http"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers builds a transport handler for every configured address.
// pinger backs the gRPC health status and may be nil.
func NewHandlers(services *service.Services, pinger grpc.Pinger, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(pinger, logger)
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
