package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/handler"
	"github.com/MKhiriev/eat-that-list/internal/logger"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

// NewServer builds the transports whose addresses are set in cfg. At least
// one of them is required.
func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		s.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}
	if s.httpServer == nil && s.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	logger.Info().
		Str("http", cfg.HTTPAddress).
		Str("grpc", cfg.GRPCAddress).
		Msg("list server transports configured")
	return s, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := s.serve(ctx); err != nil {
		s.logger.Error().Err(err).Msg("list server stopped with error")
	}
}

// Shutdown stops the HTTP transport first: its push streams are cancelled
// before in-flight requests are drained. The health server goes last so
// probes keep answering while lists are still being served.
func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// serve starts the transports and blocks until ctx is done, then shuts them
// down.
func (s *server) serve(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoServersAreCreated
	}

	if s.httpServer != nil {
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()
	s.logger.Info().Msg("stop signal received, closing push streams")
	s.Shutdown()
	s.logger.Info().Msg("list server stopped")
	return nil
}
