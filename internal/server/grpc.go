package server

import (
	"context"
	"net"

	"github.com/MKhiriev/eat-that-list/internal/config"
	myGRPC "github.com/MKhiriev/eat-that-list/internal/handler/grpc"
	"github.com/MKhiriev/eat-that-list/internal/logger"

	"google.golang.org/grpc"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	// probes lives as long as the server
	probes     context.Context
	stopProbes context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	probes, stop := context.WithCancel(context.Background())
	return &grpcServer{
		handler:    handler,
		server:     server,
		address:    cfg.GRPCAddress,
		probes:     probes,
		stopProbes: stop,
		logger:     logger,
	}
}

func (g *grpcServer) RunServer() {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		g.logger.Error().Err(err).Str("address", g.address).Msg("gRPC server Listen")
		return
	}

	go g.handler.Watch(g.probes)

	g.logger.Info().Str("address", g.address).Msg("gRPC server listening")
	if err = g.server.Serve(listener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("GRPC server Shutdown")
	g.stopProbes()
	g.handler.Shutdown()
	g.server.GracefulStop()
}
