package server

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/handler"
	myGRPC "github.com/MKhiriev/eat-that-list/internal/handler/grpc"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer_NoAddresses(t *testing.T) {
	s, err := NewServer(&handler.Handlers{}, config.Server{}, logger.Nop())

	assert.ErrorIs(t, err, errNoServersAreCreated)
	assert.Nil(t, s)
}

func TestServe_NoTransports(t *testing.T) {
	s := &server{logger: logger.Nop()}
	assert.ErrorIs(t, s.serve(context.Background()), errNoServersAreCreated)
}

// Остановка по сигналу закрывает push-стримы: базовый контекст HTTP отменён.
func TestServe_StopsOnContextDone(t *testing.T) {
	httpSrv := newHTTPServer(http.NotFoundHandler(), config.Server{HTTPAddress: "127.0.0.1:0", KeepAlive: time.Second}, logger.Nop())
	s := &server{httpServer: httpSrv, logger: logger.Nop()}
	streams := httpSrv.server.BaseContext(nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	done := make(chan error, 1)
	go func() { done <- s.serve(ctx) }()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not return after the context was cancelled")
	}
	assert.Error(t, streams.Err())
}

func TestNewHTTPServer_Timeouts(t *testing.T) {
	cfg := config.Server{HTTPAddress: "127.0.0.1:0", KeepAlive: 15 * time.Second}

	s := newHTTPServer(http.NotFoundHandler(), cfg, logger.Nop())

	require.NotNil(t, s.server)
	assert.Equal(t, "127.0.0.1:0", s.server.Addr)
	assert.Equal(t, readHeaderTimeout, s.server.ReadHeaderTimeout)
	assert.Equal(t, 30*time.Second, s.server.IdleTimeout)

	// после Shutdown базовый контекст запросов отменён
	ctx := s.server.BaseContext(nil)
	s.Shutdown()
	assert.Error(t, ctx.Err())
}

func TestGRPCServer_ShutdownWithoutRun(t *testing.T) {
	cfg := config.Server{GRPCAddress: "127.0.0.1:0"}
	s := newGRPCServer(myGRPC.NewHandler(nil, logger.Nop()), cfg, logger.Nop())

	assert.NotPanics(t, s.Shutdown)
	assert.Error(t, s.probes.Err())
}
