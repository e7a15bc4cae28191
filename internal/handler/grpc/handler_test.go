package grpc

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newHealthClient(t *testing.T, h *Handler) healthpb.HealthClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)

	srv := grpc.NewServer()
	h.Register(srv)
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func check(t *testing.T, client healthpb.HealthClient, service string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{Service: service})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHealth_FollowsDatabase(t *testing.T) {
	var pingErr error
	h := NewHandler(pingerFunc(func(context.Context) error { return pingErr }), logger.Nop())
	client := newHealthClient(t, h)

	// до первой проверки сервис не готов
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))

	h.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ServiceName))

	pingErr = errors.New("connection refused")
	h.Probe(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ServiceName))
}

func TestHealth_ShutdownIsFinal(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client := newHealthClient(t, h)

	h.Probe(context.Background())
	require.Equal(t, healthpb.HealthCheckResponse_SERVING, check(t, client, ""))

	h.Shutdown()
	h.Probe(context.Background())

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, check(t, client, ""))
}

func TestWatch_StopsWithContext(t *testing.T) {
	var pings int
	h := NewHandler(pingerFunc(func(context.Context) error { pings++; return nil }), logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	h.Watch(ctx)

	assert.Equal(t, 1, pings)
}
