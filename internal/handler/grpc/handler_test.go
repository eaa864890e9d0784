package grpc

import (
	"bytes"
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/service"
)

func checkStatus(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()
	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

// ── probes ──

func TestHandler_StartsServing(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())

	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, SyncServiceName))
}

func TestHandler_CheckProbes(t *testing.T) {
	tests := []struct {
		name   string
		probes map[string]error
		want   healthpb.HealthCheckResponse_ServingStatus
	}{
		{name: "no probes", want: healthpb.HealthCheckResponse_SERVING},
		{name: "all healthy", probes: map[string]error{"db": nil, "mqtt": nil}, want: healthpb.HealthCheckResponse_SERVING},
		{name: "database down", probes: map[string]error{"db": errors.New("connection refused"), "mqtt": nil}, want: healthpb.HealthCheckResponse_NOT_SERVING},
		{name: "broker down", probes: map[string]error{"db": nil, "mqtt": errors.New("not connected")}, want: healthpb.HealthCheckResponse_NOT_SERVING},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&service.Services{}, logger.Nop())
			for name, err := range tt.probes {
				h.AddProbe(name, func(context.Context) error { return err })
			}

			h.checkProbes(context.Background())

			assert.Equal(t, tt.want, checkStatus(t, h, SyncServiceName))
			assert.Equal(t, tt.want, checkStatus(t, h, ""))
		})
	}
}

func TestHandler_CheckProbes_Recovers(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	var probeErr error = errors.New("down")
	h.AddProbe("db", func(context.Context) error { return probeErr })

	h.checkProbes(context.Background())
	require.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))

	probeErr = nil
	h.checkProbes(context.Background())
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
}

func TestHandler_Run_StopsOnCancel(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	h.probeInterval = 5 * time.Millisecond

	calls := make(chan struct{}, 16)
	h.AddProbe("db", func(context.Context) error {
		select {
		case calls <- struct{}{}:
		default:
		}
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- h.Run(ctx) }()

	for range 2 {
		select {
		case <-calls:
		case <-time.After(time.Second):
			t.Fatal("probe was not called")
		}
	}
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, SyncServiceName))
}

// ── transport ──

func TestHandler_RegisterServesHealthOverGRPC(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, &logger.Logger{Logger: zerolog.New(&buf)})

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(h.UnaryLogging()))
	h.Register(srv)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	ctx = metadata.AppendToOutgoingContext(ctx, traceIDMetadataKey, "trace-grpc-1")

	resp, err := healthpb.NewHealthClient(conn).Check(ctx, &healthpb.HealthCheckRequest{Service: SyncServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	assert.Contains(t, buf.String(), `"trace_id":"trace-grpc-1"`)
	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"OK"`)
}
