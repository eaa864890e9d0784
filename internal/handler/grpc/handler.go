// Package grpc implements the gRPC transport of the sync server.
//
// The transport serves the standard grpc.health.v1 service. Its status
// follows the probes registered with [Handler.AddProbe], so load balancers
// stop routing sync traffic to an instance that lost its database or its
// event broker.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/service"
)

// SyncServiceName is the health service name reported for the sync API.
const SyncServiceName = "sphere.sync.v1.Sync"

const defaultProbeInterval = 15 * time.Second

// Probe reports whether one dependency of the server is usable.
type Probe func(ctx context.Context) error

type namedProbe struct {
	name  string
	probe Probe
}

// Handler is the root gRPC transport handler.
type Handler struct {
	services *service.Services
	health   *health.Server
	probes   []namedProbe

	probeInterval time.Duration

	logger *logger.Logger
}

// NewHandler constructs a [Handler]. Every service starts SERVING until the
// first probe round says otherwise.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services:      services,
		health:        health.NewServer(),
		probeInterval: defaultProbeInterval,
		logger:        logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	return h
}

// AddProbe registers a dependency check. Probes must be added before Run.
func (h *Handler) AddProbe(name string, probe Probe) {
	h.probes = append(h.probes, namedProbe{name: name, probe: probe})
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Run probes the registered dependencies every interval until ctx is done,
// then marks every service NOT_SERVING so clients drain before shutdown.
func (h *Handler) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.probeInterval)
	defer ticker.Stop()

	h.checkProbes(ctx)
	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return nil
		case <-ticker.C:
			h.checkProbes(ctx)
		}
	}
}

func (h *Handler) checkProbes(ctx context.Context) {
	status := healthpb.HealthCheckResponse_SERVING
	for _, p := range h.probes {
		if err := p.probe(ctx); err != nil {
			h.logger.Warn().Err(err).Str("probe", p.name).Msg("health probe failed")
			status = healthpb.HealthCheckResponse_NOT_SERVING
		}
	}
	h.setStatus(status)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(SyncServiceName, status)
}
