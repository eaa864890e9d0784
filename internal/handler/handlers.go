package handler

import (
	"sort"

	"github.com/MKhiriev/sphere-sync/internal/config"
	"github.com/MKhiriev/sphere-sync/internal/handler/grpc"
	"github.com/MKhiriev/sphere-sync/internal/handler/http"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/service"
	"github.com/MKhiriev/sphere-sync/internal/workers"
)

// Probes maps a dependency name ("db", "mqtt") to its health check.
type Probes map[string]grpc.Probe

type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

// NewHandlers creates the transports enabled in cfg. probes drive the gRPC
// health status and are ignored when gRPC is disabled.
func NewHandlers(services *service.Services, cfg config.Server, probes Probes, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)

		names := make([]string, 0, len(probes))
		for name := range probes {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			handlers.GRPC.AddProbe(name, probes[name])
		}
	}

	if handlers.HTTP == nil && handlers.GRPC == nil {
		return nil, errNoTransportsConfigured
	}

	return handlers, nil
}

// Workers returns the background loops owned by the transports.
func (h *Handlers) Workers() []workers.Worker {
	if h.GRPC == nil {
		return nil
	}
	return []workers.Worker{h.GRPC}
}
