package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/sphere-sync/internal/config"
	"github.com/MKhiriev/sphere-sync/internal/handler"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/workers"
)

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	background *workers.Workers
	logger     *logger.Logger
}

// NewServer creates the transports enabled in cfg. background runs next to
// them for the lifetime of the server; nil means no background work.
func NewServer(handlers *handler.Handlers, cfg config.Server, background *workers.Workers, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		background: background,
		logger:     logger,
	}
	if servers.background == nil {
		servers.background = workers.NewWorkers()
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		grpcSrv, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.gRPCServer = grpcSrv
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoTransportsEnabled
	}

	return servers, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	if s.httpServer != nil {
		s.httpServer.Shutdown()
	}
	if s.gRPCServer != nil {
		s.gRPCServer.Shutdown()
	}
}

// run serves until ctx is done or a background worker fails, then shuts the
// transports down and waits for the workers to return.
func (s *server) run(ctx context.Context) error {
	if s.httpServer == nil && s.gRPCServer == nil {
		return errNoTransportsEnabled
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	workersDone := make(chan error, 1)
	go func() {
		err := s.background.Run(ctx)
		if err != nil {
			s.logger.Err(err).Msg("background worker failed, stopping server")
			cancel()
		}
		workersDone <- err
	}()

	if s.httpServer != nil {
		go s.httpServer.RunServer()
	}
	if s.gRPCServer != nil {
		go s.gRPCServer.RunServer()
	}

	<-ctx.Done()
	s.Shutdown()

	err := <-workersDone
	s.logger.Info().Msg("server Shutdown gracefully")

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
