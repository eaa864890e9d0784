package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/sphere-sync/internal/config"
	"github.com/MKhiriev/sphere-sync/internal/events"
	"github.com/MKhiriev/sphere-sync/internal/handler"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/reconcile"
	"github.com/MKhiriev/sphere-sync/internal/server"
	"github.com/MKhiriev/sphere-sync/internal/service"
	"github.com/MKhiriev/sphere-sync/internal/store"
	"github.com/MKhiriev/sphere-sync/internal/workers"
	"github.com/MKhiriev/sphere-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(build)

	log := logger.NewLogger("sphere-sync")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer storages.Close()

	perms, err := reconcile.LoadPermissions(cfg.Sync.PermissionsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("error loading permission table")
	}

	probes := handler.Probes{"db": storages.Ping}
	background := make([]workers.Worker, 0, 2)

	notifier := events.Nop()
	if cfg.Events.MQTT.Broker != "" {
		publisher, pubErr := events.NewMQTTPublisher(cfg.Events.MQTT, log)
		if pubErr != nil {
			log.Fatal().Err(pubErr).Msg("error connecting to mqtt broker")
		}
		defer publisher.Close()

		dispatcher := events.NewDispatcher(publisher, cfg.Events.QueueSize, log)
		notifier = dispatcher
		background = append(background, dispatcher)
		probes["mqtt"] = publisher.HealthCheck
	} else {
		log.Info().Msg("no mqtt broker configured, change events are not published")
	}

	services, err := service.NewServices(storages, perms, notifier, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, probes, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}
	background = append(background, handlers.Workers()...)

	srv, err := server.NewServer(handlers, cfg.Server, workers.NewWorkers(background...), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(build models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", build.BuildVersion())
	fmt.Printf("Build date: %s\n", build.BuildDate())
	fmt.Printf("Build commit: %s\n", build.BuildCommit())
}
