package service

import (
	"github.com/MKhiriev/sphere-sync/internal/config"
	"github.com/MKhiriev/sphere-sync/internal/events"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/reconcile"
	"github.com/MKhiriev/sphere-sync/internal/store"
	"github.com/MKhiriev/sphere-sync/models"
)

type Services struct {
	AuthService    AuthService
	SyncService    SyncService
	AppInfoService AppInfoService
}

// NewServices wires the services over storages. The sync service is wrapped
// with request validation.
func NewServices(storages *store.Storages, perms reconcile.Permissions, notifier events.Notifier, cfg config.StructuredConfig, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	syncService := NewSyncValidationService().Wrap(NewSyncService(storages, perms, notifier, logger))

	return &Services{
		AuthService:    NewAuthService(cfg.App, logger),
		SyncService:    syncService,
		AppInfoService: appInfo,
	}, nil
}
