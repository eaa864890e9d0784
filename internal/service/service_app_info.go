package service

import (
	"context"

	"github.com/MKhiriev/sphere-sync/internal/config"
	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

func NewAppInfoService(cfg config.App, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

// VersionInfo combines the protocol version with the build metadata.
func (s *appInfoService) VersionInfo(ctx context.Context) models.VersionInfo {
	return models.VersionInfo{
		ProtocolVersion: s.appVersion,
		BuildVersion:    s.build.BuildVersion(),
		BuildDate:       s.build.BuildDate(),
		BuildCommit:     s.build.BuildCommit(),
	}
}
