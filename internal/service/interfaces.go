package service

import (
	"context"
	"time"

	"github.com/MKhiriev/sphere-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// SyncService runs one call of the sphere sync protocol for a user.
type SyncService interface {
	// Sync answers req for userID. domain narrows the call to some spheres or
	// stones and is nil for the generic user endpoint. Item-level failures are
	// embedded in the reply; an error means no reply could be built.
	Sync(ctx context.Context, userID string, req models.SyncRequest, domain *models.DomainRestriction) (models.SyncReply, error)
}

type AuthService interface {
	CreateToken(ctx context.Context, userID string, ttl time.Duration) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	VersionInfo(ctx context.Context) models.VersionInfo
}

// SyncServiceWrapper defines middleware composition for SyncService.
// Implementations wrap an existing SyncService to add behavior such as
// validation.
type SyncServiceWrapper interface {
	Wrap(SyncService) SyncService
}
