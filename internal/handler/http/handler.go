package http

import (
	"net/http"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/service"
	"github.com/MKhiriev/sphere-sync/internal/utils"
)

// Handler serves the sync API. Authentication, tracing and compression are
// applied by the middleware chain built in [Handler.Init].
type Handler struct {
	services *service.Services

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("sync http handler created")
	return &Handler{
		services: services,
		logger:   logger,
	}
}

// getServerVersion answers GET /api/version. It is public so clients can
// check protocol compatibility before they hold a token.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.VersionInfo(r.Context()), http.StatusOK)
}
