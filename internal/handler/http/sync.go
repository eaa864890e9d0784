package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/utils"
	"github.com/MKhiriev/sphere-sync/models"
)

// syncUser answers a sync over every sphere the caller can access, plus the
// user record and the global catalogs.
func (h *Handler) syncUser(w http.ResponseWriter, r *http.Request) {
	h.sync(w, r, nil)
}

// syncSphere narrows the sync to one sphere.
func (h *Handler) syncSphere(w http.ResponseWriter, r *http.Request) {
	h.sync(w, r, &models.DomainRestriction{
		Spheres: []string{chi.URLParam(r, sphereIDParam)},
	})
}

// syncStone narrows the sync to one stone and what hangs below it.
func (h *Handler) syncStone(w http.ResponseWriter, r *http.Request) {
	h.sync(w, r, &models.DomainRestriction{
		Spheres: []string{chi.URLParam(r, sphereIDParam)},
		Stones:  []string{chi.URLParam(r, stoneIDParam)},
	})
}

func (h *Handler) sync(w http.ResponseWriter, r *http.Request, domain *models.DomainRestriction) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(ctx)
	if !found {
		log.Error().Str("func", "*Handler.sync").Msg("no user ID was given")
		utils.WriteError(w, "no user ID was given", http.StatusUnauthorized)
		return
	}

	var syncRequest models.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&syncRequest); err != nil {
		log.Err(err).Str("func", "*Handler.sync").Msg("invalid JSON was passed")
		utils.WriteError(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}

	reply, err := h.services.SyncService.Sync(ctx, userID, syncRequest, domain)
	if err != nil {
		status := statusFromError(err)
		log.Err(err).Str("func", "*Handler.sync").Int("status", status).Msg("sync failed")
		utils.WriteError(w, errorMessage(err, status), status)
		return
	}

	utils.WriteJSON(w, reply, http.StatusOK)
}
