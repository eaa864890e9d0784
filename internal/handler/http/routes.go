package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	sphereIDParam = "sphereID"
	stoneIDParam  = "stoneID"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(withGZip)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Post("/api/user/sync", h.syncUser)
		r.Post("/api/spheres/{"+sphereIDParam+"}/sync", h.syncSphere)
		r.Post("/api/spheres/{"+sphereIDParam+"}/stones/{"+stoneIDParam+"}/sync", h.syncStone)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
