package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/sphere-sync/internal/service"
	"github.com/MKhiriev/sphere-sync/internal/store"
	"github.com/MKhiriev/sphere-sync/internal/validators"
)

var errorStatusMap = map[error]int{
	validators.ErrEmptySyncRequest:     http.StatusBadRequest,
	validators.ErrUnknownSyncType:      http.StatusBadRequest,
	validators.ErrUnknownScopeCategory: http.StatusBadRequest,

	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorMessage hides the details of server-side failures from the client.
func errorMessage(err error, status int) string {
	if status >= http.StatusInternalServerError {
		return http.StatusText(status)
	}
	return err.Error()
}
