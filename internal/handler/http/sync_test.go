package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/mock"
	"github.com/MKhiriev/sphere-sync/internal/service"
	"github.com/MKhiriev/sphere-sync/internal/store"
	"github.com/MKhiriev/sphere-sync/internal/utils"
	"github.com/MKhiriev/sphere-sync/internal/validators"
	"github.com/MKhiriev/sphere-sync/models"
)

// ── helpers ──

func newSyncHandler(t *testing.T) (*Handler, *mock.MockSyncService) {
	t.Helper()
	syncSvc := mock.NewMockSyncService(gomock.NewController(t))
	return NewHandler(&service.Services{SyncService: syncSvc}, logger.Nop()), syncSvc
}

// syncRequest builds an authenticated request carrying chi url params.
func syncRequest(body, userID string, params map[string]string) *http.Request {
	req := injectNopLogger(httptest.NewRequest(http.MethodPost, "/sync", strings.NewReader(body)))

	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	ctx := context.WithValue(req.Context(), chi.RouteCtxKey, rctx)
	if userID != "" {
		ctx = utils.WithUserID(ctx, userID)
	}

	return req.WithContext(ctx)
}

const fullBody = `{"sync":{"type":"FULL"}}`

// ── domain restriction per endpoint ──

func TestSync_DomainPerEndpoint(t *testing.T) {
	tests := []struct {
		name       string
		call       func(h *Handler) http.HandlerFunc
		params     map[string]string
		wantDomain *models.DomainRestriction
	}{
		{
			name: "user endpoint",
			call: func(h *Handler) http.HandlerFunc { return h.syncUser },
		},
		{
			name:       "sphere endpoint",
			call:       func(h *Handler) http.HandlerFunc { return h.syncSphere },
			params:     map[string]string{sphereIDParam: "sp1"},
			wantDomain: &models.DomainRestriction{Spheres: []string{"sp1"}},
		},
		{
			name:       "stone endpoint",
			call:       func(h *Handler) http.HandlerFunc { return h.syncStone },
			params:     map[string]string{sphereIDParam: "sp1", stoneIDParam: "st1"},
			wantDomain: &models.DomainRestriction{Spheres: []string{"sp1"}, Stones: []string{"st1"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, syncSvc := newSyncHandler(t)
			syncSvc.EXPECT().
				Sync(gomock.Any(), "u1", gomock.Any(), tt.wantDomain).
				DoAndReturn(func(_ context.Context, _ string, req models.SyncRequest, _ *models.DomainRestriction) (models.SyncReply, error) {
					require.NotNil(t, req.Sync)
					assert.Equal(t, models.SyncTypeFull, req.Sync.Type)
					return models.SyncReply{Spheres: map[string]*models.ReplyItem{}}, nil
				})

			rec := httptest.NewRecorder()
			tt.call(h)(rec, syncRequest(fullBody, "u1", tt.params))

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

// ── request failures ──

func TestSync_NoUserInContext(t *testing.T) {
	h, _ := newSyncHandler(t)

	rec := httptest.NewRecorder()
	h.syncUser(rec, syncRequest(fullBody, "", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSync_InvalidJSON(t *testing.T) {
	h, _ := newSyncHandler(t)

	rec := httptest.NewRecorder()
	h.syncUser(rec, syncRequest(`{"sync":`, "u1", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"error":"invalid JSON was passed"}`, rec.Body.String())
}

func TestSync_ServiceErrors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "empty envelope",
			err:        validators.ErrEmptySyncRequest,
			wantStatus: http.StatusBadRequest,
			wantBody:   validators.ErrEmptySyncRequest.Error(),
		},
		{
			name:       "unknown sync type",
			err:        fmt.Errorf("%w: %q", validators.ErrUnknownSyncType, "PUSH"),
			wantStatus: http.StatusBadRequest,
			wantBody:   validators.ErrUnknownSyncType.Error(),
		},
		{
			name:       "storage failure is hidden",
			err:        fmt.Errorf("%w: %w", service.ErrLoadingSyncState, store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
		{
			name:       "unexpected error is hidden",
			err:        errors.New("db password is hunter2"),
			wantStatus: http.StatusInternalServerError,
			wantBody:   http.StatusText(http.StatusInternalServerError),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, syncSvc := newSyncHandler(t)
			syncSvc.EXPECT().Sync(gomock.Any(), "u1", gomock.Any(), gomock.Nil()).Return(models.SyncReply{}, tt.err)

			rec := httptest.NewRecorder()
			h.syncUser(rec, syncRequest(fullBody, "u1", nil))

			require.Equal(t, tt.wantStatus, rec.Code)
			var body utils.ErrorBody
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Error, tt.wantBody)
		})
	}
}

// ── reply encoding ──

func TestSync_WritesReply(t *testing.T) {
	h, syncSvc := newSyncHandler(t)
	reply := models.SyncReply{
		Spheres: map[string]*models.ReplyItem{
			"sp1": models.NewReplyItem(models.ItemReply{Status: models.StatusInSync}),
		},
		User: &models.ItemReply{Status: models.StatusNotAvailable},
	}
	syncSvc.EXPECT().Sync(gomock.Any(), "u1", gomock.Any(), gomock.Any()).Return(reply, nil)

	rec := httptest.NewRecorder()
	h.syncUser(rec, syncRequest(`{"sync":{"type":"REQUEST"},"spheres":{}}`, "u1", nil))

	require.Equal(t, http.StatusOK, rec.Code)

	var got map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "NOT_AVAILABLE", got["user"].(map[string]any)["status"])
	assert.Contains(t, got["spheres"], "sp1")
}

func TestStatusFromError(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFromError(validators.ErrUnknownScopeCategory))
	assert.Equal(t, http.StatusUnauthorized, statusFromError(service.ErrTokenIsExpiredOrInvalid))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(store.ErrScanningRows))
	assert.Equal(t, http.StatusInternalServerError, statusFromError(errors.New("other")))
}

func TestErrorMessage(t *testing.T) {
	err := errors.New("detail")
	assert.Equal(t, "detail", errorMessage(err, http.StatusBadRequest))
	assert.Equal(t, "Internal Server Error", errorMessage(err, http.StatusInternalServerError))
}
