package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/sphere-sync/internal/logger"
	"github.com/MKhiriev/sphere-sync/internal/utils"
	"github.com/MKhiriev/sphere-sync/models"
)

type httpSyncClient struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPSyncClient returns a [SyncClient] for the server at address. An
// address without scheme is taken as plain http. A zero timeout keeps the
// client default.
func NewHTTPSyncClient(address string, timeout time.Duration, logger *logger.Logger) (SyncClient, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid server address: %w", err)
	}

	client := utils.NewHTTPClient(baseURL)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &httpSyncClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", ErrInvalidAddress
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpSyncClient) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpSyncClient) Token() string {
	return h.token
}

func (h *httpSyncClient) Version(ctx context.Context) (models.VersionInfo, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version")
	if err != nil {
		return models.VersionInfo{}, fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VersionInfo{}, err
	}

	var info models.VersionInfo
	if err = json.Unmarshal(resp.Body(), &info); err != nil {
		return models.VersionInfo{}, fmt.Errorf("decode version: %w", err)
	}
	return info, nil
}

func (h *httpSyncClient) SyncUser(ctx context.Context, req models.SyncRequest) (models.SyncReply, error) {
	return h.sync(ctx, "/api/user/sync", req)
}

func (h *httpSyncClient) SyncSphere(ctx context.Context, sphereID string, req models.SyncRequest) (models.SyncReply, error) {
	return h.sync(ctx, "/api/spheres/"+url.PathEscape(sphereID)+"/sync", req)
}

func (h *httpSyncClient) SyncStone(ctx context.Context, sphereID, stoneID string, req models.SyncRequest) (models.SyncReply, error) {
	path := "/api/spheres/" + url.PathEscape(sphereID) + "/stones/" + url.PathEscape(stoneID) + "/sync"
	return h.sync(ctx, path, req)
}

func (h *httpSyncClient) sync(ctx context.Context, path string, req models.SyncRequest) (models.SyncReply, error) {
	resp, err := h.authedRequest(ctx).
		SetBody(req).
		Post(path)
	if err != nil {
		return models.SyncReply{}, fmt.Errorf("sync request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("path", path).Int("status", resp.StatusCode()).Msg("sync rejected")
		return models.SyncReply{}, err
	}

	var reply models.SyncReply
	if err = json.Unmarshal(resp.Body(), &reply); err != nil {
		return models.SyncReply{}, fmt.Errorf("decode sync reply: %w", err)
	}
	return reply, nil
}

func (h *httpSyncClient) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
