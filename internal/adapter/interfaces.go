// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the sync API.
//
// [SyncClient] sends sync envelopes to a running server over HTTP and maps
// non-2xx answers to the sentinel errors of this package, so callers can use
// [errors.Is] (e.g. [ErrUnauthorized] for 401, [ErrBadRequest] for 400).
package adapter

import (
	"context"

	"github.com/MKhiriev/sphere-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// SyncClient talks to the sync endpoints of one server.
type SyncClient interface {
	// SetToken stores the bearer token attached to every sync call.
	SetToken(token string)

	// Token returns the stored bearer token, or "".
	Token() string

	// Version fetches the build and protocol version of the server.
	Version(ctx context.Context) (models.VersionInfo, error)

	// SyncUser runs a sync over every sphere the token's user can access.
	SyncUser(ctx context.Context, req models.SyncRequest) (models.SyncReply, error)

	// SyncSphere runs a sync restricted to one sphere.
	SyncSphere(ctx context.Context, sphereID string, req models.SyncRequest) (models.SyncReply, error)

	// SyncStone runs a sync restricted to one stone of a sphere.
	SyncStone(ctx context.Context, sphereID, stoneID string, req models.SyncRequest) (models.SyncReply, error)
}
