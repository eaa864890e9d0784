package service

import (
	"errors"

	"github.com/MKhiriev/sphere-sync/internal/validators"
)

var (
	// ErrEmptySyncRequest is returned for a missing envelope or sync header.
	ErrEmptySyncRequest = validators.ErrEmptySyncRequest
	// ErrUnknownSyncType is returned when sync.type is not FULL, REQUEST or REPLY.
	ErrUnknownSyncType = validators.ErrUnknownSyncType
	// ErrUnknownScopeCategory is returned when sync.scope names an unknown category.
	ErrUnknownScopeCategory = validators.ErrUnknownScopeCategory

	ErrLoadingSyncState = errors.New("error loading sync state")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)
