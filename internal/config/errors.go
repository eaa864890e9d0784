package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	// ErrInvalidStorageConfigs indicates a missing database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates a missing token sign key.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or a
	// non-positive request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidEventsConfigs indicates an out of range QoS or queue size.
	ErrInvalidEventsConfigs = errors.New("invalid events configuration")
)

// ErrInvalidNetAddress is returned by [NetAddress.Set] for a malformed
// listen address.
var ErrInvalidNetAddress = errors.New("need address in a form `host:port`")

// ErrReadingEnv wraps failures to convert an environment variable into its
// config field.
var ErrReadingEnv = errors.New("error reading env configs")
