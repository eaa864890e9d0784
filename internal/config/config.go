// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container of the
// sphere-sync server. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and the built-in
// defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds token parameters and the protocol version.
	App App `envPrefix:"APP_"`

	// Storage holds the relational database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP and
	// gRPC servers.
	Server Server `envPrefix:"SERVER_"`

	// Events holds the change-notification broker settings.
	Events Events `envPrefix:"EVENTS_"`

	// Sync holds the sync engine settings.
	Sync Sync `envPrefix:"SYNC_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// TokenSignKey is the secret key used to verify JWT tokens issued by the
	// account service.
	// Env: APP_TOKEN_SIGN_KEY
	TokenSignKey string `env:"TOKEN_SIGN_KEY"`

	// TokenIssuer is the expected "iss" claim of incoming tokens.
	// Env: APP_TOKEN_ISSUER
	TokenIssuer string `env:"TOKEN_ISSUER"`

	// Version is the sync protocol version reported by GET /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration of the storage backends.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a postgres:// or postgresql:// URL opens
	// PostgreSQL, a file: URL or a plain path opens SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// MaxOpenConns caps the connection pool size.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address of the HTTP server ("host:port").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// GRPCAddress is the TCP address of the gRPC health server ("host:port").
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`

	// RequestTimeout bounds the handling of a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Events configures change notifications. With an empty broker address
// notifications are dropped.
type Events struct {
	MQTT MQTT `envPrefix:"MQTT_"`

	// QueueSize is the capacity of the in-memory queue between the sync
	// engine and the publisher.
	// Env: EVENTS_QUEUE_SIZE
	QueueSize int `env:"QUEUE_SIZE"`
}

// MQTT holds the broker connection settings.
type MQTT struct {
	// Broker is the broker URL, e.g. "tcp://localhost:1883".
	// Env: EVENTS_MQTT_BROKER
	Broker string `env:"BROKER"`

	// Env: EVENTS_MQTT_CLIENT_ID
	ClientID string `env:"CLIENT_ID"`

	// Env: EVENTS_MQTT_USERNAME
	Username string `env:"USERNAME"`

	// Env: EVENTS_MQTT_PASSWORD
	Password string `env:"PASSWORD"`

	// TopicPrefix is prepended to every published topic.
	// Env: EVENTS_MQTT_TOPIC_PREFIX
	TopicPrefix string `env:"TOPIC_PREFIX"`

	// QoS is the delivery guarantee of published events (0, 1 or 2).
	// Env: EVENTS_MQTT_QOS
	QoS int `env:"QOS"`

	// ConnectTimeout bounds the initial connection and each publish.
	// Env: EVENTS_MQTT_CONNECT_TIMEOUT
	ConnectTimeout time.Duration `env:"CONNECT_TIMEOUT"`
}

// Sync holds sync engine settings.
type Sync struct {
	// PermissionsFile is an optional YAML file overriding the role tables.
	// Env: SYNC_PERMISSIONS_FILE
	PermissionsFile string `env:"PERMISSIONS_FILE"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources. For every field the first non-zero value wins,
// in this order:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
