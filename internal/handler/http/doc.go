// Package http implements the HTTP transport of the sync server.
//
// It exposes the three sync endpoints (user, sphere and stone scoped), the
// version endpoint and the middleware in front of them: bearer token
// authentication, request tracing, access logging and gzip compression.
package http
