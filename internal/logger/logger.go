// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog for the sync server and the syncctl tool.
//
// Request handling code never keeps a logger of its own: transports attach a
// logger tagged with the trace id to the context, and everything below reads
// it back with [FromContext] or [FromRequest].
package logger

import (
	"context"
	"net/http"
	"os"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Field names shared by every component, so one sync call can be followed
// across transport, service and store entries.
const (
	FieldTraceID  = "trace_id"
	FieldUserID   = "user_id"
	FieldSphereID = "sphere_id"
)

// Logger embeds zerolog.Logger; the full zerolog API is available on it.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to stdout. Every entry carries the
// role ("sphere-sync", "syncctl"), a timestamp and the calling function
// under "func".
func NewLogger(role string) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerFieldName = "func"
	zerolog.CallerMarshalFunc = func(pc uintptr, _ string, _ int) string {
		return runtime.FuncForPC(pc).Name()
	}

	return &Logger{zerolog.New(os.Stdout).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()}
}

// Nop discards everything. Used in tests.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// WithTraceID returns a child logger tagging entries with the trace id of
// the current request or call.
func (l *Logger) WithTraceID(traceID string) *Logger {
	return l.with(FieldTraceID, traceID)
}

// WithUserID returns a child logger tagging entries with the authenticated
// caller.
func (l *Logger) WithUserID(userID string) *Logger {
	return l.with(FieldUserID, userID)
}

// WithSphere returns a child logger tagging entries with the sphere being
// synced, so the item failures of one sphere can be grepped together.
func (l *Logger) WithSphere(sphereID string) *Logger {
	return l.with(FieldSphereID, sphereID)
}

func (l *Logger) with(key, value string) *Logger {
	return &Logger{l.With().Str(key, value).Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx. Without one, zerolog's
// default context logger is returned, never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
