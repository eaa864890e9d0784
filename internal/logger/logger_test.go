package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferLogger(buf *bytes.Buffer) *Logger {
	return &Logger{zerolog.New(buf)}
}

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

// ── NewLogger ──

func TestNewLogger_EntryFields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("sphere-sync")
	l.Logger = l.Output(&buf)

	l.Info().Msg("hello")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "sphere-sync", entry["role"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "hello", entry["message"])
}

func TestNewLogger_Globals(t *testing.T) {
	NewLogger("syncctl")

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

// ── Nop ──

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

// ── child loggers ──

func TestChildLoggers(t *testing.T) {
	tests := []struct {
		name  string
		child func(*Logger) *Logger
		key   string
		value string
	}{
		{name: "trace id", child: func(l *Logger) *Logger { return l.WithTraceID("t-1") }, key: FieldTraceID, value: "t-1"},
		{name: "user id", child: func(l *Logger) *Logger { return l.WithUserID("u-7") }, key: FieldUserID, value: "u-7"},
		{name: "sphere", child: func(l *Logger) *Logger { return l.WithSphere("sphere-42") }, key: FieldSphereID, value: "sphere-42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			parent := &Logger{zerolog.New(&buf).With().Str("role", "sphere-sync").Logger()}

			child := tt.child(parent)
			require.NotSame(t, parent, child)
			child.Warn().Msg("item failed")

			entry := decodeEntry(t, &buf)
			assert.Equal(t, tt.value, entry[tt.key])
			assert.Equal(t, "sphere-sync", entry["role"])

			buf.Reset()
			parent.Info().Msg("parent")
			assert.NotContains(t, decodeEntry(t, &buf), tt.key)
		})
	}
}

func TestChildLoggers_Stack(t *testing.T) {
	var buf bytes.Buffer

	bufferLogger(&buf).WithTraceID("t-1").WithUserID("u-1").WithSphere("s-1").Info().Msg("synced")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "t-1", entry[FieldTraceID])
	assert.Equal(t, "u-1", entry[FieldUserID])
	assert.Equal(t, "s-1", entry[FieldSphereID])
}

// ── FromContext / FromRequest ──

func TestFromContext_WithoutLogger(t *testing.T) {
	assert.NotNil(t, FromContext(context.Background()))
}

func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := bufferLogger(&buf).WithTraceID("t-ctx").WithContext(context.Background())

	FromContext(ctx).Info().Msg("from context")

	assert.Equal(t, "t-ctx", decodeEntry(t, &buf)[FieldTraceID])
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	ctx := bufferLogger(&buf).WithTraceID("t-req").WithContext(context.Background())
	req := httptest.NewRequest(http.MethodPost, "/api/user/sync", nil).WithContext(ctx)

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "t-req", decodeEntry(t, &buf)[FieldTraceID])
}
