// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/sphere-sync/internal/adapter"
)

// humanizeError turns transport failures into a line an operator can act on.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, adapter.ErrUnauthorized):
		return "token rejected by server, mint a new one with `syncctl token`"
	case errors.Is(err, adapter.ErrGatewayTimeout):
		return "server did not finish the sync in time, retry with a narrower scope"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "no network or server unavailable"
	}

	return err.Error()
}

// RenderError renders err as a boxed error message.
func RenderError(err error) string {
	return boxStyle.Render(errorStyle.Render("error: ") + humanizeError(err))
}
