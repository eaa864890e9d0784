// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import "errors"

// errNoTransportsConfigured is returned by NewHandlers when the server
// config enables neither HTTP nor gRPC.
var errNoTransportsConfigured = errors.New("no transport handlers are configured")
