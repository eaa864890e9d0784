// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// errNoTransportsEnabled is returned when neither the HTTP nor the gRPC
// address is configured.
var errNoTransportsEnabled = errors.New("no transport is enabled")
