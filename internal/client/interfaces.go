// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client is a runnable command line application.
type Client interface {
	// Run executes command and returns once its output is written.
	Run(ctx context.Context, command string) error
}
