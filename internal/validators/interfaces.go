// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks client input before it reaches storage: the sync
// envelope itself and the payload of every record a client created offline.
//
// Validation never touches the database. Reference fields are only checked
// for presence; whether they resolve is decided by the sync engine.
package validators

import "context"

// Validator validates an input value, optionally restricted to the named
// fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
