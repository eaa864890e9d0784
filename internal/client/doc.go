// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements syncctl, the operator command line for a sync
// server.
//
// It mints test tokens, checks the server version and sends FULL, REQUEST or
// REPLY envelopes to the user, sphere or stone endpoint, printing the reply
// as a status tree or as raw JSON.
package client
