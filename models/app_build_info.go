// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "encoding/json"

// AppBuildInfo carries build-time metadata of the server binary. Values are
// injected by linker flags and reported by GET /api/version and the startup
// banner.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo constructs [AppBuildInfo] from the provided build metadata.
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orNA(buildVersion),
		buildDate:    orNA(buildDate),
		buildCommit:  orNA(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }
func (a AppBuildInfo) BuildDate() string    { return a.buildDate }
func (a AppBuildInfo) BuildCommit() string  { return a.buildCommit }

// MarshalJSON exposes the otherwise unexported build fields.
func (a AppBuildInfo) MarshalJSON() ([]byte, error) {
	return json.Marshal(VersionInfo{
		BuildVersion: a.buildVersion,
		BuildDate:    a.buildDate,
		BuildCommit:  a.buildCommit,
	})
}

// VersionInfo is the body of GET /api/version.
type VersionInfo struct {
	// ProtocolVersion is the sync protocol version configured for the server.
	ProtocolVersion string `json:"protocolVersion,omitempty"`
	BuildVersion    string `json:"buildVersion"`
	BuildDate       string `json:"buildDate"`
	BuildCommit     string `json:"buildCommit"`
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
