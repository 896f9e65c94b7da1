// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultClientVersion is sent as X-Client-Version when none is configured.
const DefaultClientVersion = "6.462.1"

// HTTPConfig holds shared HTTP settings used by the API clients.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "granola-sync/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GranolaConfig holds settings for the Granola meeting source.
// Built once at startup and read-only thereafter.
type GranolaConfig struct {
	HTTPConfig `yaml:",inline"`

	// Cookie is the Granola credential. A value starting with "Bearer "
	// is sent as the Authorization header, anything else as Cookie.
	Cookie string `json:"cookie,omitempty" yaml:"cookie,omitempty"`

	// DeviceID is sent as X-Granola-Device-Id.
	DeviceID string `json:"device_id" yaml:"device_id"`

	// WorkspaceID is sent as X-Granola-Workspace-Id.
	WorkspaceID string `json:"workspace_id" yaml:"workspace_id"`

	// ClientVersion is sent as X-Client-Version (default DefaultClientVersion).
	ClientVersion string `json:"client_version" yaml:"client_version"`
}

// CraftConfig holds settings for the Craft.do document sink.
type CraftConfig struct {
	HTTPConfig `yaml:",inline"`

	// Token is the Craft connect API bearer token.
	Token string `json:"token,omitempty" yaml:"token,omitempty"`

	// SpaceID identifies the Craft space whose daily notes receive blocks.
	SpaceID string `json:"space_id" yaml:"space_id"`
}

// SyncConfig groups the collaborator configurations for one sync run.
type SyncConfig struct {
	Granola GranolaConfig `json:"granola" yaml:"granola"`
	Craft   CraftConfig   `json:"craft" yaml:"craft"`
}
