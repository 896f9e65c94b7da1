// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/pdiddy/granola-sync/pkg/types"
)

// setting resolves one configuration value: viper (env vars and config
// file) wins over a .secrets/ file.
func setting(viperKey, secretKey string) string {
	if v := viper.GetString(viperKey); v != "" {
		return v
	}
	return loadedSecrets[secretKey]
}

func httpConfig() types.HTTPConfig {
	return types.HTTPConfig{
		Timeout:   viper.GetDuration("http_timeout"),
		UserAgent: "granola-sync/" + version,
	}
}

// loadGranolaConfig builds the meeting-source configuration. The
// credential is required; its absence fails the run before any network
// call is made.
func loadGranolaConfig() (types.GranolaConfig, error) {
	cookie := setting("granola_cookie", "granola-cookie")
	if cookie == "" {
		return types.GranolaConfig{}, fmt.Errorf("granola credential missing: set GRANOLA_COOKIE or .secrets/granola-cookie")
	}

	return types.GranolaConfig{
		HTTPConfig:    httpConfig(),
		Cookie:        cookie,
		DeviceID:      setting("granola_device_id", "granola-device-id"),
		WorkspaceID:   setting("granola_workspace_id", "granola-workspace-id"),
		ClientVersion: setting("client_version", "client-version"),
	}, nil
}

// loadCraftConfig builds the document-sink configuration. Token and space
// are both required.
func loadCraftConfig() (types.CraftConfig, error) {
	token := setting("craft_token", "craft-token")
	if token == "" {
		return types.CraftConfig{}, fmt.Errorf("craft token missing: set CRAFT_TOKEN or .secrets/craft-token")
	}
	spaceID := setting("craft_space_id", "craft-space-id")
	if spaceID == "" {
		return types.CraftConfig{}, fmt.Errorf("craft space missing: set CRAFT_SPACE_ID or .secrets/craft-space-id")
	}

	return types.CraftConfig{
		HTTPConfig: httpConfig(),
		Token:      token,
		SpaceID:    spaceID,
	}, nil
}
