// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the granola-sync CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/granola-sync/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the granola-sync CLI.
var rootCmd = &cobra.Command{
	Use:   "granola-sync",
	Short: "Sync Granola meetings into Craft.do daily notes",
	Long: `granola-sync pulls a day's meetings from Granola, converts each meeting's
AI summary and transcript into markdown, and appends the result as structured
blocks to the Craft.do daily note for that date.

Meetings are processed one at a time in list order. A failure on one meeting
is reported and the run continues with the next; nothing is retried.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env first, so viper's env bindings see the values.
		_ = godotenv.Load()

		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			keys := make([]string, 0, len(s))
			for k := range s {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			fmt.Fprintf(os.Stderr, "Loaded secrets: %v\n", keys)
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./granola-sync.yaml or ~/.config/granola-sync/config.yaml)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("granola-sync")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "granola-sync"))
		}
	}

	viper.SetEnvPrefix("GRANOLA_SYNC")
	viper.AutomaticEnv()

	// The env names predate this tool's prefix convention; bind them
	// explicitly so existing environments keep working unchanged.
	viper.BindEnv("granola_cookie", "GRANOLA_COOKIE")
	viper.BindEnv("craft_token", "CRAFT_TOKEN")
	viper.BindEnv("craft_space_id", "CRAFT_SPACE_ID")
	viper.BindEnv("granola_device_id", "X_GRANOLA_DEVICE_ID")
	viper.BindEnv("granola_workspace_id", "X_GRANOLA_WORKSPACE_ID")
	viper.BindEnv("client_version", "X_CLIENT_VERSION")

	viper.SetDefault("http_timeout", "30s")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
