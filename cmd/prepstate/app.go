package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/Tharun-Techie/prepstate"
	"github.com/Tharun-Techie/prepstate/config"
)

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "",
		"path to config file (default: "+config.DefaultPath()+")")
}

// newLogger builds the CLI logger from config.
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stderr, opts))
}

// withManager loads configuration, builds the stores and the manager,
// runs fn, and tears everything down afterwards.
//
// Every state-touching command funnels through here so they all share
// the same config resolution and store lifecycle.
func withManager(cmd *cobra.Command, fn func(m *prepstate.Manager) error) error {
	configFile, _ := cmd.Flags().GetString("config")
	if configFile == "" {
		configFile = config.DefaultPath()
	}

	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	stores, err := config.BuildStores(cfg)
	if err != nil {
		return fmt.Errorf("failed to open stores: %w", err)
	}
	defer func() { _ = stores.Close() }()

	m, err := prepstate.New(
		prepstate.WithStore(stores.Primary),
		prepstate.WithFallbackStore(stores.Fallback),
		prepstate.WithLogger(newLogger(cfg)),
	)
	if err != nil {
		return fmt.Errorf("failed to create state manager: %w", err)
	}

	return fn(m)
}
