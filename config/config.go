// Package config provides YAML configuration parsing for the prepstate CLI.
//
// This package enables running prepstate as a standalone binary with a
// configuration file, as an alternative to the programmatic SDK approach.
//
// Example configuration:
//
//	storage:
//	  backend: sqlite
//	  path: ~/.local/share/prepstate/state.db
//	fallback:
//	  backend: memory
//	log:
//	  level: info
//	  format: text
//
// Every field can be overridden from the environment after the file is
// parsed (PREPSTATE_STORAGE_BACKEND, PREPSTATE_STORAGE_PATH,
// PREPSTATE_FALLBACK_BACKEND, PREPSTATE_FALLBACK_PATH,
// PREPSTATE_LOG_LEVEL, PREPSTATE_LOG_FORMAT).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Store backends accepted in the configuration.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config is the root configuration structure for the prepstate CLI.
//
// It maps directly to the YAML configuration file. Use [Load] or [Parse]
// to create a Config; both apply defaults, overlay environment variables,
// and validate.
type Config struct {
	// Storage is the primary, durable store. Defaults to a file store
	// under the user config directory.
	Storage StoreConfig `yaml:"storage" envPrefix:"PREPSTATE_STORAGE_"`

	// Fallback is the secondary store that receives writes when the
	// primary store fails. Defaults to memory.
	Fallback StoreConfig `yaml:"fallback" envPrefix:"PREPSTATE_FALLBACK_"`

	// Log controls CLI log output.
	Log LogConfig `yaml:"log"`
}

// StoreConfig selects and locates one store backend.
type StoreConfig struct {
	// Backend is one of "file", "sqlite", or "memory".
	Backend string `yaml:"backend" env:"BACKEND"`

	// Path is the storage location: a directory for the file backend,
	// a database file for the sqlite backend. Ignored for memory.
	// A leading "~" expands to the user home directory.
	Path string `yaml:"path" env:"PATH"`
}

// LogConfig controls how the CLI logs.
type LogConfig struct {
	// Level is one of "debug", "info", "warn", "error". Defaults to info.
	Level string `yaml:"level" env:"PREPSTATE_LOG_LEVEL"`

	// Format is "text" or "json". Defaults to text.
	Format string `yaml:"format" env:"PREPSTATE_LOG_FORMAT"`
}

// Load reads and parses the config file at path.
//
// A missing file is not an error: the CLI is expected to work out of the
// box, so Load falls back to pure defaults (plus environment overrides).
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Parse(nil)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse parses YAML config data, applies defaults, overlays environment
// variables, and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := &Config{}

	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env overrides: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// DefaultPath returns the default config file location,
// <user config dir>/prepstate/config.yaml.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "prepstate", "config.yaml")
	}
	return filepath.Join(base, "prepstate", "config.yaml")
}

// defaultDataDir is where state lives when no path is configured.
func defaultDataDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return filepath.Join(".", "prepstate")
	}
	return filepath.Join(base, "prepstate")
}

func (c *Config) applyDefaults() {
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Storage.Path == "" {
		switch c.Storage.Backend {
		case BackendFile:
			c.Storage.Path = defaultDataDir()
		case BackendSQLite:
			c.Storage.Path = filepath.Join(defaultDataDir(), "state.db")
		}
	}
	c.Storage.Path = expandHome(c.Storage.Path)

	if c.Fallback.Backend == "" {
		c.Fallback.Backend = BackendMemory
	}
	c.Fallback.Path = expandHome(c.Fallback.Path)

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks every field against its closed set of accepted values.
func (c *Config) Validate() error {
	if err := validateBackend("storage", c.Storage); err != nil {
		return err
	}
	if err := validateBackend("fallback", c.Fallback); err != nil {
		return err
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q (expected debug, info, warn, or error)", c.Log.Level)
	}

	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q (expected text or json)", c.Log.Format)
	}
	return nil
}

func validateBackend(section string, sc StoreConfig) error {
	switch sc.Backend {
	case BackendFile, BackendSQLite:
		if strings.TrimSpace(sc.Path) == "" {
			return fmt.Errorf("%s: backend %q requires a path", section, sc.Backend)
		}
	case BackendMemory:
	default:
		return fmt.Errorf("%s: unknown backend %q (expected file, sqlite, or memory)", section, sc.Backend)
	}
	return nil
}

// SlogLevel converts the configured level to a slog.Level.
func (c *Config) SlogLevel() slog.Level {
	switch c.Log.Level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// expandHome expands a leading "~" to the user home directory.
func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
