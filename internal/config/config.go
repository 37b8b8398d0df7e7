// ABOUTME: Pulse configuration with JSON file storage and env overrides.
// ABOUTME: Session policy knobs, storage backend selection, and sync timeout.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/log"
	"github.com/pulsekit/pulse/internal/session"
	"github.com/pulsekit/pulse/internal/store"
)

// Config stores pulse tool configuration. File values are overridden by
// PULSE_* environment variables.
type Config struct {
	// Backend selects the local storage backend: "badger" (default) or "sqlite".
	Backend string `json:"backend,omitempty" env:"PULSE_BACKEND"`

	// DataDir is the root directory for data storage. Supports ~ expansion.
	// Defaults to ~/.local/share/pulse.
	DataDir string `json:"data_dir,omitempty" env:"PULSE_DATA_DIR"`

	// MaxReadings caps readings per measurement session. 0 means unlimited.
	MaxReadings int `json:"max_readings,omitempty" env:"PULSE_MAX_READINGS"`

	// StartResets controls whether starting an already active measurement
	// session resets its clock.
	StartResets *bool `json:"start_resets,omitempty" env:"PULSE_START_RESETS"`

	// AutoStart controls whether adding to an inactive measurement session
	// starts it first.
	AutoStart *bool `json:"auto_start,omitempty" env:"PULSE_AUTO_START"`

	// SyncTimeoutSeconds bounds a single push or pull network call.
	SyncTimeoutSeconds int `json:"sync_timeout_seconds,omitempty" env:"PULSE_SYNC_TIMEOUT"`
}

// GetBackend returns the configured backend, defaulting to "badger".
func (c *Config) GetBackend() string {
	if c.Backend == "" {
		return "badger"
	}
	return c.Backend
}

// GetDataDir returns the configured data directory with ~ expanded,
// defaulting to the standard XDG data directory.
func (c *Config) GetDataDir() string {
	if c.DataDir == "" {
		return DataDir()
	}
	return ExpandPath(c.DataDir)
}

// SessionConfig converts the file config into tracker policies.
func (c *Config) SessionConfig() session.Config {
	sc := session.DefaultConfig()
	sc.MaxReadings = c.MaxReadings
	if c.StartResets != nil {
		sc.StartResets = *c.StartResets
	}
	if c.AutoStart != nil {
		sc.AutoStart = *c.AutoStart
	}
	return sc
}

// SyncTimeout returns the configured sync timeout, or zero for the default.
func (c *Config) SyncTimeout() time.Duration {
	return time.Duration(c.SyncTimeoutSeconds) * time.Second
}

// OpenStore creates a local Store based on the configured backend.
func (c *Config) OpenStore(logger *log.Logger) (*store.Store, error) {
	return store.Open(c.GetBackend(), c.GetDataDir(), logger)
}

// DataDir returns the default data directory following XDG spec.
func DataDir() string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "pulse")
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "pulse", "config.json")
}

// Load reads config from disk and applies environment overrides.
func Load() (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(GetConfigPath())
	if err == nil {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
