package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Storage backends
const (
	StorageSQLite = "sqlite"
	StorageFile   = "file"
)

// ConfigFile is the configuration filename under the data directory.
const ConfigFile = "config.json"

// MotionTuning holds the motion-heuristic constants. They are empirically
// chosen and deliberately configurable, not protocol constants.
type MotionTuning struct {
	Alpha             float64 `json:"alpha"`
	ThresholdG        float64 `json:"threshold_g"`
	MinStepIntervalMs int     `json:"min_step_interval_ms"`
}

// Config represents the flat stride configuration.
type Config struct {
	Storage                 string       `json:"storage"`                   // "sqlite" or "file"
	ReminderIntervalMinutes int          `json:"reminder_interval_minutes"` // hydration reminder cadence
	RemindersEnabled        bool         `json:"reminders_enabled"`         // scheduler starts enabled in serve
	NotificationPermission  string       `json:"notification_permission"`   // granted|denied|undetermined|unavailable
	ListenAddr              string       `json:"listen_addr"`               // web shell bind address
	Motion                  MotionTuning `json:"motion"`
}

// Default returns the stock configuration.
func Default() *Config {
	return &Config{
		Storage:                 StorageSQLite,
		ReminderIntervalMinutes: 120,
		NotificationPermission:  "undetermined",
		ListenAddr:              ":8787",
		Motion: MotionTuning{
			Alpha:             0.02,
			ThresholdG:        0.28,
			MinStepIntervalMs: 450,
		},
	}
}

// DefaultDataDir returns ~/.stride, the default data directory.
func DefaultDataDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".stride"), nil
}

// Load reads config.json from the specified directory.
// Returns error if no config found - caller should handle accordingly.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFile)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	cfg.applyDefaults()

	return &cfg, nil
}

// LoadOrDefault reads the config, falling back to defaults when the file is
// missing or unreadable. Configuration problems are never fatal.
func LoadOrDefault(dir string) *Config {
	cfg, err := Load(dir)
	if err != nil {
		return Default()
	}
	return cfg
}

// Save writes config.json to the directory, creating it if needed.
func Save(dir string, cfg *Config) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	path := filepath.Join(dir, ConfigFile)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// applyDefaults fills zero values a hand-edited config may be missing.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Storage == "" {
		c.Storage = def.Storage
	}
	if c.ReminderIntervalMinutes <= 0 {
		c.ReminderIntervalMinutes = def.ReminderIntervalMinutes
	}
	if c.NotificationPermission == "" {
		c.NotificationPermission = def.NotificationPermission
	}
	if c.ListenAddr == "" {
		c.ListenAddr = def.ListenAddr
	}
	if c.Motion.Alpha <= 0 {
		c.Motion.Alpha = def.Motion.Alpha
	}
	if c.Motion.ThresholdG <= 0 {
		c.Motion.ThresholdG = def.Motion.ThresholdG
	}
	if c.Motion.MinStepIntervalMs <= 0 {
		c.Motion.MinStepIntervalMs = def.Motion.MinStepIntervalMs
	}
}
