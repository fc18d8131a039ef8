// Package config provides configuration loading and management for Sprout.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents the complete Sprout configuration
type Config struct {
	DB     DBConfig     `yaml:"db"`
	Garden GardenConfig `yaml:"garden"`
	Log    LogConfig    `yaml:"log"`
}

// DBConfig configures persistence
type DBConfig struct {
	// Path is the SQLite file (empty = ~/.sprout.db)
	Path string `yaml:"path"`
}

// GardenConfig configures the live session
type GardenConfig struct {
	// TickInterval is how often decay is applied while a session runs
	TickInterval time.Duration `yaml:"tick_interval"`
	// PersistTicks saves after every decay tick instead of only on task
	// completion and exit
	PersistTicks bool `yaml:"persist_ticks"`
}

// LogConfig configures structured logging
type LogConfig struct {
	// Level is one of debug, info, warn, error
	Level string `yaml:"level"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	return &Config{
		DB: DBConfig{
			Path: "", // Resolved by storage
		},
		Garden: GardenConfig{
			TickInterval: 5 * time.Second,
			PersistTicks: false,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	if c.Garden.TickInterval <= 0 {
		return fmt.Errorf("garden.tick_interval must be positive")
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// LoadFromFile loads configuration from a YAML file
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := &Config{}
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveToFile saves configuration to a YAML file
func (c *Config) SaveToFile(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Merge merges another config into this one (other takes precedence for non-zero values).
// PersistTicks can only be switched on by a layer, never off.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}

	if other.DB.Path != "" {
		c.DB.Path = other.DB.Path
	}

	if other.Garden.TickInterval != 0 {
		c.Garden.TickInterval = other.Garden.TickInterval
	}
	if other.Garden.PersistTicks {
		c.Garden.PersistTicks = true
	}

	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
}

// ParseLevel maps a level name to a slog.Level.
func ParseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("log.level %q is not one of debug, info, warn, error", s)
	}
}
