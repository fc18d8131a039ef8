package config

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"time"
)

const (
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/sprout"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"

	EnvDB       = "SPROUT_DB"
	EnvTick     = "SPROUT_TICK"
	EnvLogLevel = "SPROUT_LOG_LEVEL"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger *slog.Logger

	// ExplicitPath is a config file given on the command line.
	ExplicitPath string
	// HomeDir overrides the user's home directory (tests).
	HomeDir string
	// Getenv overrides os.Getenv (tests).
	Getenv func(string) string
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{logger: logger, Getenv: os.Getenv}
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/sprout/config.yaml)
// 3. Explicit config file (--config)
// 4. Environment variables
func (l *Loader) Load() (*Config, error) {
	config := DefaultConfig()

	if userConfigPath := l.userConfigPath(); userConfigPath != "" {
		if userConfig, err := LoadFromFile(userConfigPath); err == nil {
			l.logger.Debug("Loaded user config", slog.String("path", userConfigPath))
			config.Merge(userConfig)
		} else if !errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("Failed to load user config", slog.String("path", userConfigPath), slog.String("error", err.Error()))
		}
	}

	if l.ExplicitPath != "" {
		explicit, err := LoadFromFile(l.ExplicitPath)
		if err != nil {
			return nil, err
		}
		l.logger.Debug("Loaded config", slog.String("path", l.ExplicitPath))
		config.Merge(explicit)
	}

	config.Merge(l.fromEnv())

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (l *Loader) fromEnv() *Config {
	getenv := l.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	env := &Config{}
	env.DB.Path = getenv(EnvDB)
	env.Log.Level = getenv(EnvLogLevel)
	if raw := getenv(EnvTick); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			l.logger.Warn("Ignoring invalid tick interval", slog.String("env", EnvTick), slog.String("value", raw))
		} else {
			env.Garden.TickInterval = d
		}
	}
	return env
}

// userConfigPath returns the path to the user config file
func (l *Loader) userConfigPath() string {
	home := l.HomeDir
	if home == "" {
		h, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		home = h
	}
	return filepath.Join(home, UserConfigDir, UserConfigFile)
}
