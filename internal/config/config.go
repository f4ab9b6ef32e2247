// Package config loads the library's settings from a YAML file with
// environment overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// FilePermissions is the mode for files the tool creates.
	FilePermissions = 0o644
	// DirPermissions is the mode for directories the tool creates.
	DirPermissions = 0o755
)

// Storage backends.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Config holds user settings. Zero fields fall back to Default.
type Config struct {
	Backend        string `yaml:"backend"`
	Dir            string `yaml:"dir"`
	Theme          string `yaml:"theme"`
	StrictSnapshot bool   `yaml:"strict_snapshot"`
	LogLevel       string `yaml:"log_level"`
}

// Default returns the built-in settings: JSON files in the working directory.
func Default() Config {
	return Config{
		Backend:  BackendJSON,
		Theme:    "classic",
		LogLevel: "warn",
	}
}

// DefaultPath returns ~/.library/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home: %w", err)
	}
	return filepath.Join(home, ".library", "config.yaml"), nil
}

// Load reads path (a missing file is fine), fills defaults and applies
// LIBRARY_* environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := yaml.Unmarshal(b, &cfg); err != nil {
				return Config{}, fmt.Errorf("parse %s: %w", path, err)
			}
		case errors.Is(err, os.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.Getenv); err != nil {
		return Config{}, err
	}
	cfg.fillDefaults()
	return cfg, cfg.Validate()
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("LIBRARY_BACKEND")); v != "" {
		c.Backend = v
	}
	if v := strings.TrimSpace(getenv("LIBRARY_DIR")); v != "" {
		c.Dir = v
	}
	if v := strings.TrimSpace(getenv("LIBRARY_THEME")); v != "" {
		c.Theme = v
	}
	if v := strings.TrimSpace(getenv("LIBRARY_STRICT")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("LIBRARY_STRICT: %w", err)
		}
		c.StrictSnapshot = b
	}
	return nil
}

func (c *Config) fillDefaults() {
	d := Default()
	c.Backend = strings.ToLower(strings.TrimSpace(c.Backend))
	if c.Backend == "" {
		c.Backend = d.Backend
	}
	if c.Theme == "" {
		c.Theme = d.Theme
	}
	if c.LogLevel == "" {
		c.LogLevel = d.LogLevel
	}
}

// Validate rejects unknown backends and log levels.
func (c Config) Validate() error {
	switch c.Backend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("invalid backend %q: must be one of json|sqlite|memory", c.Backend)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q: must be one of debug|info|warn|error", c.LogLevel)
	}
	return nil
}

// Save writes c to path as YAML, creating the parent directory.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), DirPermissions); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("yaml marshal: %w", err)
	}
	if err := os.WriteFile(path, b, FilePermissions); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
