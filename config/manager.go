package config

import (
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"time"
)

// ConfigManager handles configuration operations
type ConfigManager struct {
	paths Paths
}

// NewConfigManager creates a new config manager rooted at paths
func NewConfigManager(paths Paths) *ConfigManager {
	return &ConfigManager{paths: paths}
}

// Paths returns the file locations used by this manager
func (c *ConfigManager) Paths() Paths {
	return c.paths
}

// Load reads config.yml, fills defaults for unset fields and applies
// environment overrides. A missing file yields the defaults.
func (c *ConfigManager) Load() (Config, error) {
	cfg, err := c.loadFile()
	if err != nil {
		return Config{}, err
	}

	cfg = applyEnv(cfg)
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", c.paths.ConfigFile(), err)
	}
	return cfg, nil
}

// Save writes cfg to config.yml
func (c *ConfigManager) Save(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := writeConfig(c.paths.ConfigFile(), cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Set changes one key in config.yml. Environment overrides are not written
// back.
func (c *ConfigManager) Set(key, value string) error {
	cfg, err := c.loadFile()
	if err != nil {
		return err
	}
	setter, ok := setters[key]
	if !ok {
		return fmt.Errorf("unknown config key %q (want one of %s)", key, strings.Join(Keys(), ", "))
	}
	if err := setter(&cfg, value); err != nil {
		return fmt.Errorf("invalid value for %s: %w", key, err)
	}
	return c.Save(cfg)
}

// Keys lists the settable config keys
func Keys() []string {
	keys := make([]string, 0, len(setters))
	for k := range setters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var setters = map[string]func(*Config, string) error{
	"base_url":        func(c *Config, v string) error { c.BaseURL = strings.TrimRight(v, "/"); return nil },
	"session_backend": func(c *Config, v string) error { c.SessionBackend = v; return nil },
	"auth_backend":    func(c *Config, v string) error { c.AuthBackend = v; return nil },
	"log_level":       func(c *Config, v string) error { c.LogLevel = v; return nil },
	"log_format":      func(c *Config, v string) error { c.LogFormat = v; return nil },
	"error_dismiss":   durationSetter(func(c *Config) *time.Duration { return &c.ErrorDismiss }),
	"request_timeout": durationSetter(func(c *Config) *time.Duration { return &c.RequestTimeout }),
}

func durationSetter(field func(*Config) *time.Duration) func(*Config, string) error {
	return func(c *Config, v string) error {
		d, err := time.ParseDuration(v)
		if err != nil {
			return err
		}
		*field(c) = d
		return nil
	}
}

// loadFile reads config.yml without environment overrides
func (c *ConfigManager) loadFile() (Config, error) {
	cfg, err := readConfig(c.paths.ConfigFile())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("failed to read config: %w", err)
		}
		cfg = Default()
	}
	return withDefaults(cfg), nil
}

// withDefaults refills string keys written as empty. Durations are taken as
// written; a zero error_dismiss keeps errors until the next attempt.
func withDefaults(cfg Config) Config {
	def := Default()
	if cfg.BaseURL == "" {
		cfg.BaseURL = def.BaseURL
	}
	if cfg.SessionBackend == "" {
		cfg.SessionBackend = def.SessionBackend
	}
	if cfg.AuthBackend == "" {
		cfg.AuthBackend = def.AuthBackend
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = def.LogFormat
	}
	return cfg
}
