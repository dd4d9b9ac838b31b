package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Session storage backends
const (
	SessionBackendFile    = "file"
	SessionBackendKeyring = "keyring"
)

// Authentication backends
const (
	AuthBackendAPI      = "api"
	AuthBackendSupabase = "supabase"
)

const (
	defaultBaseURL      = "http://localhost:8080"
	defaultErrorDismiss = 5 * time.Second
	homeDirName         = ".ems"
)

// Config represents the application configuration
type Config struct {
	BaseURL        string        `yaml:"base_url"`
	SessionBackend string        `yaml:"session_backend"`
	AuthBackend    string        `yaml:"auth_backend"`
	LogLevel       string        `yaml:"log_level"`
	LogFormat      string        `yaml:"log_format"`
	ErrorDismiss   time.Duration `yaml:"error_dismiss"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// UnmarshalYAML accepts bare integers for durations as seconds, so
// "error_dismiss: 0" reads the same as "error_dismiss: 0s"
func (c *Config) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(value.Content); i += 2 {
			key, val := value.Content[i], value.Content[i+1]
			if (key.Value == "error_dismiss" || key.Value == "request_timeout") && val.ShortTag() == "!!int" {
				val.Value += "s"
				val.Tag = "!!str"
			}
		}
	}
	type plain Config
	return value.Decode((*plain)(c))
}

// Default returns the configuration used when no file exists
func Default() Config {
	return Config{
		BaseURL:        defaultBaseURL,
		SessionBackend: SessionBackendFile,
		AuthBackend:    AuthBackendAPI,
		LogLevel:       "info",
		LogFormat:      "console",
		ErrorDismiss:   defaultErrorDismiss,
	}
}

// Validate checks enumerated settings
func (c Config) Validate() error {
	switch c.SessionBackend {
	case SessionBackendFile, SessionBackendKeyring:
	default:
		return fmt.Errorf("unknown session_backend %q (want %q or %q)", c.SessionBackend, SessionBackendFile, SessionBackendKeyring)
	}
	switch c.AuthBackend {
	case AuthBackendAPI, AuthBackendSupabase:
	default:
		return fmt.Errorf("unknown auth_backend %q (want %q or %q)", c.AuthBackend, AuthBackendAPI, AuthBackendSupabase)
	}
	if c.ErrorDismiss < 0 || c.RequestTimeout < 0 {
		return fmt.Errorf("durations must not be negative")
	}
	return nil
}

// Paths locates the files owned by the client
type Paths struct {
	Home string
}

// DefaultPaths resolves the client home from EMS_HOME or ~/.ems
func DefaultPaths() (Paths, error) {
	if home := os.Getenv("EMS_HOME"); home != "" {
		return Paths{Home: home}, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Paths{}, fmt.Errorf("unable to determine user home directory: %w", err)
	}
	return Paths{Home: filepath.Join(homeDir, homeDirName)}, nil
}

// ConfigFile returns the path of config.yml
func (p Paths) ConfigFile() string {
	return filepath.Join(p.Home, "config.yml")
}

// SessionFile returns the path of session.yml
func (p Paths) SessionFile() string {
	return filepath.Join(p.Home, "session.yml")
}

// LogFile returns the path of ems.log
func (p Paths) LogFile() string {
	return filepath.Join(p.Home, "ems.log")
}

// readConfig reads the configuration from path. Keys absent from the file
// keep their default values.
// This is private - use ConfigManager methods instead
func readConfig(path string) (Config, error) {
	config := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return config, err
	}
	err = yaml.Unmarshal(data, &config)
	return config, err
}

// writeConfig writes the configuration to path.
// This is private - use ConfigManager methods instead
func writeConfig(path string, config Config) error {
	data, err := yaml.Marshal(&config)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}
