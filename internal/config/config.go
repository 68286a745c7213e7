// ABOUTME: Configuration loading and parsing for the chai-net dashboard
// ABOUTME: Supports YAML files with environment variable expansion and defaults

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"gopkg.in/yaml.v3"
)

// DefaultBackendURL is used when neither the config file nor the
// CHAI_API_URL environment variable provide a backend address.
const DefaultBackendURL = "http://localhost:8000"

// Config represents the complete chai-dashboard configuration
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Backend BackendConfig `yaml:"backend"`
	Auth    AuthConfig    `yaml:"auth"`
	Storage StorageConfig `yaml:"storage"`
	Logging LoggingConfig `yaml:"logging"`
}

// ServerConfig holds the dashboard HTTP listen address
type ServerConfig struct {
	HTTPAddr string `yaml:"http_addr"`
}

// BackendConfig holds the address of the CHAI-NET intelligence backend
type BackendConfig struct {
	BaseURL string `yaml:"base_url"`
}

// AuthConfig holds credential provider configuration.
// Provider selects between the Google OAuth flow ("google") and the
// local development identity store ("dev").
type AuthConfig struct {
	Provider     string `yaml:"provider"`
	JWTSecret    string `yaml:"jwt_secret"`
	ClientID     string `yaml:"client_id"`
	ClientSecret string `yaml:"client_secret"`
	RedirectPort int    `yaml:"redirect_port"`
}

// StorageConfig holds the preference/identity database path
type StorageConfig struct {
	Path string `yaml:"path"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultPath returns the path to the dashboard config file.
// Priority: CHAI_CONFIG env var > ./config.yaml > ~/.config/chai-net/dashboard.yaml
func DefaultPath() string {
	if envPath := os.Getenv("CHAI_CONFIG"); envPath != "" {
		return envPath
	}

	if _, err := os.Stat("config.yaml"); err == nil {
		return "config.yaml"
	}

	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.yaml" // fallback
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	return filepath.Join(configDir, "chai-net", "dashboard.yaml")
}

// Load reads a configuration file from the given path and returns a parsed Config.
// Environment variables in the format ${VAR_NAME} are expanded.
// The CHAI_API_URL environment variable overrides backend.base_url.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	// Expand environment variables in the raw YAML content
	expandedData := expandEnvVars(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// applyDefaults fills in values that may be omitted from the config file.
// The CHAI_API_URL environment variable wins over the file for the backend
// address.
func (c *Config) applyDefaults() {
	if envURL := os.Getenv("CHAI_API_URL"); envURL != "" {
		c.Backend.BaseURL = envURL
	}
	if c.Backend.BaseURL == "" {
		c.Backend.BaseURL = DefaultBackendURL
	}
	if c.Server.HTTPAddr == "" {
		c.Server.HTTPAddr = "127.0.0.1:3000"
	}
	if c.Auth.Provider == "" {
		c.Auth.Provider = "dev"
	}
	if c.Auth.RedirectPort == 0 {
		c.Auth.RedirectPort = 8765
	}
}

// expandEnvVars replaces ${VAR_NAME} patterns with the corresponding environment variable values.
// If the environment variable is not set, it is replaced with an empty string.
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)

	return re.ReplaceAllStringFunc(s, func(match string) string {
		varName := re.FindStringSubmatch(match)[1]
		return os.Getenv(varName)
	})
}

// Validate checks that all required configuration fields are present and valid.
// Returns an error describing the first validation failure encountered.
func (c *Config) Validate() error {
	switch c.Auth.Provider {
	case "dev":
		if c.Auth.JWTSecret == "" {
			return fmt.Errorf("auth.jwt_secret is required for the dev provider")
		}
		if len(c.Auth.JWTSecret) < 32 {
			return fmt.Errorf("auth.jwt_secret must be at least 32 bytes")
		}
	case "google":
		if c.Auth.ClientID == "" {
			return fmt.Errorf("auth.client_id is required for the google provider")
		}
		if c.Auth.ClientSecret == "" {
			return fmt.Errorf("auth.client_secret is required for the google provider")
		}
	default:
		return fmt.Errorf("auth.provider must be %q or %q, got %q", "google", "dev", c.Auth.Provider)
	}

	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}

	return nil
}
