// ABOUTME: Unit tests for configuration loading and validation
// ABOUTME: Tests env expansion, defaults, overrides, and validation failures

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dashboard.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
server:
  http_addr: "127.0.0.1:4000"
backend:
  base_url: "http://backend:8000"
auth:
  provider: "dev"
  jwt_secret: "0123456789abcdef0123456789abcdef"
storage:
  path: "/tmp/chai-test.db"
logging:
  level: "debug"
  format: "json"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.HTTPAddr != "127.0.0.1:4000" {
		t.Errorf("HTTPAddr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.Backend.BaseURL != "http://backend:8000" {
		t.Errorf("BaseURL = %q", cfg.Backend.BaseURL)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q", cfg.Logging.Level)
	}
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
storage:
  path: "/tmp/chai-test.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.BaseURL != DefaultBackendURL {
		t.Errorf("BaseURL = %q, want %q", cfg.Backend.BaseURL, DefaultBackendURL)
	}
	if cfg.Server.HTTPAddr != "127.0.0.1:3000" {
		t.Errorf("HTTPAddr = %q", cfg.Server.HTTPAddr)
	}
	if cfg.Auth.Provider != "dev" {
		t.Errorf("Provider = %q, want dev", cfg.Auth.Provider)
	}
}

func TestLoad_EnvOverridesBackendURL(t *testing.T) {
	t.Setenv("CHAI_API_URL", "http://override:9000")

	path := writeConfig(t, `
backend:
  base_url: "http://backend:8000"
auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
storage:
  path: "/tmp/chai-test.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Backend.BaseURL != "http://override:9000" {
		t.Errorf("BaseURL = %q, want env override", cfg.Backend.BaseURL)
	}
}

func TestLoad_EnvExpansion(t *testing.T) {
	t.Setenv("CHAI_TEST_SECRET", "0123456789abcdef0123456789abcdef")

	path := writeConfig(t, `
auth:
  jwt_secret: "${CHAI_TEST_SECRET}"
storage:
  path: "/tmp/chai-test.db"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Auth.JWTSecret != "0123456789abcdef0123456789abcdef" {
		t.Errorf("JWTSecret = %q, env var not expanded", cfg.Auth.JWTSecret)
	}
}

func TestLoad_ValidationFailures(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing jwt secret for dev provider",
			content: `
storage:
  path: "/tmp/chai-test.db"
`,
		},
		{
			name: "short jwt secret",
			content: `
auth:
  jwt_secret: "tooshort"
storage:
  path: "/tmp/chai-test.db"
`,
		},
		{
			name: "missing storage path",
			content: `
auth:
  jwt_secret: "0123456789abcdef0123456789abcdef"
`,
		},
		{
			name: "unknown provider",
			content: `
auth:
  provider: "saml"
  jwt_secret: "0123456789abcdef0123456789abcdef"
storage:
  path: "/tmp/chai-test.db"
`,
		},
		{
			name: "google provider without client credentials",
			content: `
auth:
  provider: "google"
storage:
  path: "/tmp/chai-test.db"
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			if _, err := Load(path); err == nil {
				t.Error("Load() should have returned an error")
			}
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load() should have returned an error for a missing file")
	}
}
