// Package config handles configuration loading for the chai-net dashboard.
//
// # Overview
//
// Configuration is loaded from YAML files with environment variable expansion.
// The package provides validation and sensible defaults.
//
// # Configuration File
//
// Default locations (in order):
//
//  1. Path from CHAI_CONFIG environment variable
//  2. ./config.yaml (current directory)
//  3. ~/.config/chai-net/dashboard.yaml
//
// # Environment Variable Expansion
//
// Configuration values can reference environment variables:
//
//	auth:
//	  jwt_secret: "${CHAI_JWT_SECRET}"
//
// Syntax: ${VAR_NAME}
//
// # Configuration Sections
//
// Server settings:
//
//	server:
//	  http_addr: "127.0.0.1:3000"   # Dashboard UI
//
// Backend:
//
//	backend:
//	  base_url: "http://localhost:8000"   # CHAI-NET intelligence service
//
// The CHAI_API_URL environment variable overrides backend.base_url.
//
// Authentication:
//
//	auth:
//	  provider: "dev"                  # "google" or "dev"
//	  jwt_secret: "${CHAI_JWT_SECRET}" # dev provider only, min 32 bytes
//	  client_id: "..."                 # google provider only
//	  client_secret: "..."             # google provider only
//	  redirect_port: 8765              # loopback port for the OAuth redirect
//
// Storage:
//
//	storage:
//	  path: "~/.local/share/chai-net/dashboard.db"
//
// Logging:
//
//	logging:
//	  level: "info"   # debug, info, warn, error
//	  format: "text"  # text, json
//
// # Validation
//
// Load() validates:
//
//   - JWT secret minimum length (32 bytes) for the dev provider
//   - OAuth client credentials for the google provider
//   - Storage path presence
package config
