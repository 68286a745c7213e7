// ABOUTME: Entry point for the chai-dashboard web server
// ABOUTME: Serves the farm dashboard UI over a local HTTP listener

package main

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fatih/color"

	"github.com/EnderMRG/ChaiTea/internal/api"
	"github.com/EnderMRG/ChaiTea/internal/auth"
	"github.com/EnderMRG/ChaiTea/internal/config"
	"github.com/EnderMRG/ChaiTea/internal/i18n"
	"github.com/EnderMRG/ChaiTea/internal/prefs"
	"github.com/EnderMRG/ChaiTea/internal/session"
	"github.com/EnderMRG/ChaiTea/internal/webui"
)

// Version is set by goreleaser at build time.
var version = "dev"

const banner = `
       _           _                  _
   ___| |__   __ _(_)       _ __  ___| |_
  / __| '_ \ / _' | |_____ | '_ \/ _ \ __|
 | (__| | | | (_| | |_____|| | | |  __/ |_
  \___|_| |_|\__,_|_|      |_| |_|\___|\__|
`

func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: chai-dashboard <command>")
		fmt.Println()
		fmt.Println("Commands:")
		fmt.Println("  serve   Start the dashboard server")
		fmt.Println("  init    Create a starter config file")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var err error
	switch os.Args[1] {
	case "serve":
		err = runServe(ctx)
	case "init":
		err = runInit()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe(ctx context.Context) error {
	configPath := config.DefaultPath()

	// Print banner
	cyan := color.New(color.FgCyan)
	cyan.Print(banner)

	gray := color.New(color.FgHiBlack)
	gray.Printf("    version: %s\n\n", version)

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := setupLogger(cfg.Logging)
	slog.SetDefault(logger)

	green := color.New(color.FgGreen)
	green.Print("    ▶ ")
	fmt.Printf("Config:   %s\n", configPath)
	green.Print("    ▶ ")
	fmt.Printf("HTTP:     http://%s\n", cfg.Server.HTTPAddr)
	green.Print("    ▶ ")
	fmt.Printf("Backend:  %s\n", cfg.Backend.BaseURL)
	green.Print("    ▶ ")
	fmt.Printf("Auth:     %s\n", cfg.Auth.Provider)
	fmt.Println()

	logger.Info("starting chai-dashboard",
		"config", configPath,
		"http_addr", cfg.Server.HTTPAddr,
		"backend", cfg.Backend.BaseURL,
	)

	store, err := prefs.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening preference store: %w", err)
	}
	defer store.Close()

	provider, err := buildProvider(cfg, store)
	if err != nil {
		return err
	}

	sessions := session.New(provider, store, session.NopNavigator{})
	defer sessions.Close()

	client := api.New(cfg.Backend.BaseURL)
	client.SetTokenGetter(sessions.TokenGetter())
	client.SetHeaderInjector(sessions.DemoHeaders)

	ui := webui.New(sessions, client, i18n.New(store), provider)
	mux := http.NewServeMux()
	ui.RegisterRoutes(mux)

	srv := &http.Server{
		Addr:        cfg.Server.HTTPAddr,
		Handler:     mux,
		ReadTimeout: 30 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}

// buildProvider creates the credential provider the config selects.
func buildProvider(cfg *config.Config, store *prefs.Store) (auth.CredentialProvider, error) {
	switch cfg.Auth.Provider {
	case "google":
		return auth.NewGoogleProvider(store, cfg.Auth.ClientID, cfg.Auth.ClientSecret, cfg.Auth.RedirectPort), nil
	case "dev":
		provider, err := auth.NewDevProvider(store, []byte(cfg.Auth.JWTSecret))
		if err != nil {
			return nil, fmt.Errorf("creating dev provider: %w", err)
		}
		return provider, nil
	default:
		return nil, fmt.Errorf("unknown auth provider %q", cfg.Auth.Provider)
	}
}

func setupLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	switch cfg.Level {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		handler = slog.NewTextHandler(os.Stdout, opts)
	}

	return slog.New(handler)
}

// runInit writes a starter config with a fresh JWT secret for the dev
// provider. Refuses to overwrite an existing file.
func runInit() error {
	configPath := config.DefaultPath()
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config already exists at %s", configPath)
	}

	secretBytes := make([]byte, 32)
	if _, err := rand.Read(secretBytes); err != nil {
		return fmt.Errorf("generating JWT secret: %w", err)
	}
	secret := base64.StdEncoding.EncodeToString(secretBytes)

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	dataDir := defaultDataDir()
	content := fmt.Sprintf(`# chai-dashboard configuration
server:
  http_addr: "127.0.0.1:3000"

backend:
  # Address of the CHAI-NET intelligence backend.
  # Overridden by the CHAI_API_URL environment variable.
  base_url: "%s"

auth:
  # "dev" for a local email/password identity store,
  # "google" for the Google sign-in flow (requires client_id/client_secret).
  provider: "dev"
  jwt_secret: "%s"

storage:
  path: "%s"

logging:
  level: "info"
  format: "text"
`, config.DefaultBackendURL, secret, filepath.Join(dataDir, "dashboard.db"))

	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	green := color.New(color.FgGreen)
	green.Printf("✓ Created %s\n", configPath)
	fmt.Println("Run 'chai-dashboard serve' to start.")
	return nil
}

// defaultDataDir picks the dashboard's data directory.
// Priority: XDG_DATA_HOME/chai-net > ~/.local/share/chai-net
func defaultDataDir() string {
	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "data" // fallback
		}
		dataDir = filepath.Join(homeDir, ".local", "share")
	}
	return filepath.Join(dataDir, "chai-net")
}
