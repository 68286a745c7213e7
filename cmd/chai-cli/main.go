// ABOUTME: Terminal client for the CHAI-NET farm backend
// ABOUTME: Sign in once, then query farm, market, and scanner data

package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/EnderMRG/ChaiTea/internal/api"
	"github.com/EnderMRG/ChaiTea/internal/auth"
	"github.com/EnderMRG/ChaiTea/internal/config"
	"github.com/EnderMRG/ChaiTea/internal/cultivation"
	"github.com/EnderMRG/ChaiTea/internal/leaf"
	"github.com/EnderMRG/ChaiTea/internal/prefs"
)

const banner = `
       _           _            _ _
   ___| |__   __ _(_)       ___| (_)
  / __| '_ \ / _' | |_____ / __| | |
 | (__| | | | (_| | |_____| (__| | |
  \___|_| |_|\__,_|_|      \___|_|_|
`

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	client := newClient()

	ctx := context.Background()
	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "login":
		err = cmdLogin(ctx)
	case "me":
		err = cmdMe()
	case "averages":
		err = cmdAverages(ctx, client)
	case "market":
		err = cmdMarket(ctx, client)
	case "alert":
		err = cmdAlert(ctx, client)
	case "scan":
		err = cmdScan(ctx, client, args)
	case "chat":
		err = cmdChat(ctx, client, args)
	case "demo":
		err = cmdDemo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		color.Red("Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	cyan := color.New(color.FgCyan)
	yellow := color.New(color.FgYellow)

	cyan.Print(banner)
	fmt.Println()
	fmt.Println("Usage: chai-cli <command> [args]")
	fmt.Println()
	yellow.Println("Commands:")
	fmt.Println("  login              Sign in with email and password")
	fmt.Println("  me                 Show the signed-in identity")
	fmt.Println("  averages           Show current farm sensor averages")
	fmt.Println("  market             Show market prices and forecast")
	fmt.Println("  alert              Show the farm stress alert")
	fmt.Println("  scan <image>       Grade a leaf image")
	fmt.Println("  chat <message>     Ask the farm assistant")
	fmt.Println("  demo [on|off]      Show or set demo mode")
	fmt.Println()
	yellow.Println("Environment:")
	fmt.Println("  CHAI_API_URL       Backend address (default: " + config.DefaultBackendURL + ")")
	fmt.Println("  CHAI_TOKEN         Bearer token (overrides the stored login)")
}

// newClient builds the API client with the stored token and demo mode.
func newClient() *api.Client {
	baseURL := os.Getenv("CHAI_API_URL")
	if baseURL == "" {
		baseURL = config.DefaultBackendURL
	}

	client := api.New(baseURL)
	client.SetTokenGetter(func(ctx context.Context) (string, error) {
		return getToken(), nil
	})
	client.SetHeaderInjector(func() map[string]string {
		if store, err := openPrefs(); err == nil {
			defer store.Close()
			if store.GetBool(prefs.KeyDemoMode, false) {
				return map[string]string{"X-Force-Demo": "true"}
			}
		}
		return nil
	})
	return client
}

// configDir returns the chai-net config directory.
func configDir() string {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "."
		}
		dir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(dir, "chai-net")
}

func tokenPath() string {
	return filepath.Join(configDir(), "token")
}

// getToken returns the bearer token: CHAI_TOKEN first, then the file
// written by "chai-cli login". Empty means unauthenticated.
func getToken() string {
	if token := os.Getenv("CHAI_TOKEN"); token != "" {
		return token
	}
	data, err := os.ReadFile(tokenPath())
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// openPrefs opens the preference store configured for the dashboard,
// so demo mode toggled here is the same demo mode the web UI shows.
func openPrefs() (*prefs.Store, error) {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return prefs.Open(cfg.Storage.Path)
}

// cmdLogin signs in against the local identity store and saves a token.
func cmdLogin(ctx context.Context) error {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Auth.Provider != "dev" {
		return fmt.Errorf("login is only available with the dev auth provider")
	}

	store, err := prefs.Open(cfg.Storage.Path)
	if err != nil {
		return fmt.Errorf("opening preference store: %w", err)
	}
	defer store.Close()

	provider, err := auth.NewDevProvider(store, []byte(cfg.Auth.JWTSecret))
	if err != nil {
		return fmt.Errorf("opening identity store: %w", err)
	}

	reader := bufio.NewReader(os.Stdin)
	fmt.Print("Email: ")
	email, err := reader.ReadString('\n')
	if err != nil {
		return err
	}

	fmt.Print("Password: ")
	password, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Println()
	if err != nil {
		return err
	}

	principal, err := provider.SignInPassword(ctx, strings.TrimSpace(email), string(password))
	if err != nil {
		return err
	}

	token, err := provider.CurrentToken(ctx)
	if err != nil {
		return fmt.Errorf("minting token: %w", err)
	}

	if err := os.MkdirAll(configDir(), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(tokenPath(), []byte(token+"\n"), 0600); err != nil {
		return fmt.Errorf("saving token: %w", err)
	}

	color.Green("✓ Signed in as %s <%s>", principal.Name, principal.Email)
	return nil
}

// cmdMe verifies the stored token and prints its subject.
func cmdMe() error {
	token := getToken()
	if token == "" {
		return fmt.Errorf("not signed in, run 'chai-cli login'")
	}

	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if cfg.Auth.Provider != "dev" {
		fmt.Println("token present (verification requires the dev provider)")
		return nil
	}

	principalID, err := auth.NewJWTVerifier([]byte(cfg.Auth.JWTSecret)).Verify(token)
	if err != nil {
		return fmt.Errorf("stored token invalid: %w", err)
	}

	cyan := color.New(color.FgCyan)
	fmt.Println()
	cyan.Println("  Identity")
	cyan.Println("  --------")
	fmt.Printf("  Principal ID:   %s\n", principalID)
	fmt.Println()
	return nil
}

func cmdAverages(ctx context.Context, client *api.Client) error {
	averages, err := client.FarmAverages(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	printMetric := func(label, key string, value float64, unit string) {
		status := cultivation.BandMetric(key, value)
		fmt.Fprintf(w, "  %s\t%.1f%s\t%s\n", label, value, unit, colorStatus(status))
	}

	fmt.Println()
	printMetric("Soil moisture", "soil_moisture", averages.Averages.SoilMoisture, "%")
	printMetric("Temperature", "temperature", averages.Averages.Temperature, "°C")
	printMetric("Humidity", "humidity", averages.Averages.Humidity, "%")
	printMetric("Rainfall (7d)", "rainfall_7d", averages.Averages.Rainfall7d, "mm")
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n  (%d samples)\n", averages.SampleCount)
	return nil
}

func colorStatus(status cultivation.Status) string {
	switch status {
	case cultivation.StatusOptimal:
		return color.GreenString(string(status))
	case cultivation.StatusCritical:
		return color.RedString(string(status))
	default:
		return color.YellowString(string(status))
	}
}

func cmdMarket(ctx context.Context, client *api.Client) error {
	kpis, err := client.MarketKPIs(ctx)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Printf("  Current price:  ₹%.2f/kg\n", kpis.CurrentPrice)
	fmt.Printf("  Forecast:       ₹%.2f/kg\n", kpis.ForecastPrice)
	change := fmt.Sprintf("%+.1f%%", kpis.PriceChangePct)
	if kpis.PriceChangePct >= 0 {
		fmt.Printf("  Change:         %s\n", color.GreenString(change))
	} else {
		fmt.Printf("  Change:         %s\n", color.RedString(change))
	}

	if insight, err := client.MarketInsight(ctx); err == nil && insight.Title != "" {
		fmt.Printf("\n  %s: %s\n", color.CyanString(insight.Title), insight.Message)
	}
	return nil
}

// cmdAlert prints the backend stress alert, falling back to a local
// computation over the averages when the backend engine is down.
func cmdAlert(ctx context.Context, client *api.Client) error {
	remote, err := client.SmartAlert(ctx)
	if err == nil {
		printAlert(remote.Alert, int(remote.HealthScore), remote.Reason, remote.Mode)
		return nil
	}

	averages, avgErr := client.FarmAverages(ctx)
	if avgErr != nil {
		return fmt.Errorf("smart alert unavailable: %w", err)
	}

	local := cultivation.LocalAlert(cultivation.Reading{
		SoilMoisture: averages.Averages.SoilMoisture,
		Temperature:  averages.Averages.Temperature,
		Humidity:     averages.Averages.Humidity,
		Rainfall7d:   averages.Averages.Rainfall7d,
	})
	printAlert(local.Alert, local.HealthScore, local.Reason, local.Mode)
	return nil
}

func printAlert(alert bool, healthScore int, reason, mode string) {
	fmt.Println()
	if alert {
		color.Red("  ⚠ %s", reason)
	} else {
		color.Green("  ✓ No critical stress detected")
	}
	fmt.Printf("  Health score: %d/100 (%s)\n", healthScore, mode)
}

func cmdScan(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: chai-cli scan <image>")
	}

	file, err := os.Open(args[0])
	if err != nil {
		return err
	}
	defer file.Close()

	report, err := client.ScanLeaf(ctx, filepath.Base(args[0]), file)
	if err != nil {
		return err
	}

	fmt.Println()
	if report.Grade == "healthy" {
		color.Green("  ✓ Healthy leaf")
	} else {
		color.Red("  ⚠ %s", report.CNNPrediction)
	}
	fmt.Printf("  Confidence: %.1f%% (%s)\n", report.Confidence, report.ConfidenceLevel)
	if report.Severity != "" {
		fmt.Printf("  Severity:   %s\n", report.Severity)
	}

	recs := leaf.ParseRecommendations(report.Recommendations)
	if len(recs) > 0 {
		fmt.Println()
		color.Cyan("  Recommendations")
		for _, rec := range recs {
			fmt.Printf("  [%s] %s", strings.ToUpper(string(rec.Priority)), rec.Title)
			if rec.Description != "" {
				fmt.Printf(": %s", rec.Description)
			}
			fmt.Println()
		}
	}
	return nil
}

func cmdChat(ctx context.Context, client *api.Client, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: chai-cli chat <message>")
	}

	reply, err := client.Chat(ctx, strings.Join(args, " "), nil)
	if err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("  " + leaf.CleanModelText(reply.Response))
	for _, action := range reply.SuggestedActions {
		color.Cyan("  → %s", action)
	}
	return nil
}

// cmdDemo shows or flips the shared demo-mode preference.
func cmdDemo(args []string) error {
	store, err := openPrefs()
	if err != nil {
		return err
	}
	defer store.Close()

	if len(args) == 0 {
		if store.GetBool(prefs.KeyDemoMode, false) {
			fmt.Println("demo mode: on")
		} else {
			fmt.Println("demo mode: off")
		}
		return nil
	}

	switch args[0] {
	case "on":
		err = store.SetBool(prefs.KeyDemoMode, true)
	case "off":
		err = store.SetBool(prefs.KeyDemoMode, false)
	default:
		return fmt.Errorf("usage: chai-cli demo [on|off]")
	}
	if err != nil {
		return err
	}
	color.Green("✓ demo mode %s", args[0])
	return nil
}
