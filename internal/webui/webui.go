// ABOUTME: Dashboard web UI package for the CHAI-NET farm dashboard
// ABOUTME: Login, signup, and route registration over the session store

package webui

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-playground/validator/v10"

	"github.com/EnderMRG/ChaiTea/internal/api"
	"github.com/EnderMRG/ChaiTea/internal/auth"
	"github.com/EnderMRG/ChaiTea/internal/guard"
	"github.com/EnderMRG/ChaiTea/internal/i18n"
	"github.com/EnderMRG/ChaiTea/internal/session"
)

// maxUploadBytes caps leaf image uploads.
const maxUploadBytes = 10 << 20 // 10 MiB

// SignupStore registers new accounts. Only the dev credential provider
// implements it; with Google sign-in the signup form is hidden.
type SignupStore interface {
	SignUp(ctx context.Context, name, email, password string) (*auth.Principal, error)
}

// WebUI handles the dashboard's routes.
type WebUI struct {
	sessions *session.Store
	guard    *guard.Guard
	client   *api.Client
	i18n     *i18n.Translator
	passwd   auth.PasswordAuthenticator // nil when the provider has no password flow
	signup   SignupStore                // nil when the provider has no signup flow
	validate *validator.Validate
	logger   *slog.Logger
}

// New creates the web UI. The provider is inspected for password and
// signup capabilities; routes for flows it does not support render the
// Google sign-in path instead.
func New(sessions *session.Store, client *api.Client, translator *i18n.Translator, provider auth.CredentialProvider) *WebUI {
	ui := &WebUI{
		sessions: sessions,
		guard:    guard.New(sessions),
		client:   client,
		i18n:     translator,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   slog.Default().With("component", "webui"),
	}

	if passwd, ok := provider.(auth.PasswordAuthenticator); ok {
		ui.passwd = passwd
	}
	if signup, ok := provider.(SignupStore); ok {
		ui.signup = signup
	}

	return ui
}

// RegisterRoutes registers all dashboard routes on the given mux.
func (ui *WebUI) RegisterRoutes(mux *http.ServeMux) {
	// Public routes
	mux.HandleFunc("GET /login", ui.handleLoginPage)
	mux.HandleFunc("POST /login", ui.handleLogin)
	mux.HandleFunc("POST /login/google", ui.handleGoogleLogin)
	mux.HandleFunc("GET /signup", ui.handleSignupPage)
	mux.HandleFunc("POST /signup", ui.handleSignup)

	// Protected routes
	mux.HandleFunc("GET /{$}", ui.guard.Protect(ui.handleRoot))
	mux.HandleFunc("GET /dashboard", ui.guard.Protect(ui.handleDashboard))
	mux.HandleFunc("GET /scan", ui.guard.Protect(ui.handleScanPage))
	mux.HandleFunc("POST /scan", ui.guard.Protect(ui.handleScan))
	mux.HandleFunc("POST /logout", ui.guard.Protect(ui.handleLogout))
	mux.HandleFunc("POST /demo/toggle", ui.guard.Protect(ui.handleDemoToggle))
	mux.HandleFunc("POST /language/toggle", ui.guard.Protect(ui.handleLanguageToggle))

	ui.logger.Info("dashboard routes registered")
}

// handleRoot sends signed-in visitors to the dashboard.
func (ui *WebUI) handleRoot(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleLoginPage renders the login page
func (ui *WebUI) handleLoginPage(w http.ResponseWriter, r *http.Request) {
	// Already signed in: straight to the dashboard
	if ui.sessions.Snapshot().SignedIn() {
		http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
		return
	}

	ui.renderLoginPage(w, "", ui.sessions.Snapshot().Warning)
}

// handleLogin processes the email/password form.
func (ui *WebUI) handleLogin(w http.ResponseWriter, r *http.Request) {
	if ui.passwd == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		ui.renderLoginPage(w, "Invalid form submission", "")
		return
	}

	email := r.FormValue("email")
	password := r.FormValue("password")
	if email == "" || password == "" {
		ui.renderLoginPage(w, "Please fill in all fields", "")
		return
	}

	if _, err := ui.passwd.SignInPassword(r.Context(), email, password); err != nil {
		ui.logger.Warn("password sign-in rejected", "email", email)
		ui.renderLoginPage(w, "Invalid email or password", "")
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleGoogleLogin runs the interactive sign-in flow. The HTTP request
// blocks until the browser round-trip completes or fails.
func (ui *WebUI) handleGoogleLogin(w http.ResponseWriter, r *http.Request) {
	if err := ui.sessions.SignIn(r.Context()); err != nil {
		ui.logger.Error("interactive sign-in failed", "error", err)
		ui.renderLoginPage(w, "Sign-in failed. Please try again.", "")
		return
	}

	// A blocked popup is not an error; it lands as a session warning.
	if warning := ui.sessions.Snapshot().Warning; warning != "" {
		ui.renderLoginPage(w, "", warning)
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// signupForm carries the signup fields through validation.
type signupForm struct {
	FullName        string `validate:"required"`
	Email           string `validate:"required,email"`
	Password        string `validate:"required,min=8"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
}

// signupErrorMessage maps the first validation failure to the message
// the form shows.
func signupErrorMessage(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "Please check the form and try again"
	}

	fe := errs[0]
	switch {
	case fe.Tag() == "required":
		return "Please fill in all fields"
	case fe.Field() == "Email":
		return "Please enter a valid email address"
	case fe.Field() == "Password" && fe.Tag() == "min":
		return "Password must be at least 8 characters long"
	case fe.Field() == "ConfirmPassword":
		return "Passwords do not match"
	default:
		return "Please check the form and try again"
	}
}

// handleSignupPage renders the signup page
func (ui *WebUI) handleSignupPage(w http.ResponseWriter, r *http.Request) {
	if ui.signup == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}
	ui.renderSignupPage(w, signupForm{}, "", "")
}

// handleSignup validates and creates a new account, then signs it in.
func (ui *WebUI) handleSignup(w http.ResponseWriter, r *http.Request) {
	if ui.signup == nil {
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		ui.renderSignupPage(w, signupForm{}, "Invalid form submission", "")
		return
	}

	form := signupForm{
		FullName:        r.FormValue("full_name"),
		Email:           r.FormValue("email"),
		Password:        r.FormValue("password"),
		ConfirmPassword: r.FormValue("confirm_password"),
	}

	if err := ui.validate.Struct(form); err != nil {
		ui.renderSignupPage(w, form, signupErrorMessage(err), PasswordStrength(form.Password))
		return
	}

	if _, err := ui.signup.SignUp(r.Context(), form.FullName, form.Email, form.Password); err != nil {
		ui.logger.Warn("signup rejected", "email", form.Email, "error", err)
		ui.renderSignupPage(w, form, "Could not create the account: "+err.Error(), "")
		return
	}

	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// handleLogout ends the session. Provider failures still sign the
// session out locally, so the redirect to login happens regardless.
func (ui *WebUI) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := ui.sessions.SignOut(r.Context()); err != nil {
		ui.logger.Warn("sign-out reported an error", "error", err)
	}
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// handleDemoToggle flips demo mode and reloads the current view so no
// page keeps rendering data from the other mode.
func (ui *WebUI) handleDemoToggle(w http.ResponseWriter, r *http.Request) {
	if err := ui.sessions.ToggleDemoMode(); err != nil {
		ui.logger.Error("demo toggle failed", "error", err)
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// handleLanguageToggle flips the UI language.
func (ui *WebUI) handleLanguageToggle(w http.ResponseWriter, r *http.Request) {
	if err := ui.i18n.Toggle(); err != nil {
		ui.logger.Error("language toggle failed", "error", err)
	}
	http.Redirect(w, r, backTo(r), http.StatusSeeOther)
}

// backTo picks the redirect target after a toggle: the referring page's
// path when there is one, otherwise the dashboard. Only the path is
// kept so the redirect can never leave this server.
func backTo(r *http.Request) string {
	if ref, err := url.Parse(r.Header.Get("Referer")); err == nil && ref.Path != "" {
		return ref.Path
	}
	return "/dashboard"
}
