// ABOUTME: Template rendering functions for the dashboard UI
// ABOUTME: Loads templates from embedded filesystem and renders them

package webui

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/EnderMRG/ChaiTea/internal/api"
	"github.com/EnderMRG/ChaiTea/internal/auth"
	"github.com/EnderMRG/ChaiTea/internal/leaf"
)

// Template data types
type loginPageData struct {
	Title       string
	Error       string
	Warning     string
	HasPassword bool
	HasSignup   bool
}

type signupPageData struct {
	Title    string
	Form     signupForm
	Error    string
	Strength string
}

type dashboardData struct {
	Title           string
	Principal       *auth.Principal
	DemoMode        bool
	Language        string
	Metrics         []metricView
	AlertView       *alertView
	Report          *api.CultivationReport
	Recommendations []leaf.Recommendation
	Market          *api.MarketKPIs
	Insight         *api.MarketInsight
	InsightHTML     template.HTML
}

type scanData struct {
	Title           string
	Principal       *auth.Principal
	Language        string
	Error           string
	Report          *api.LeafReport
	Recommendations []leaf.Recommendation
	Condition       []leaf.ConditionMetric
	ReasonHTML      template.HTML
}

// parse loads the base layout plus one page template, binding the
// translator into the funcmap so labels follow the active language.
func (ui *WebUI) parse(page string) *template.Template {
	funcs := template.FuncMap{
		"t":     ui.i18n.Func(),
		"lower": strings.ToLower,
	}
	return template.Must(
		template.New("base.html").Funcs(funcs).ParseFS(templateFS, "templates/base.html", "templates/"+page),
	)
}

func (ui *WebUI) render(w http.ResponseWriter, page string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := ui.parse(page).Execute(w, data); err != nil {
		ui.logger.Error("failed to render page", "page", page, "error", err)
	}
}

// renderLoginPage renders the login page
func (ui *WebUI) renderLoginPage(w http.ResponseWriter, errorMsg, warning string) {
	ui.render(w, "login.html", loginPageData{
		Title:       ui.i18n.T("login"),
		Error:       errorMsg,
		Warning:     warning,
		HasPassword: ui.passwd != nil,
		HasSignup:   ui.signup != nil,
	})
}

// renderSignupPage renders the signup page with the echoed form
func (ui *WebUI) renderSignupPage(w http.ResponseWriter, form signupForm, errorMsg, strength string) {
	ui.render(w, "signup.html", signupPageData{
		Title:    "Create Your Account",
		Form:     form,
		Error:    errorMsg,
		Strength: strength,
	})
}

// renderDashboard renders the main dashboard
func (ui *WebUI) renderDashboard(w http.ResponseWriter, data dashboardData) {
	ui.render(w, "dashboard.html", data)
}

// renderScanPage renders the leaf scanner page
func (ui *WebUI) renderScanPage(w http.ResponseWriter, data scanData) {
	ui.render(w, "scan.html", data)
}
