// ABOUTME: Protected page handlers: dashboard data assembly and leaf scanning
// ABOUTME: Backend calls degrade per-section instead of failing the page

package webui

import (
	"errors"
	"math"
	"net/http"

	"github.com/EnderMRG/ChaiTea/internal/api"
	"github.com/EnderMRG/ChaiTea/internal/cultivation"
	"github.com/EnderMRG/ChaiTea/internal/guard"
	"github.com/EnderMRG/ChaiTea/internal/leaf"
)

// metricView is one sensor card on the dashboard.
type metricView struct {
	Key    string
	Value  float64
	Status cultivation.Status
}

// alertView unifies the backend smart alert and the local fallback.
type alertView struct {
	Alert       bool
	Mode        string
	HealthScore int
	RiskScore   int
	Reason      string
}

// handleDashboard assembles the main dashboard. Each backend section is
// fetched independently; a failed call blanks its section rather than
// erroring the whole page, and the smart alert degrades to a local
// computation over the fetched averages.
func (ui *WebUI) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	principal := guard.PrincipalFromContext(ctx)
	data := dashboardData{
		Title:     ui.i18n.T("dashboard"),
		Principal: principal,
		DemoMode:  ui.sessions.Snapshot().DemoMode,
		Language:  string(ui.i18n.Language()),
	}

	averages, err := ui.client.FarmAverages(ctx)
	if err != nil {
		if !errors.Is(err, api.ErrNoData) {
			ui.logger.Warn("farm averages unavailable", "error", err)
		}
	} else {
		data.Metrics = []metricView{
			{Key: "soilMoisture", Value: averages.Averages.SoilMoisture,
				Status: cultivation.BandMetric("soil_moisture", averages.Averages.SoilMoisture)},
			{Key: "temperature", Value: averages.Averages.Temperature,
				Status: cultivation.BandMetric("temperature", averages.Averages.Temperature)},
			{Key: "humidity", Value: averages.Averages.Humidity,
				Status: cultivation.BandMetric("humidity", averages.Averages.Humidity)},
			{Key: "rainfall", Value: averages.Averages.Rainfall7d,
				Status: cultivation.BandMetric("rainfall_7d", averages.Averages.Rainfall7d)},
		}
	}

	data.AlertView = ui.fetchAlert(r, averages)

	if report, err := ui.client.LatestCultivation(ctx); err != nil {
		if !errors.Is(err, api.ErrNoData) {
			ui.logger.Warn("cultivation report unavailable", "error", err)
		}
	} else {
		data.Report = report
		data.Recommendations = leaf.ParseRecommendations(report.Recommendations)
	}

	if kpis, err := ui.client.MarketKPIs(ctx); err != nil {
		if !errors.Is(err, api.ErrNoData) {
			ui.logger.Warn("market KPIs unavailable", "error", err)
		}
	} else {
		data.Market = kpis
	}

	if insight, err := ui.client.MarketInsight(ctx); err != nil {
		ui.logger.Warn("market insight unavailable", "error", err)
	} else {
		data.Insight = insight
		data.InsightHTML = renderMarkdown(insight.AIMessage)
	}

	ui.renderDashboard(w, data)
}

// fetchAlert fetches the backend smart alert, falling back to the local
// stress computation over the farm averages when the call fails.
func (ui *WebUI) fetchAlert(r *http.Request, averages *api.FarmAverages) *alertView {
	remote, err := ui.client.SmartAlert(r.Context())
	if err == nil {
		return &alertView{
			Alert:       remote.Alert,
			Mode:        remote.Mode,
			HealthScore: int(math.Round(remote.HealthScore)),
			RiskScore:   int(math.Round(remote.RiskScore)),
			Reason:      remote.Reason,
		}
	}

	ui.logger.Warn("smart alert unavailable, computing locally", "error", err)
	if averages == nil {
		return nil
	}

	local := cultivation.LocalAlert(cultivation.Reading{
		SoilMoisture: averages.Averages.SoilMoisture,
		Temperature:  averages.Averages.Temperature,
		Humidity:     averages.Averages.Humidity,
		Rainfall7d:   averages.Averages.Rainfall7d,
	})
	return &alertView{
		Alert:       local.Alert,
		Mode:        local.Mode,
		HealthScore: local.HealthScore,
		RiskScore:   local.RiskScore,
		Reason:      local.Reason,
	}
}

// handleScanPage renders the empty upload form.
func (ui *WebUI) handleScanPage(w http.ResponseWriter, r *http.Request) {
	ui.renderScanPage(w, scanData{
		Title:     ui.i18n.T("leafQualityScanner"),
		Principal: guard.PrincipalFromContext(r.Context()),
		Language:  string(ui.i18n.Language()),
	})
}

// handleScan forwards the uploaded leaf image to the grading backend
// and renders the report.
func (ui *WebUI) handleScan(w http.ResponseWriter, r *http.Request) {
	data := scanData{
		Title:     ui.i18n.T("leafQualityScanner"),
		Principal: guard.PrincipalFromContext(r.Context()),
		Language:  string(ui.i18n.Language()),
	}

	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		data.Error = ui.i18n.T("selectFile")
		ui.renderScanPage(w, data)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		data.Error = ui.i18n.T("selectFile")
		ui.renderScanPage(w, data)
		return
	}
	defer file.Close()

	report, err := ui.client.ScanLeaf(r.Context(), header.Filename, file)
	if err != nil {
		ui.logger.Error("leaf scan failed", "filename", header.Filename, "error", err)
		data.Error = "Backend unavailable or ML error"
		ui.renderScanPage(w, data)
		return
	}

	data.Report = report
	data.Recommendations = leaf.ParseRecommendations(report.Recommendations)
	data.Condition = leaf.ConditionMetrics(report.Grade)
	data.ReasonHTML = renderMarkdown(leaf.CleanModelText(report.Reason))
	ui.renderScanPage(w, data)
}
