// ABOUTME: Unit tests for typed endpoint wrappers
// ABOUTME: Tests decoding, no-data sentinels, and multipart uploads

package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func jsonServer(t *testing.T, routes map[string]string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, ok := routes[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		io.WriteString(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFarmAverages_NoData(t *testing.T) {
	server := jsonServer(t, map[string]string{
		"/api/farm/averages": `{"error":"No sensor data found"}`,
	})
	c := New(server.URL)

	_, err := c.FarmAverages(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestSmartAlert_Decodes(t *testing.T) {
	server := jsonServer(t, map[string]string{
		"/api/cultivation/smart-alert": `{"alert":true,"mode":"AI","health_score":61.5,"risk_score":38.5,"reason":"Stress detected in: soil moisture","stress_breakdown":{"soil_moisture":0.7}}`,
	})
	c := New(server.URL)

	alert, err := c.SmartAlert(context.Background())
	require.NoError(t, err)
	assert.True(t, alert.Alert)
	assert.Equal(t, "AI", alert.Mode)
	assert.InDelta(t, 38.5, alert.RiskScore, 0.001)
	assert.Contains(t, alert.Reason, "soil moisture")
}

func TestMarketKPIs_Decodes(t *testing.T) {
	server := jsonServer(t, map[string]string{
		"/api/market/kpis": `{"current_price":187.5,"forecast_price":192.3,"price_change_pct":1.2,"market_demand":42,"market_demand_change_abs":3.5,"volatility":2.81,"volatility_change_abs":-0.12}`,
	})
	c := New(server.URL)

	kpis, err := c.MarketKPIs(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 187.5, kpis.CurrentPrice, 0.001)
	assert.InDelta(t, 192.3, kpis.ForecastPrice, 0.001)
	assert.InDelta(t, -0.12, kpis.VolatilityChangeAbs, 0.001)
}

func TestMarketKPIs_InsufficientData(t *testing.T) {
	server := jsonServer(t, map[string]string{
		"/api/market/kpis": `{"error":"Insufficient market data"}`,
	})
	c := New(server.URL)

	_, err := c.MarketKPIs(context.Background())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestLatestCultivation_Decodes(t *testing.T) {
	server := jsonServer(t, map[string]string{
		"/api/cultivation/latest": `{
			"health_score": 78,
			"pest_risk": "Low",
			"drought_risk": "Medium",
			"action": "Monitor and maintain current practices",
			"score_explanation": {"soil_moisture":"Optimal","temperature":"Suboptimal"},
			"ai_recommendations": ["Irrigate lightly: keep soil moisture near 60%."]
		}`,
	})
	c := New(server.URL)

	report, err := c.LatestCultivation(context.Background())
	require.NoError(t, err)
	assert.InDelta(t, 78, report.HealthScore, 0.001)
	assert.Equal(t, "Medium", report.DroughtRisk)
	assert.Equal(t, "Optimal", report.ScoreExplanation["soil_moisture"])
	require.Len(t, report.Recommendations, 1)
}

func TestScanLeaf_UploadsMultipart(t *testing.T) {
	var gotField, gotFilename, gotContent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		for field, files := range r.MultipartForm.File {
			gotField = field
			gotFilename = files[0].Filename
			f, err := files[0].Open()
			require.NoError(t, err)
			content, _ := io.ReadAll(f)
			gotContent = string(content)
			f.Close()
		}
		json.NewEncoder(w).Encode(map[string]any{
			"grade":            "Diseased",
			"disease_type":     "brown blight",
			"cnn_prediction":   "brown blight",
			"confidence":       0.91,
			"confidence_level": "High",
			"severity":         "Moderate",
			"decision_source":  "CNN",
		})
	}))
	defer server.Close()

	c := New(server.URL)
	report, err := c.ScanLeaf(context.Background(), "leaf.jpg", strings.NewReader("image-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "file", gotField)
	assert.Equal(t, "leaf.jpg", gotFilename)
	assert.Equal(t, "image-bytes", gotContent)
	assert.Equal(t, "Diseased", report.Grade)
	assert.Equal(t, "brown blight", report.DiseaseType)
	assert.Equal(t, "High", report.ConfidenceLevel)
}

func TestChat_SendsMessageAndHistory(t *testing.T) {
	var gotBody map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{
			"response":          "Irrigate before noon.",
			"source":            "AI",
			"suggested_actions": []string{"Check soil moisture"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	reply, err := c.Chat(context.Background(), "when should I irrigate?", []ChatMessage{
		{Role: "user", Content: "hello"},
	})
	require.NoError(t, err)

	assert.Equal(t, "when should I irrigate?", gotBody["message"])
	assert.Len(t, gotBody["history"], 1)
	assert.Equal(t, "AI", reply.Source)
	assert.Equal(t, []string{"Check soil moisture"}, reply.SuggestedActions)
}

func TestSimulateAction_RoundTrip(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var input SimulationInput
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "A", input.LeafGrade)
		json.NewEncoder(w).Encode(map[string]any{
			"expected_yield_change_pct":      14,
			"estimated_profit_change":        5000,
			"risk_level":                     "Low",
			"recommended_harvest_shift_days": 7,
			"explanation":                    []string{"Rule-based engine used for transparent decision support"},
		})
	}))
	defer server.Close()

	c := New(server.URL)
	result, err := c.SimulateAction(context.Background(), SimulationInput{
		LeafGrade:    "A",
		PestRisk:     "Low",
		DroughtRisk:  "Low",
		HealthScore:  85,
		MarketSignal: "opportunity",
	})
	require.NoError(t, err)
	assert.InDelta(t, 14, result.ExpectedYieldChangePct, 0.001)
	assert.Equal(t, "Low", result.RiskLevel)
	assert.Equal(t, 7, result.RecommendedHarvestShiftDays)
}

func TestGeneratePDFReport_ReturnsRawBytes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/pdf")
		w.Write([]byte("%PDF-1.4 fake"))
	}))
	defer server.Close()

	c := New(server.URL)
	pdf, err := c.GeneratePDFReport(context.Background())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}
