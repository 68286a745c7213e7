// ABOUTME: Typed wrappers for the CHAI-NET backend endpoints
// ABOUTME: One result type per endpoint so missing fields fail loudly

package api

import (
	"context"
	"io"
)

// SensorAverages are the rolling means over the most recent readings.
type SensorAverages struct {
	SoilMoisture float64 `json:"soil_moisture"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	Rainfall7d   float64 `json:"rainfall_7d"`
}

// FarmAverages is the response of GET /api/farm/averages.
type FarmAverages struct {
	Status      string         `json:"status"`
	Averages    SensorAverages `json:"averages"`
	SampleCount int            `json:"sample_count"`
	Err         string         `json:"error,omitempty"`
}

// FarmAverages fetches the rolling sensor averages for the farm.
func (c *Client) FarmAverages(ctx context.Context) (*FarmAverages, error) {
	var out FarmAverages
	if err := c.Get(ctx, "/api/farm/averages", &out); err != nil {
		return nil, err
	}
	if out.Err != "" {
		return nil, ErrNoData
	}
	return &out, nil
}

// SeriesPoint is one reading in a time series.
type SeriesPoint struct {
	Time  string  `json:"time"`
	Value float64 `json:"value"`
}

// SoilMoistureSeries fetches the recent soil-moisture readings, oldest first.
func (c *Client) SoilMoistureSeries(ctx context.Context) ([]SeriesPoint, error) {
	var out []SeriesPoint
	if err := c.Get(ctx, "/api/farm/soil-moisture-series", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// TemperatureSeries fetches the recent temperature readings, oldest first.
func (c *Client) TemperatureSeries(ctx context.Context) ([]SeriesPoint, error) {
	var out []SeriesPoint
	if err := c.Get(ctx, "/api/farm/temperature-series", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DailyMetric is one day's aggregated readings.
type DailyMetric struct {
	Day          string  `json:"day"`
	SoilMoisture float64 `json:"soil_moisture"`
	Temperature  float64 `json:"temperature"`
	Humidity     float64 `json:"humidity"`
	Rainfall     float64 `json:"rainfall"`
}

// DailyMetrics fetches per-day aggregates for the past week.
func (c *Client) DailyMetrics(ctx context.Context) ([]DailyMetric, error) {
	var out []DailyMetric
	if err := c.Get(ctx, "/api/farm/daily-metrics", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// CultivationReport is the cultivation engine's assessment of the latest
// IoT reading: health score, risk levels, and AI-written recommendations.
type CultivationReport struct {
	HealthScore      float64           `json:"health_score"`
	PestRisk         string            `json:"pest_risk"`
	DroughtRisk      string            `json:"drought_risk"`
	Action           string            `json:"action"`
	ScoreExplanation map[string]string `json:"score_explanation"`
	Recommendations  []string          `json:"ai_recommendations"`
	Err              string            `json:"error,omitempty"`
}

// LatestCultivation fetches the assessment of the most recent IoT reading.
func (c *Client) LatestCultivation(ctx context.Context) (*CultivationReport, error) {
	var out CultivationReport
	if err := c.Get(ctx, "/api/cultivation/latest", &out); err != nil {
		return nil, err
	}
	if out.Err != "" {
		return nil, ErrNoData
	}
	return &out, nil
}

// SmartAlert is the backend's stress assessment of the latest readings.
type SmartAlert struct {
	Alert           bool               `json:"alert"`
	Mode            string             `json:"mode"`
	HealthScore     float64            `json:"health_score"`
	RiskScore       float64            `json:"risk_score"`
	Reason          string             `json:"reason,omitempty"`
	StressBreakdown map[string]float64 `json:"stress_breakdown,omitempty"`
}

// SmartAlert fetches the AI stress alert for the farm.
func (c *Client) SmartAlert(ctx context.Context) (*SmartAlert, error) {
	var out SmartAlert
	if err := c.Get(ctx, "/api/cultivation/smart-alert", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarketKPIs is the response of GET /api/market/kpis.
type MarketKPIs struct {
	CurrentPrice          float64 `json:"current_price"`
	ForecastPrice         float64 `json:"forecast_price"`
	PriceChangePct        float64 `json:"price_change_pct"`
	MarketDemand          float64 `json:"market_demand"`
	MarketDemandChangeAbs float64 `json:"market_demand_change_abs"`
	Volatility            float64 `json:"volatility"`
	VolatilityChangeAbs   float64 `json:"volatility_change_abs"`
	Err                   string  `json:"error,omitempty"`
}

// MarketKPIs fetches the headline market indicators.
func (c *Client) MarketKPIs(ctx context.Context) (*MarketKPIs, error) {
	var out MarketKPIs
	if err := c.Get(ctx, "/api/market/kpis", &out); err != nil {
		return nil, err
	}
	if out.Err != "" {
		return nil, ErrNoData
	}
	return &out, nil
}

// PricePoint is one week's auction price.
type PricePoint struct {
	Date  string  `json:"week_ending_date"`
	Price float64 `json:"price"`
}

// PriceSeries fetches the recent weekly price history.
func (c *Client) PriceSeries(ctx context.Context) ([]PricePoint, error) {
	var out []PricePoint
	if err := c.Get(ctx, "/api/market/price-series", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// DemandVolatilityPoint is one month's demand and volatility reading.
type DemandVolatilityPoint struct {
	Month      string  `json:"month"`
	Demand     int     `json:"demand"`
	Volatility float64 `json:"volatility"`
}

// DemandVolatility fetches the monthly demand/volatility history.
func (c *Client) DemandVolatility(ctx context.Context) ([]DemandVolatilityPoint, error) {
	var out []DemandVolatilityPoint
	if err := c.Get(ctx, "/api/market/demand-volatility", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// LocationPrice summarizes one auction location's prices.
type LocationPrice struct {
	Location     string  `json:"location"`
	AvgPrice     float64 `json:"avgPrice"`
	CurrentPrice float64 `json:"currentPrice"`
	MinPrice     float64 `json:"minPrice"`
	MaxPrice     float64 `json:"maxPrice"`
	Trend        string  `json:"trend"`
}

// LocationPriceSummary fetches per-location price summaries.
func (c *Client) LocationPriceSummary(ctx context.Context) ([]LocationPrice, error) {
	var out []LocationPrice
	if err := c.Get(ctx, "/api/market/location-price-summary", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MarketInsight is the rule-engine market read with its optional
// AI-written elaboration (markdown).
type MarketInsight struct {
	Signal    string `json:"signal"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	AIMessage string `json:"ai_message"`
}

// MarketInsight fetches the current market insight.
func (c *Client) MarketInsight(ctx context.Context) (*MarketInsight, error) {
	var out MarketInsight
	if err := c.Get(ctx, "/api/market/insight", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// LeafReport is the leaf-quality scanner's verdict for one uploaded image.
type LeafReport struct {
	Grade           string             `json:"grade"`
	DiseaseType     string             `json:"disease_type"`
	CNNPrediction   string             `json:"cnn_prediction"`
	Confidence      float64            `json:"confidence"`
	ConfidenceLevel string             `json:"confidence_level"`
	Severity        string             `json:"severity"`
	SurfaceAnalysis map[string]float64 `json:"surface_analysis"`
	DecisionSource  string             `json:"decision_source"`
	Reason          string             `json:"reason"`
	Recommendations []string           `json:"ai_recommendations"`
}

// ScanLeaf uploads a leaf image for grading. The image travels as a
// multipart file field named "file".
func (c *Client) ScanLeaf(ctx context.Context, filename string, image io.Reader) (*LeafReport, error) {
	var out LeafReport
	if err := c.PostFile(ctx, "/api/leaf-quality", "file", filename, image, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ChatMessage is one turn of chatbot history.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatReply is the chatbot's answer. Source is "AI" when the model
// answered and "Fallback" when the backend used its canned responses.
type ChatReply struct {
	Response         string   `json:"response"`
	Source           string   `json:"source"`
	SuggestedActions []string `json:"suggested_actions"`
}

// Chat sends a message (with optional history) to the farm chatbot.
func (c *Client) Chat(ctx context.Context, message string, history []ChatMessage) (*ChatReply, error) {
	if history == nil {
		history = []ChatMessage{}
	}
	body := map[string]any{"message": message, "history": history}

	var out ChatReply
	if err := c.PostJSON(ctx, "/api/chat", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SimulationInput describes the farm state fed to the action simulator.
type SimulationInput struct {
	LeafGrade    string  `json:"leaf_grade"`
	PestRisk     string  `json:"pest_risk"`
	DroughtRisk  string  `json:"drought_risk"`
	HealthScore  float64 `json:"health_score"`
	MarketSignal string  `json:"market_signal"`
}

// SimulationResult is the simulator's projected outcome.
type SimulationResult struct {
	ExpectedYieldChangePct      float64  `json:"expected_yield_change_pct"`
	EstimatedProfitChange       float64  `json:"estimated_profit_change"`
	RiskLevel                   string   `json:"risk_level"`
	RecommendedHarvestShiftDays int      `json:"recommended_harvest_shift_days"`
	Explanation                 []string `json:"explanation"`
}

// SimulateAction projects the outcome of the recommended farmer action.
func (c *Client) SimulateAction(ctx context.Context, input SimulationInput) (*SimulationResult, error) {
	var out SimulationResult
	if err := c.PostJSON(ctx, "/api/simulate-action", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// YieldStrategyInput selects a selling approach for a given yield.
type YieldStrategyInput struct {
	YieldKg          float64 `json:"yield_kg"`
	SelectedApproach int     `json:"selected_approach"`
}

// YieldStrategy asks the backend for selling strategies for the given
// yield. The response shape is backend-owned and open-ended, so it is
// returned as a raw map for the views to pick over.
func (c *Client) YieldStrategy(ctx context.Context, input YieldStrategyInput) (map[string]any, error) {
	var out map[string]any
	if err := c.PostJSON(ctx, "/api/calculate-yield-strategy", input, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GeneratePDFReport asks the backend to render the farm report and
// returns the raw PDF bytes.
func (c *Client) GeneratePDFReport(ctx context.Context) ([]byte, error) {
	return c.postRaw(ctx, "/api/generate-pdf-report", nil)
}

// ActionPlan is one generated day-by-day plan.
type ActionPlan struct {
	ID        string   `json:"id,omitempty"`
	Title     string   `json:"title"`
	Days      []string `json:"days"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// ActionPlanGenerate asks the backend to generate a fresh action plan.
func (c *Client) ActionPlanGenerate(ctx context.Context) (*ActionPlan, error) {
	var out ActionPlan
	if err := c.PostJSON(ctx, "/api/action-plan/generate", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ActionPlanHistory fetches previously generated plans.
func (c *Client) ActionPlanHistory(ctx context.Context) ([]ActionPlan, error) {
	var out []ActionPlan
	if err := c.Get(ctx, "/api/action-plan/history", &out); err != nil {
		return nil, err
	}
	return out, nil
}
