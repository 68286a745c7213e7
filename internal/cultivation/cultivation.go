// ABOUTME: Sensor reading status banding and the local stress fallback
// ABOUTME: Mirrors the backend health engine so degraded mode stays consistent

package cultivation

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Status bands a sensor reading against its ideal range.
type Status string

const (
	StatusOptimal  Status = "optimal"
	StatusWarning  Status = "warning"
	StatusCritical Status = "critical"
)

// Range is an inclusive ideal band for one sensor metric.
type Range struct {
	Min float64
	Max float64
}

// Ideal ranges for Assam tea cultivation, shared with the backend's
// health engine. Keys match the sensor field names on the wire.
var IdealRanges = map[string]Range{
	"soil_moisture": {Min: 55, Max: 65},
	"temperature":   {Min: 18, Max: 26},
	"humidity":      {Min: 65, Max: 75},
	"rainfall_7d":   {Min: 40, Max: 80},
}

// weights for the composite health score. Soil moisture dominates.
var weights = map[string]float64{
	"soil_moisture": 0.35,
	"temperature":   0.25,
	"humidity":      0.20,
	"rainfall_7d":   0.20,
}

// Band classifies a reading against its ideal range. NaN readings band
// as warning: an absent sensor is a reason to look, not an emergency.
// Beyond 30% of the range's width outside either bound the reading is
// critical.
func Band(value, min, max float64) Status {
	if math.IsNaN(value) || math.IsNaN(min) || math.IsNaN(max) {
		return StatusWarning
	}
	if value >= min && value <= max {
		return StatusOptimal
	}
	span := max - min
	if value < min-span*0.3 || value > max+span*0.3 {
		return StatusCritical
	}
	return StatusWarning
}

// BandMetric bands a reading for a named metric using IdealRanges.
// Unknown metric names band as warning.
func BandMetric(metric string, value float64) Status {
	r, ok := IdealRanges[metric]
	if !ok {
		return StatusWarning
	}
	return Band(value, r.Min, r.Max)
}

// Reading is one complete sensor sample.
type Reading struct {
	SoilMoisture float64
	Temperature  float64
	Humidity     float64
	Rainfall7d   float64
}

func (r Reading) byMetric() map[string]float64 {
	return map[string]float64{
		"soil_moisture": r.SoilMoisture,
		"temperature":   r.Temperature,
		"humidity":      r.Humidity,
		"rainfall_7d":   r.Rainfall7d,
	}
}

// stress is 0 inside the ideal range and grows linearly to 1 at one
// full range-width outside it.
func stress(value float64, r Range) float64 {
	if value >= r.Min && value <= r.Max {
		return 0
	}
	bound := r.Min
	if value > r.Max {
		bound = r.Max
	}
	return math.Min(math.Abs(value-bound)/(r.Max-r.Min), 1)
}

// HealthScore computes the 0-100 composite field health score from a
// reading, 100 meaning every metric sits inside its ideal range.
func HealthScore(reading Reading) int {
	total := 0.0
	values := reading.byMetric()
	for metric, r := range IdealRanges {
		total += weights[metric] * stress(values[metric], r)
	}
	score := int(100 * (1 - total))
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}

// StressBreakdown returns the per-metric stress contributions, rounded
// to three decimals, plus the 0-100 composite risk score.
func StressBreakdown(reading Reading) (riskScore int, breakdown map[string]float64) {
	breakdown = make(map[string]float64, len(IdealRanges))
	total := 0.0
	values := reading.byMetric()
	for metric, r := range IdealRanges {
		s := stress(values[metric], r)
		breakdown[metric] = math.Round(s*1000) / 1000
		total += weights[metric] * s
	}
	riskScore = int(100 * total)
	if riskScore > 100 {
		riskScore = 100
	}
	return riskScore, breakdown
}

// Alert is a locally computed stress assessment. It mirrors the shape
// of the backend smart alert so feature surfaces can render either one.
type Alert struct {
	Alert       bool
	Mode        string
	HealthScore int
	RiskScore   int
	Reason      string
	Breakdown   map[string]float64
}

// alertThreshold is the health score at or below which an alert fires.
const alertThreshold = 60

// LocalAlert computes a degraded alert from the latest reading when the
// backend smart-alert endpoint is unreachable. Mode is "local" so the
// UI can label the result as an on-device estimate.
func LocalAlert(reading Reading) Alert {
	health := HealthScore(reading)
	risk, breakdown := StressBreakdown(reading)

	alert := Alert{
		Mode:        "local",
		HealthScore: health,
		RiskScore:   risk,
		Breakdown:   breakdown,
	}

	if health > alertThreshold {
		return alert
	}

	var stressed []string
	for metric, s := range breakdown {
		if s > 0 {
			stressed = append(stressed, strings.ReplaceAll(metric, "_", " "))
		}
	}
	sort.Strings(stressed)

	alert.Alert = true
	alert.Reason = fmt.Sprintf("Stress detected in: %s", strings.Join(stressed, ", "))
	return alert
}
