// ABOUTME: Tests for banding thresholds, health scoring, and the local alert
// ABOUTME: Table-driven over the documented band boundaries

package cultivation

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBand(t *testing.T) {
	// soil moisture range 55-65, width 10, critical beyond 3 outside
	tests := []struct {
		name  string
		value float64
		want  Status
	}{
		{"inside range", 60, StatusOptimal},
		{"at min", 55, StatusOptimal},
		{"at max", 65, StatusOptimal},
		{"just below min", 54.9, StatusWarning},
		{"just above max", 65.1, StatusWarning},
		{"at warning floor", 52.1, StatusWarning},
		{"far below min", 51.9, StatusCritical},
		{"far above max", 68.1, StatusCritical},
		{"missing reading", math.NaN(), StatusWarning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Band(tt.value, 55, 65))
		})
	}
}

func TestBandMetric_UnknownMetric(t *testing.T) {
	assert.Equal(t, StatusWarning, BandMetric("soil_ph", 5.2))
	assert.Equal(t, StatusOptimal, BandMetric("temperature", 22))
	assert.Equal(t, StatusCritical, BandMetric("temperature", 2))
}

func TestHealthScore_AllOptimal(t *testing.T) {
	reading := Reading{SoilMoisture: 60, Temperature: 22, Humidity: 70, Rainfall7d: 60}
	assert.Equal(t, 100, HealthScore(reading))
}

func TestHealthScore_FullyStressed(t *testing.T) {
	// Every metric a full range-width outside its band: stress saturates at 1.
	reading := Reading{SoilMoisture: 0, Temperature: 60, Humidity: 0, Rainfall7d: 200}
	assert.Equal(t, 0, HealthScore(reading))
}

func TestHealthScore_PartialStress(t *testing.T) {
	// Only soil moisture stressed: 5 below min on a width-10 range is
	// stress 0.5, weighted 0.35, so the score drops by 17.
	reading := Reading{SoilMoisture: 50, Temperature: 22, Humidity: 70, Rainfall7d: 60}
	assert.Equal(t, 82, HealthScore(reading))
}

func TestStressBreakdown(t *testing.T) {
	reading := Reading{SoilMoisture: 50, Temperature: 22, Humidity: 70, Rainfall7d: 60}
	risk, breakdown := StressBreakdown(reading)

	assert.Equal(t, 17, risk)
	assert.Equal(t, 0.5, breakdown["soil_moisture"])
	assert.Zero(t, breakdown["temperature"])
	assert.Zero(t, breakdown["humidity"])
	assert.Zero(t, breakdown["rainfall_7d"])
}

func TestLocalAlert_HealthyFieldDoesNotFire(t *testing.T) {
	alert := LocalAlert(Reading{SoilMoisture: 60, Temperature: 22, Humidity: 70, Rainfall7d: 60})

	assert.False(t, alert.Alert)
	assert.Equal(t, "local", alert.Mode)
	assert.Equal(t, 100, alert.HealthScore)
	assert.Empty(t, alert.Reason)
}

func TestLocalAlert_StressedFieldFires(t *testing.T) {
	alert := LocalAlert(Reading{SoilMoisture: 30, Temperature: 40, Humidity: 70, Rainfall7d: 60})

	assert.True(t, alert.Alert)
	assert.LessOrEqual(t, alert.HealthScore, 60)
	assert.Equal(t, "Stress detected in: soil moisture, temperature", alert.Reason)
}
