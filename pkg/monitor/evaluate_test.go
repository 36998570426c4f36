package monitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
	_ "lunchbox.dev/lunchbox-monitoring-service/pkg/testing"
)

func reading(sensorType models.SensorType, value float64, unit string) models.SensorReading {
	return models.SensorReading{SensorType: sensorType, Value: value, Unit: unit}
}

func TestEvaluate_NoTriggerAtExactThreshold(t *testing.T) {
	rules := DefaultRules()

	// temp and humi compare strictly greater, batt strictly less
	candidates := Evaluate(rules, []models.SensorReading{
		reading(models.SensorTemperature, 30.0, "C"),
		reading(models.SensorHumidity, 75.0, "%"),
		reading(models.SensorGas, 200.0, "ppm"),
		reading(models.SensorBattery, 20.0, "%"),
	})
	assert.Empty(t, candidates)
}

func TestEvaluate_ProximityTriggersAtExactThreshold(t *testing.T) {
	candidates := Evaluate(DefaultRules(), []models.SensorReading{
		reading(models.SensorProximity, 10.0, "cm"),
	})
	require.Len(t, candidates, 1)
	assert.Equal(t, models.AlertProximityNear, candidates[0].Type)
	assert.Equal(t, models.SeverityWarning, candidates[0].Severity)
}

func TestEvaluate_SeveritySplit(t *testing.T) {
	rules := DefaultRules()

	cases := []struct {
		name     string
		readings []models.SensorReading
		alert    models.AlertType
		severity models.Severity
	}{
		{"temp warning below critical", []models.SensorReading{reading(models.SensorTemperature, 34.9, "C")}, models.AlertTemperatureHigh, models.SeverityWarning},
		{"temp critical at boundary", []models.SensorReading{reading(models.SensorTemperature, 35.0, "C")}, models.AlertTemperatureHigh, models.SeverityCritical},
		{"gas warning below critical", []models.SensorReading{reading(models.SensorGas, 299.0, "ppm")}, models.AlertGasHigh, models.SeverityWarning},
		{"gas critical at boundary", []models.SensorReading{reading(models.SensorGas, 300.0, "ppm")}, models.AlertGasHigh, models.SeverityCritical},
		{"battery warning at critical boundary", []models.SensorReading{reading(models.SensorBattery, 15.0, "%")}, models.AlertBatteryLow, models.SeverityWarning},
		{"battery critical below boundary", []models.SensorReading{reading(models.SensorBattery, 14.9, "%")}, models.AlertBatteryLow, models.SeverityCritical},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			candidates := Evaluate(rules, tc.readings)
			require.Len(t, candidates, 1)
			assert.Equal(t, tc.alert, candidates[0].Type)
			assert.Equal(t, tc.severity, candidates[0].Severity)
		})
	}
}

func TestEvaluate_TemperatureLow(t *testing.T) {
	candidates := Evaluate(DefaultRules(), []models.SensorReading{
		reading(models.SensorTemperature, 2.0, "C"),
	})
	require.Len(t, candidates, 1)
	assert.Equal(t, models.AlertTemperatureLow, candidates[0].Type)
	assert.Equal(t, models.SeverityCritical, candidates[0].Severity)

	// the boundary itself is in range
	candidates = Evaluate(DefaultRules(), []models.SensorReading{
		reading(models.SensorTemperature, 4.0, "C"),
	})
	assert.Empty(t, candidates)
}

func TestEvaluate_LastValuePerKindWins(t *testing.T) {
	// the earlier 40.0 would be critical, but only the last value counts
	candidates := Evaluate(DefaultRules(), []models.SensorReading{
		reading(models.SensorTemperature, 40.0, "C"),
		reading(models.SensorTemperature, 25.0, "C"),
	})
	assert.Empty(t, candidates)

	candidates = Evaluate(DefaultRules(), []models.SensorReading{
		reading(models.SensorTemperature, 25.0, "C"),
		reading(models.SensorTemperature, 40.0, "C"),
	})
	require.Len(t, candidates, 1)
	assert.Equal(t, models.SeverityCritical, candidates[0].Severity)
}

func TestEvaluate_MotionFiresOnAnyPositiveValue(t *testing.T) {
	candidates := Evaluate(DefaultRules(), []models.SensorReading{
		reading(models.SensorMotion, 1.0, ""),
	})
	require.Len(t, candidates, 1)
	assert.Equal(t, models.AlertMotionDetected, candidates[0].Type)
	assert.Equal(t, "Motion detected", candidates[0].Message)

	candidates = Evaluate(DefaultRules(), []models.SensorReading{
		reading(models.SensorMotion, 0.0, ""),
	})
	assert.Empty(t, candidates)
}

func TestEvaluate_MixedBatchProducesOneCandidatePerRule(t *testing.T) {
	candidates := Evaluate(DefaultRules(), []models.SensorReading{
		reading(models.SensorTemperature, 36.0, "C"),
		reading(models.SensorHumidity, 80.0, "%"),
		reading(models.SensorBattery, 10.0, "%"),
		reading(models.SensorMotion, 1.0, ""),
	})
	require.Len(t, candidates, 4)

	types := make([]models.AlertType, 0, len(candidates))
	for _, c := range candidates {
		types = append(types, c.Type)
	}
	assert.Equal(t, []models.AlertType{
		models.AlertTemperatureHigh,
		models.AlertHumidityHigh,
		models.AlertBatteryLow,
		models.AlertMotionDetected,
	}, types)
}
