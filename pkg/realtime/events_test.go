package realtime

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
)

func TestNewSensorUpdateFrame(t *testing.T) {
	recorded := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	event := NewSensorUpdate(&models.SensorReading{
		SensorType: models.SensorTemperature,
		Value:      21.5,
		Unit:       "C",
		RecordedAt: recorded,
	})

	data, err := json.Marshal(event)
	require.NoError(t, err)

	var frame map[string]any
	require.NoError(t, json.Unmarshal(data, &frame))
	assert.Equal(t, "sensor_update", frame["type"])
	assert.Equal(t, "temp", frame["sensor_type"])
	assert.Equal(t, "2025-03-14T09:26:53Z", frame["recorded_at"])
}

func TestNewAlertNotificationFrame(t *testing.T) {
	event := NewAlertNotification(&models.Alert{
		AlertType: models.AlertGasHigh,
		Severity:  models.SeverityCritical,
		Message:   "Gas level high: 350.00ppm > 200.00",
	})

	assert.Equal(t, EventTypeAlert, event.EventType())
	assert.Equal(t, "gas_high", event.AlertType)
	assert.Equal(t, "critical", event.Severity)
}

func TestNewCurrentStateCoversEveryKindPresent(t *testing.T) {
	latest := map[models.SensorType]models.SensorReading{
		models.SensorTemperature: {SensorType: models.SensorTemperature, Value: 22.0, Unit: "C", RecordedAt: time.Now()},
		models.SensorBattery:     {SensorType: models.SensorBattery, Value: 85.0, Unit: "%", RecordedAt: time.Now()},
	}

	event := NewCurrentState(5, latest)
	assert.Equal(t, EventTypeCurrentState, event.EventType())
	assert.Equal(t, uint(5), event.LunchboxID)
	require.Len(t, event.Readings, 2)
	assert.Equal(t, 22.0, event.Readings["temp"].Value)
	assert.Equal(t, 85.0, event.Readings["batt"].Value)
}
