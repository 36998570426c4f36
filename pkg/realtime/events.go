package realtime

import (
	"time"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
)

const (
	EventTypeCurrentState = "current_state"
	EventTypeSensorUpdate = "sensor_update"
	EventTypeAlert        = "alert"
)

// Event is one frame delivered to dashboard sessions. Frames are standalone
// JSON objects carrying their own "type" discriminator.
type Event interface {
	EventType() string
}

type SensorUpdate struct {
	Type       string  `json:"type"`
	SensorType string  `json:"sensor_type"`
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	RecordedAt string  `json:"recorded_at"`
}

func (e SensorUpdate) EventType() string { return EventTypeSensorUpdate }

func NewSensorUpdate(r *models.SensorReading) SensorUpdate {
	return SensorUpdate{
		Type:       EventTypeSensorUpdate,
		SensorType: string(r.SensorType),
		Value:      r.Value,
		Unit:       r.Unit,
		RecordedAt: r.RecordedAt.Format(time.RFC3339),
	}
}

type AlertNotification struct {
	Type      string `json:"type"`
	AlertType string `json:"alert_type"`
	Severity  string `json:"severity"`
	Message   string `json:"message"`
	CreatedAt string `json:"created_at"`
}

func (e AlertNotification) EventType() string { return EventTypeAlert }

func NewAlertNotification(a *models.Alert) AlertNotification {
	return AlertNotification{
		Type:      EventTypeAlert,
		AlertType: string(a.AlertType),
		Severity:  string(a.Severity),
		Message:   a.Message,
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
	}
}

type ReadingSnapshot struct {
	Value      float64 `json:"value"`
	Unit       string  `json:"unit"`
	RecordedAt string  `json:"recorded_at"`
}

// CurrentState is the synthesized snapshot a session receives on connect:
// the latest reading per sensor kind. Events before the connect are gone.
type CurrentState struct {
	Type       string                     `json:"type"`
	LunchboxID uint                       `json:"lunchbox_id"`
	Readings   map[string]ReadingSnapshot `json:"readings"`
}

func (e CurrentState) EventType() string { return EventTypeCurrentState }

func NewCurrentState(lunchboxID uint, latest map[models.SensorType]models.SensorReading) CurrentState {
	readings := make(map[string]ReadingSnapshot, len(latest))
	for sensorType, r := range latest {
		readings[string(sensorType)] = ReadingSnapshot{
			Value:      r.Value,
			Unit:       r.Unit,
			RecordedAt: r.RecordedAt.Format(time.RFC3339),
		}
	}
	return CurrentState{
		Type:       EventTypeCurrentState,
		LunchboxID: lunchboxID,
		Readings:   readings,
	}
}
