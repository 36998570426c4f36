package monitor

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/realtime"
)

type ReadingInput struct {
	SensorType string   `json:"sensor_type"`
	Value      *float64 `json:"value"`
	Unit       string   `json:"unit"`
	RecordedAt string   `json:"recorded_at,omitempty"`
}

type IngestRequest struct {
	APIKey   string         `json:"api_key"`
	Readings []ReadingInput `json:"readings"`
}

type IngestResult struct {
	Created  int
	Lunchbox *models.Lunchbox
}

// ingestReadings runs the pipeline for one device batch: authenticate,
// validate, write, evaluate, reconcile, broadcast. The write is one bulk
// insert; anything invalid rejects the whole batch with no partial
// persistence. Evaluator/lifecycle and broadcast failures never roll the
// written readings back.
func (m *Monitor) ingestReadings(req *IngestRequest) (*IngestResult, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryIngest),
	)

	lunchbox, err := m.Device.FindActiveByAPIKey(req.APIKey)
	if err != nil {
		return nil, err
	}

	readings, verr := m.validateBatch(lunchbox, req.Readings)
	if verr != nil {
		return nil, verr
	}

	if err := m.Db.Conn.Create(&readings).Error; err != nil {
		return nil, err
	}

	logger.Info("Ingested readings",
		zap.Uint("lunchbox_id", lunchbox.ID),
		zap.Int("count", len(readings)))

	alerts, err := m.Alert.ReconcileAlerts(lunchbox, Evaluate(m.Threshold.RulesFor(lunchbox.ID), readings))
	if err != nil {
		logger.Error("Alert reconciliation failed",
			zap.Uint("lunchbox_id", lunchbox.ID),
			zap.Error(err))
	}

	m.broadcastBatch(lunchbox, readings, alerts)

	return &IngestResult{Created: len(readings), Lunchbox: lunchbox}, nil
}

func (m *Monitor) validateBatch(lunchbox *models.Lunchbox, inputs []ReadingInput) ([]models.SensorReading, *ValidationError) {
	verr := NewValidationError()

	if len(inputs) == 0 {
		verr.Add("readings", "this list may not be empty")
		return nil, verr
	}

	now := time.Now()
	readings := make([]models.SensorReading, 0, len(inputs))
	for i, input := range inputs {
		var missing []string
		if input.SensorType == "" {
			missing = append(missing, "sensor_type")
		}
		if input.Value == nil {
			missing = append(missing, "value")
		}
		if input.Unit == "" {
			missing = append(missing, "unit")
		}
		if len(missing) > 0 {
			verr.Add(fmt.Sprintf("readings[%d]", i), "missing fields: "+strings.Join(missing, ", "))
			continue
		}

		sensorType := models.SensorType(input.SensorType)
		if !models.IsValidSensorType(sensorType) {
			verr.Add(fmt.Sprintf("readings[%d].sensor_type", i), "invalid sensor type")
			continue
		}

		recordedAt := now
		if input.RecordedAt != "" {
			parsed, err := time.Parse(time.RFC3339, input.RecordedAt)
			if err != nil {
				verr.Add(fmt.Sprintf("readings[%d].recorded_at", i), "invalid datetime")
				continue
			}
			recordedAt = parsed
			// device clocks drift; clamp anything too far ahead to server now
			if recordedAt.Sub(now) > m.Cfg.FutureSkew {
				recordedAt = now
			}
		}

		readings = append(readings, models.SensorReading{
			LunchboxID: lunchbox.ID,
			SensorType: sensorType,
			Value:      *input.Value,
			Unit:       input.Unit,
			RecordedAt: recordedAt,
		})
	}

	if verr.HasErrors() {
		return nil, verr
	}
	return readings, nil
}

// broadcastBatch is best-effort: one sensor_update per last-reading-per-kind
// (mirroring what the evaluator saw), then one alert frame per alert event.
// Failures are logged and never reach the ingestion result.
func (m *Monitor) broadcastBatch(lunchbox *models.Lunchbox, readings []models.SensorReading, alerts []models.Alert) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryBroadcast),
	)

	defer func() {
		if r := recover(); r != nil {
			logger.Warn("Broadcast skipped", zap.Any("reason", r))
		}
	}()

	if m.Publisher == nil {
		return
	}

	latest := make(map[models.SensorType]int, len(readings))
	order := make([]models.SensorType, 0, len(readings))
	for i := range readings {
		if _, seen := latest[readings[i].SensorType]; !seen {
			order = append(order, readings[i].SensorType)
		}
		latest[readings[i].SensorType] = i
	}

	for _, sensorType := range order {
		m.Publisher.Publish(lunchbox.ID, realtime.NewSensorUpdate(&readings[latest[sensorType]]))
	}
	for i := range alerts {
		m.Publisher.Publish(lunchbox.ID, realtime.NewAlertNotification(&alerts[i]))
	}
}

// latestReadings computes the current-state snapshot on demand: the newest
// reading per sensor kind for one lunchbox.
func (m *Monitor) latestReadings(lunchboxID uint) (map[models.SensorType]models.SensorReading, error) {
	var readings []models.SensorReading
	err := m.Db.Conn.
		Where("lunchbox_id = ?", lunchboxID).
		Order("sensor_type asc, recorded_at desc").
		Find(&readings).Error
	if err != nil {
		return nil, err
	}

	latest := make(map[models.SensorType]models.SensorReading)
	for _, r := range readings {
		if _, ok := latest[r.SensorType]; !ok {
			latest[r.SensorType] = r
		}
	}
	return latest, nil
}

type IIngestImpl struct {
	monitor *Monitor
}

func (ii *IIngestImpl) IngestReadings(req *IngestRequest) (*IngestResult, error) {
	return ii.monitor.ingestReadings(req)
}

func (ii *IIngestImpl) LatestReadings(lunchboxID uint) (map[models.SensorType]models.SensorReading, error) {
	return ii.monitor.latestReadings(lunchboxID)
}

func (m *Monitor) GetIIngest() IIngest {
	return &IIngestImpl{monitor: m}
}
