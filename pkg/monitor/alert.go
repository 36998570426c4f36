package monitor

import (
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
)

// reconcileAlerts turns evaluator candidates into alert events. A non-motion
// candidate reuses the newest unresolved alert of its kind when that alert is
// younger than the dedup window; the reused record is returned so callers
// re-broadcast it instead of duplicating. Motion always creates a fresh
// record.
//
// The lookup-then-create is not serialized: two concurrent batches for the
// same lunchbox can both open an alert of the same kind. Accepted race.
func (m *Monitor) reconcileAlerts(lunchbox *models.Lunchbox, candidates []AlertCandidate) ([]models.Alert, error) {
	if len(candidates) == 0 {
		return nil, nil
	}

	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
	)

	cutoff := time.Now().Add(-m.Cfg.DedupWindow)

	var events []models.Alert
	for _, candidate := range candidates {
		if candidate.Type != models.AlertMotionDetected {
			var existing models.Alert
			err := m.Db.Conn.
				Where("lunchbox_id = ? AND alert_type = ? AND is_resolved = ?", lunchbox.ID, candidate.Type, false).
				Order("created_at desc").
				First(&existing).Error
			if err == nil && existing.CreatedAt.After(cutoff) {
				events = append(events, existing)
				continue
			}
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return events, err
			}
		}

		alert := models.Alert{
			LunchboxID: lunchbox.ID,
			AlertType:  candidate.Type,
			Severity:   candidate.Severity,
			Message:    candidate.Message,
		}

		logger.Info("Alert found", zap.Reflect("alert", alert))

		if err := m.Db.Conn.Create(&alert).Error; err != nil {
			return events, err
		}

		logger.Info("Alert saved", zap.Reflect("alert", alert))
		events = append(events, alert)
	}

	return events, nil
}

// resolveAlert is the only transition out of the open state and is terminal.
// Resolving a closed alert returns ErrAlreadyResolved and never touches
// resolved_at.
func (m *Monitor) resolveAlert(alertID uint) error {
	var alert models.Alert
	if err := m.Db.Conn.First(&alert, alertID).Error; err != nil {
		return err
	}
	if alert.IsResolved {
		return ErrAlreadyResolved
	}

	now := time.Now()
	err := m.Db.Conn.Model(&alert).Updates(map[string]any{
		"is_resolved": true,
		"resolved_at": now,
	}).Error

	if err == nil {
		common.GetLoggerWith(
			common.LoggerNameMonitorCore,
			zap.String(common.LoggerFieldCategory, common.LoggerCategoryAlert),
		).Info("Alert resolved", zap.Uint("alert_id", alertID))
	}

	return err
}

func (m *Monitor) getLunchboxAlerts(lunchboxID uint) ([]models.Alert, error) {
	var alerts []models.Alert
	err := m.Db.Conn.
		Where("lunchbox_id = ?", lunchboxID).
		Order("created_at desc").
		Find(&alerts).Error
	return alerts, err
}

type IAlertImpl struct {
	monitor *Monitor
}

func (ia *IAlertImpl) ReconcileAlerts(lunchbox *models.Lunchbox, candidates []AlertCandidate) ([]models.Alert, error) {
	return ia.monitor.reconcileAlerts(lunchbox, candidates)
}

func (ia *IAlertImpl) ResolveAlert(alertID uint) error {
	return ia.monitor.resolveAlert(alertID)
}

func (ia *IAlertImpl) GetLunchboxAlerts(lunchboxID uint) ([]models.Alert, error) {
	return ia.monitor.getLunchboxAlerts(lunchboxID)
}

func (m *Monitor) GetIAlert() IAlert {
	return &IAlertImpl{monitor: m}
}
