package monitor

import (
	"go.uber.org/zap"
	"gorm.io/gorm/clause"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
)

func (m *Monitor) upsertOverride(lunchboxID uint, input *models.ThresholdOverride) error {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryThreshold),
	)

	override := models.ThresholdOverride{
		LunchboxID:      lunchboxID,
		TempHigh:        input.TempHigh,
		TempCritical:    input.TempCritical,
		TempLow:         input.TempLow,
		HumidityHigh:    input.HumidityHigh,
		GasHigh:         input.GasHigh,
		GasCritical:     input.GasCritical,
		BatteryLow:      input.BatteryLow,
		BatteryCritical: input.BatteryCritical,
		ProximityNear:   input.ProximityNear,
	}

	logger.Info("Received threshold override for lunchbox", zap.Reflect("override", override))

	err := m.Db.Conn.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "lunchbox_id"}},
		UpdateAll: true,
	}).Create(&override).Error

	if err == nil {
		logger.Info("Upserted threshold override for lunchbox", zap.Reflect("override", override))
	}

	return err
}

// rulesFor returns the per-lunchbox override when one exists, otherwise the
// injected default table.
func (m *Monitor) rulesFor(lunchboxID uint) RuleTable {
	var override models.ThresholdOverride
	if err := m.Db.Conn.First(&override, "lunchbox_id = ?", lunchboxID).Error; err != nil {
		return m.Cfg.Rules
	}
	return RuleTable{
		TempHigh:        override.TempHigh,
		TempCritical:    override.TempCritical,
		TempLow:         override.TempLow,
		HumidityHigh:    override.HumidityHigh,
		GasHigh:         override.GasHigh,
		GasCritical:     override.GasCritical,
		BatteryLow:      override.BatteryLow,
		BatteryCritical: override.BatteryCritical,
		ProximityNear:   override.ProximityNear,
	}
}

type IThresholdImpl struct {
	monitor *Monitor
}

func (it *IThresholdImpl) UpsertOverride(lunchboxID uint, input *models.ThresholdOverride) error {
	return it.monitor.upsertOverride(lunchboxID, input)
}

func (it *IThresholdImpl) RulesFor(lunchboxID uint) RuleTable {
	return it.monitor.rulesFor(lunchboxID)
}

func (m *Monitor) GetIThreshold() IThreshold {
	return &IThresholdImpl{monitor: m}
}
