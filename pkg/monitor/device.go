package monitor

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
)

// NewAPIKey returns an opaque high-entropy device credential.
func NewAPIKey() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

func (m *Monitor) findActiveByAPIKey(apiKey string) (*models.Lunchbox, error) {
	if apiKey == "" {
		return nil, ErrInvalidAPIKey
	}

	var lunchbox models.Lunchbox
	err := m.Db.Conn.First(&lunchbox, "device_api_key = ? AND is_active = ?", apiKey, true).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidAPIKey
	}
	if err != nil {
		return nil, err
	}
	return &lunchbox, nil
}

func (m *Monitor) createLunchbox(name, description, owner string) (*models.Lunchbox, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	lunchbox := models.Lunchbox{
		Name:         name,
		Description:  description,
		Owner:        owner,
		IsActive:     true,
		DeviceAPIKey: NewAPIKey(),
	}

	if err := m.Db.Conn.Create(&lunchbox).Error; err != nil {
		return nil, err
	}

	logger.Info("Created lunchbox", zap.Uint("lunchbox_id", lunchbox.ID), zap.String("name", lunchbox.Name))
	return &lunchbox, nil
}

// rotateAPIKey swaps the device credential in a single update. The old key
// fails authentication on the next lookup; there is no grace period.
func (m *Monitor) rotateAPIKey(lunchboxID uint) (string, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameMonitorCore,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryDevice),
	)

	newKey := NewAPIKey()
	res := m.Db.Conn.Model(&models.Lunchbox{}).Where("id = ?", lunchboxID).Update("device_api_key", newKey)
	if res.Error != nil {
		return "", res.Error
	}
	if res.RowsAffected == 0 {
		return "", gorm.ErrRecordNotFound
	}

	logger.Info("Rotated device API key", zap.Uint("lunchbox_id", lunchboxID))
	return newKey, nil
}

type IDeviceImpl struct {
	monitor *Monitor
}

func (id *IDeviceImpl) FindActiveByAPIKey(apiKey string) (*models.Lunchbox, error) {
	return id.monitor.findActiveByAPIKey(apiKey)
}

func (id *IDeviceImpl) CreateLunchbox(name, description, owner string) (*models.Lunchbox, error) {
	return id.monitor.createLunchbox(name, description, owner)
}

func (id *IDeviceImpl) RotateAPIKey(lunchboxID uint) (string, error) {
	return id.monitor.rotateAPIKey(lunchboxID)
}

func (m *Monitor) GetIDevice() IDevice {
	return &IDeviceImpl{monitor: m}
}
