package models

import "time"

type SensorType string

const (
	SensorTemperature SensorType = "temp"
	SensorHumidity    SensorType = "humi"
	SensorGas         SensorType = "gas"
	SensorBattery     SensorType = "batt"
	SensorProximity   SensorType = "prox"
	SensorMotion      SensorType = "motion"
)

var sensorTypes = map[SensorType]bool{
	SensorTemperature: true,
	SensorHumidity:    true,
	SensorGas:         true,
	SensorBattery:     true,
	SensorProximity:   true,
	SensorMotion:      true,
}

func IsValidSensorType(s SensorType) bool {
	return sensorTypes[s]
}

type AlertType string

const (
	AlertTemperatureHigh AlertType = "temp_high"
	AlertTemperatureLow  AlertType = "temp_low"
	AlertHumidityHigh    AlertType = "humi_high"
	AlertGasHigh         AlertType = "gas_high"
	AlertBatteryLow      AlertType = "batt_low"
	AlertProximityNear   AlertType = "prox_near"
	AlertMotionDetected  AlertType = "motion_detected"
)

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// Lunchbox is a monitored device. Deactivation is a soft delete: readings and
// alerts are retained, only is_active flips.
type Lunchbox struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"size:100" json:"name"`
	Description  string    `json:"description"`
	Owner        string    `gorm:"index" json:"owner"`
	IsActive     bool      `gorm:"default:true" json:"is_active"`
	DeviceAPIKey string    `gorm:"uniqueIndex;size:64" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	SensorReadings []SensorReading `gorm:"foreignKey:LunchboxID;constraint:OnDelete:CASCADE" json:"-"`
	Alerts         []Alert         `gorm:"foreignKey:LunchboxID;constraint:OnDelete:CASCADE" json:"-"`
}

// SensorReading is immutable once created. RecordedAt is device-supplied (and
// may have been clamped at ingestion), CreatedAt is the server receipt time.
type SensorReading struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	LunchboxID uint       `gorm:"index:idx_readings_lookup,priority:1" json:"lunchbox_id"`
	SensorType SensorType `gorm:"size:12;index:idx_readings_lookup,priority:2" json:"sensor_type"`
	Value      float64    `json:"value"`
	Unit       string     `gorm:"size:10" json:"unit"`
	RecordedAt time.Time  `gorm:"index:idx_readings_lookup,priority:3" json:"recorded_at"`
	CreatedAt  time.Time  `json:"created_at"`
}

// Alert invariant: ResolvedAt is non-nil iff IsResolved is true.
type Alert struct {
	ID         uint       `gorm:"primaryKey" json:"id"`
	LunchboxID uint       `gorm:"index:idx_alerts_open,priority:1" json:"lunchbox_id"`
	AlertType  AlertType  `gorm:"size:20" json:"alert_type"`
	Severity   Severity   `gorm:"size:10;default:warning" json:"severity"`
	Message    string     `json:"message"`
	IsResolved bool       `gorm:"default:false;index:idx_alerts_open,priority:2" json:"is_resolved"`
	ResolvedAt *time.Time `json:"resolved_at"`
	CreatedAt  time.Time  `gorm:"index:idx_alerts_open,priority:3" json:"created_at"`
}

// ThresholdOverride replaces the injected default rule table for one lunchbox.
type ThresholdOverride struct {
	LunchboxID      uint    `gorm:"primaryKey" json:"lunchbox_id"`
	TempHigh        float64 `json:"temp_high"`
	TempCritical    float64 `json:"temp_critical"`
	TempLow         float64 `json:"temp_low"`
	HumidityHigh    float64 `json:"humidity_high"`
	GasHigh         float64 `json:"gas_high"`
	GasCritical     float64 `json:"gas_critical"`
	BatteryLow      float64 `json:"battery_low"`
	BatteryCritical float64 `json:"battery_critical"`
	ProximityNear   float64 `json:"proximity_near"`
}
