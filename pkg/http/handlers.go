package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	z "github.com/Oudwins/zog"
	"github.com/Oudwins/zog/zhttp"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/models"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/monitor"
)

const headerDeviceSecret = "X-Device-Secret"

// PostIngest is the single device-facing endpoint. Authentication is layered:
// the shared deployment secret gates the endpoint, then the api_key in the
// body identifies the lunchbox.
func (rs *RestfulServer) PostIngest(c *gin.Context) {
	if rs.IngestSharedSecret != "" && c.GetHeader(headerDeviceSecret) != rs.IngestSharedSecret {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid device secret"})
		return
	}

	var req monitor.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "Malformed JSON payload"})
		return
	}

	limiterKey := req.APIKey
	if limiterKey == "" {
		limiterKey = c.ClientIP()
	}
	if !rs.CheckIngestLimiter(limiterKey) {
		c.Status(http.StatusTooManyRequests)
		return
	}

	result, err := rs.Monitor.Ingest.IngestReadings(&req)
	if err != nil {
		var verr *monitor.ValidationError
		switch {
		case errors.Is(err, monitor.ErrInvalidAPIKey):
			c.JSON(http.StatusUnauthorized, gin.H{"api_key": []string{err.Error()}})
		case errors.As(err, &verr):
			c.JSON(http.StatusBadRequest, verr.Fields)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal error"})
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{"created": result.Created})
}

// GetIngestProbe answers connectivity checks from device firmware.
func (rs *RestfulServer) GetIngestProbe(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"detail": "Device ingest endpoint. Use POST with api_key & readings."})
}

type LunchboxRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Owner       string `json:"owner"`
}

var lunchboxRequestSchema = z.Struct(z.Shape{
	"Name":        z.String().Min(1).Required(),
	"Description": z.String(),
	"Owner":       z.String(),
})

func (rs *RestfulServer) PostLunchbox(c *gin.Context) {
	var req LunchboxRequest
	if err := lunchboxRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	lunchbox, err := rs.Monitor.Device.CreateLunchbox(req.Name, req.Description, req.Owner)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal error"})
		return
	}

	// the device credential is returned exactly once, at creation
	c.JSON(http.StatusCreated, gin.H{
		"id":             lunchbox.ID,
		"name":           lunchbox.Name,
		"description":    lunchbox.Description,
		"owner":          lunchbox.Owner,
		"device_api_key": lunchbox.DeviceAPIKey,
	})
}

func (rs *RestfulServer) GetAlerts(c *gin.Context) {
	lunchboxID, err := parseUintParam(c, "lunchbox_id")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
		return
	}

	var alerts []models.Alert
	if alerts, err = rs.Monitor.Alert.GetLunchboxAlerts(lunchboxID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, alerts)
}

type ThresholdRequest struct {
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

var thresholdRequestSchema = z.Struct(z.Shape{
	"TempHigh":        z.Float64().Required(),
	"TempCritical":    z.Float64().Required(),
	"TempLow":         z.Float64().Required(),
	"HumidityHigh":    z.Float64().Required(),
	"GasHigh":         z.Float64().Required(),
	"GasCritical":     z.Float64().Required(),
	"BatteryLow":      z.Float64().Required(),
	"BatteryCritical": z.Float64().Required(),
	"ProximityNear":   z.Float64().Required(),
})

func (rs *RestfulServer) PostThresholds(c *gin.Context) {
	lunchboxID, err := parseUintParam(c, "lunchbox_id")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
		return
	}

	var req ThresholdRequest
	if err := thresholdRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	err = rs.Monitor.Threshold.UpsertOverride(lunchboxID, &models.ThresholdOverride{
		TempHigh:        req.TempHigh,
		TempCritical:    req.TempCritical,
		TempLow:         req.TempLow,
		HumidityHigh:    req.HumidityHigh,
		GasHigh:         req.GasHigh,
		GasCritical:     req.GasCritical,
		BatteryLow:      req.BatteryLow,
		BatteryCritical: req.BatteryCritical,
		ProximityNear:   req.ProximityNear,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal error"})
		return
	}

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) PostRotateKey(c *gin.Context) {
	lunchboxID, err := parseUintParam(c, "lunchbox_id")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
		return
	}

	newKey, err := rs.Monitor.Device.RotateAPIKey(lunchboxID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"device_api_key": newKey})
}

func (rs *RestfulServer) PostResolveAlert(c *gin.Context) {
	alertID, err := parseUintParam(c, "alert_id")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
		return
	}

	if err := rs.Monitor.Alert.ResolveAlert(alertID); err != nil {
		switch {
		case errors.Is(err, monitor.ErrAlreadyResolved):
			c.JSON(http.StatusBadRequest, gin.H{"status": "alert was already resolved"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": "Internal error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "alert resolved"})
}

type LimiterRequest struct {
	Key   string  `json:"key"`
	Rate  float64 `json:"rate"`
	Burst int     `json:"burst"`
}

var limiterRequestSchema = z.Struct(z.Shape{
	"Key":   z.String().Min(1).Required(),
	"Rate":  z.Float64().Required(),
	"Burst": z.Int().Required(),
})

// PostLimiter tunes the ingest rate for one limiter key, either a device API
// key or a source address.
func (rs *RestfulServer) PostLimiter(c *gin.Context) {
	var req LimiterRequest
	if err := limiterRequestSchema.Parse(zhttp.Request(c.Request), &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err})
		return
	}

	rs.SetLimiter(req.Key, req.Rate, req.Burst)

	c.Status(http.StatusOK)
}

func (rs *RestfulServer) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
