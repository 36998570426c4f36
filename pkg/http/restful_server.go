package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/monitor"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/realtime"
)

// Authorizer decides whether the caller may open a realtime session on a
// lunchbox. The stock implementation accepts the lunchbox device API key as a
// bearer token; deployments fronted by a user system inject their own.
type Authorizer func(c *gin.Context, lunchboxID uint) bool

type RestfulServer struct {
	Server           *gin.Engine
	Monitor          *monitor.Monitor
	Hub              *realtime.Hub
	RateLimiterStore *monitor.RateLimiterStore

	// IngestSharedSecret, when non-empty, must match the X-Device-Secret
	// header on every ingest call before any payload processing.
	IngestSharedSecret string

	Authorize Authorizer
}

// DeviceKeyAuthorizer accepts a "token" query parameter equal to the device
// API key of the requested lunchbox.
func DeviceKeyAuthorizer(m *monitor.Monitor) Authorizer {
	return func(c *gin.Context, lunchboxID uint) bool {
		token := c.Query("token")
		lunchbox, err := m.Device.FindActiveByAPIKey(token)
		if err != nil {
			return false
		}
		return lunchbox.ID == lunchboxID
	}
}

func (rs *RestfulServer) GetLimiter(key string) *rate.Limiter {
	if rs.RateLimiterStore == nil {
		return nil
	} else {
		return rs.RateLimiterStore.GetLimiter(key)
	}
}

func (rs *RestfulServer) CheckIngestLimiter(key string) bool {
	limiter := rs.GetLimiter(key)
	if limiter == nil {
		return true
	}
	return limiter.Allow()
}

func (rs *RestfulServer) SetLimiter(key string, keyRate float64, keyBurst int) {
	if rs.RateLimiterStore == nil {
		return
	}
	rs.RateLimiterStore.SetLimiter(key, rate.Limit(keyRate), keyBurst)
}

func (rs *RestfulServer) Setup() {
	rs.Server.GET("/healthz", rs.HealthCheck)

	api := rs.Server.Group("/api")
	{
		api.POST("/device/ingest", rs.PostIngest)
		api.GET("/device/ingest", rs.GetIngestProbe)

		api.POST("/lunchboxes", rs.PostLunchbox)
		api.GET("/lunchboxes/:lunchbox_id/alerts", rs.GetAlerts)
		api.POST("/lunchboxes/:lunchbox_id/thresholds", rs.PostThresholds)
		api.POST("/lunchboxes/:lunchbox_id/rotate_key", rs.PostRotateKey)

		api.POST("/alerts/:alert_id/resolve", rs.PostResolveAlert)

		api.POST("/limiter", rs.PostLimiter)
	}

	rs.Server.GET("/ws/lunchbox/:lunchbox_id", rs.ServeLunchboxSocket)
}

var errBadIDParam = errors.New("path parameter is not a positive integer")

func parseUintParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, errBadIDParam
	}
	return uint(id), nil
}
