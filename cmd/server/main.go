package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/db"
	lunchboxHttp "lunchbox.dev/lunchbox-monitoring-service/pkg/http"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/monitor"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/realtime"
)

func main() {
	var err error

	err = godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file, copy .env.example to .env first if in development")
	}

	var dbInstance *db.DB
	lunchboxDbType := os.Getenv(common.EnvKeyLunchboxDBType)
	switch lunchboxDbType {
	case "file":
		dbInstance = db.GetInstance(db.UseSqliteDialector())
	case "memory":
		dbInstance = db.GetInstance(db.UseMemorySqliteDialector())
	default:
		log.Fatal("Unknown LUNCHBOX_DB_TYPE: " + lunchboxDbType)
	}

	httpHostPort := strings.TrimSpace(os.Getenv(common.EnvKeyLunchboxHttpHostPort))

	var ingestRate float64
	var ingestBurst int64

	if ingestRate, err = strconv.ParseFloat(os.Getenv(common.EnvKeyLunchboxIngestRate), 64); err != nil {
		log.Fatal("Invalid LUNCHBOX_INGEST_RATE, or not set in .env, should be a float64 value")
	}

	if ingestBurst, err = strconv.ParseInt(os.Getenv(common.EnvKeyLunchboxIngestBurst), 10, 64); err != nil {
		log.Fatal("Invalid LUNCHBOX_INGEST_BURST, or not set in .env, should be an int value")
	}

	cfg := monitor.DefaultConfig()
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyLunchboxAlertDedupHours)); raw != "" {
		hours, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || hours <= 0 {
			log.Fatal("Invalid LUNCHBOX_ALERT_DEDUP_HOURS, should be a positive int value")
		}
		cfg.DedupWindow = time.Duration(hours) * time.Hour
	}
	if raw := strings.TrimSpace(os.Getenv(common.EnvKeyLunchboxFutureSkewMinutes)); raw != "" {
		minutes, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || minutes < 0 {
			log.Fatal("Invalid LUNCHBOX_FUTURE_SKEW_MINUTES, should be a non-negative int value")
		}
		cfg.FutureSkew = time.Duration(minutes) * time.Minute
	}

	logger := common.GetLogger()

	// with no redis address the hub fans out to this instance only
	var rdb *redis.Client
	if redisAddr := strings.TrimSpace(os.Getenv(common.EnvKeyLunchboxRedisAddr)); redisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: redisAddr})
		logger.Info("Realtime hub bridging through redis", zap.String("addr", redisAddr))
	}

	hub := realtime.NewHub(rdb)
	go hub.Run(context.Background())

	monitorCore := &monitor.Monitor{
		Db:        *dbInstance,
		Publisher: hub,
		Cfg:       cfg,
	}
	monitorCore.WithServices(monitor.ServiceOpts{
		Ingest:    monitorCore.GetIIngest(),
		Alert:     monitorCore.GetIAlert(),
		Device:    monitorCore.GetIDevice(),
		Threshold: monitorCore.GetIThreshold(),
	})

	if httpHostPort == "" {
		// fallback to default http port
		httpHostPort = ":1080"
	}

	rs := &lunchboxHttp.RestfulServer{
		Server:             gin.Default(),
		Monitor:            monitorCore,
		Hub:                hub,
		RateLimiterStore:   monitor.NewRateLimiterStore(rate.Limit(ingestRate), int(ingestBurst)),
		IngestSharedSecret: strings.TrimSpace(os.Getenv(common.EnvKeyLunchboxIngestSharedSecret)),
		Authorize:          lunchboxHttp.DeviceKeyAuthorizer(monitorCore),
	}
	rs.Setup()

	logger.Info("http server created with:",
		zap.String("default_limiter",
			fmt.Sprintf("{\"ingest_rate\": %v, \"ingest_burst\": %v}", ingestRate, ingestBurst)))

	logger.Info("Starting HTTP server on: " + httpHostPort)
	if err := rs.Server.Run(httpHostPort); err != nil {
		log.Fatalf("http server failed to serve: %v", err)
	}
}
