package common

const (
	EnvKeyGoEnv string = "GO_ENV"

	EnvKeyRunIntegrationTests string = "RUN_INTEGRATION_TESTS"

	EnvKeyLunchboxDBType string = "LUNCHBOX_DB_TYPE"
	EnvKeyLunchboxDBPath string = "LUNCHBOX_DB_PATH"

	EnvKeyLunchboxHttpHostPort string = "LUNCHBOX_HTTP_HOST_PORT"

	EnvKeyLunchboxIngestRate         string = "LUNCHBOX_INGEST_RATE"
	EnvKeyLunchboxIngestBurst        string = "LUNCHBOX_INGEST_BURST"
	EnvKeyLunchboxIngestSharedSecret string = "LUNCHBOX_INGEST_SHARED_SECRET"

	EnvKeyLunchboxAlertDedupHours   string = "LUNCHBOX_ALERT_DEDUP_HOURS"
	EnvKeyLunchboxFutureSkewMinutes string = "LUNCHBOX_FUTURE_SKEW_MINUTES"

	EnvKeyLunchboxRedisAddr string = "LUNCHBOX_REDIS_ADDR"

	EnvKeyLunchboxLogDir string = "LUNCHBOX_LOG_DIR"

	LoggerNameMonitorCore   string = "monitor_core"
	LoggerNameRestfulServer string = "restful_server"
	LoggerNameRealtimeHub   string = "realtime_hub"

	LoggerFieldCategory     string = "category"
	LoggerCategoryIngest    string = "ingest"
	LoggerCategoryAlert     string = "alert"
	LoggerCategoryThreshold string = "threshold"
	LoggerCategoryDevice    string = "device"
	LoggerCategoryBroadcast string = "broadcast"
)
