package common

import (
	"bytes"
	"strings"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	_ "lunchbox.dev/lunchbox-monitoring-service/pkg/testing"
)

func TestLoggingCapture(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLogger()
	logger.Info("Test log message", zap.String("key", "value"))

	logOutput := buf.String()
	if !strings.Contains(logOutput, "Test log message") {
		t.Errorf("expected log output to contain message, got: %s", logOutput)
	}
}

func TestNamedLoggerCarriesCategory(t *testing.T) {
	var buf bytes.Buffer
	SetTestCaptureLogger(&buf, zapcore.InfoLevel)

	logger := GetLoggerWith(LoggerNameMonitorCore, zap.String(LoggerFieldCategory, LoggerCategoryIngest))
	logger.Info("categorized message")

	logOutput := buf.String()
	if !strings.Contains(logOutput, `"category":"ingest"`) {
		t.Errorf("expected log output to carry category field, got: %s", logOutput)
	}
}
