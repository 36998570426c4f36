package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/monitor"
	_ "lunchbox.dev/lunchbox-monitoring-service/pkg/testing"
)

func startRealtimeTestServer(t *testing.T) (*RestfulServer, *httptest.Server) {
	t.Helper()

	rs := setupTestServer()

	ctx, cancel := context.WithCancel(context.Background())
	go rs.Hub.Run(ctx)
	t.Cleanup(cancel)

	srv := httptest.NewServer(rs.Server)
	t.Cleanup(srv.Close)

	return rs, srv
}

func wsURL(srv *httptest.Server, lunchboxID uint, token string) string {
	return fmt.Sprintf("%s/ws/lunchbox/%d?token=%s",
		strings.Replace(srv.URL, "http", "ws", 1), lunchboxID, token)
}

func readFrame(t *testing.T, conn *websocket.Conn) map[string]any {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(5*time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)

	var frame map[string]any
	require.NoError(t, json.Unmarshal(data, &frame))
	return frame
}

func postIngestOverHTTP(t *testing.T, srv *httptest.Server, apiKey string, readings []monitor.ReadingInput) {
	t.Helper()

	body, _ := json.Marshal(monitor.IngestRequest{APIKey: apiKey, Readings: readings})
	resp, err := http.Post(srv.URL+"/api/device/ingest", "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestServeLunchboxSocket(t *testing.T) {
	common.SetTestLoggerNop()

	rs, srv := startRealtimeTestServer(t)

	lunchboxID, apiKey := createTestLunchbox(t, rs, "ws-box")

	// a reading ingested before connecting is only visible via the snapshot
	postIngestOverHTTP(t, srv, apiKey, []monitor.ReadingInput{
		{SensorType: "humi", Value: floatPtr(40.0), Unit: "%"},
	})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, lunchboxID, apiKey), nil)
	require.NoError(t, err)
	defer conn.Close()

	// first frame is always the snapshot
	frame := readFrame(t, conn)
	assert.Equal(t, "current_state", frame["type"])
	readings, ok := frame["readings"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, readings, "humi")

	// wait for the subscription to land before publishing
	require.Eventually(t, func() bool {
		return rs.Hub.SessionCount(lunchboxID) == 1
	}, 2*time.Second, 10*time.Millisecond)

	// a live batch produces a sensor_update and, over threshold, an alert
	postIngestOverHTTP(t, srv, apiKey, []monitor.ReadingInput{
		{SensorType: "temp", Value: floatPtr(36.0), Unit: "C"},
	})

	frame = readFrame(t, conn)
	assert.Equal(t, "sensor_update", frame["type"])
	assert.Equal(t, "temp", frame["sensor_type"])
	assert.Equal(t, 36.0, frame["value"])

	frame = readFrame(t, conn)
	assert.Equal(t, "alert", frame["type"])
	assert.Equal(t, "temp_high", frame["alert_type"])
	assert.Equal(t, "critical", frame["severity"])
}

func TestServeLunchboxSocket_Unauthorized(t *testing.T) {
	common.SetTestLoggerNop()

	rs, srv := startRealtimeTestServer(t)

	lunchboxID, _ := createTestLunchbox(t, rs, "ws-unauthorized-box")

	conn, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, lunchboxID, "wrong-token"), nil)
	require.Error(t, err)
	if conn != nil {
		conn.Close()
	}
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServeLunchboxSocket_TokenForOtherLunchboxRejected(t *testing.T) {
	common.SetTestLoggerNop()

	rs, srv := startRealtimeTestServer(t)

	lunchboxID, _ := createTestLunchbox(t, rs, "ws-own-box")
	_, otherKey := createTestLunchbox(t, rs, "ws-other-box")

	_, resp, err := websocket.DefaultDialer.Dial(wsURL(srv, lunchboxID, otherKey), nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestServeLunchboxSocket_LateConnectorMissesEvents(t *testing.T) {
	common.SetTestLoggerNop()

	rs, srv := startRealtimeTestServer(t)

	lunchboxID, apiKey := createTestLunchbox(t, rs, "ws-late-box")

	// the alert fires while nobody is connected
	postIngestOverHTTP(t, srv, apiKey, []monitor.ReadingInput{
		{SensorType: "gas", Value: floatPtr(350.0), Unit: "ppm"},
	})

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, lunchboxID, apiKey), nil)
	require.NoError(t, err)
	defer conn.Close()

	frame := readFrame(t, conn)
	assert.Equal(t, "current_state", frame["type"])

	// no replay: nothing else arrives
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(300*time.Millisecond)))
	_, _, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestServeLunchboxSocket_DisconnectUnsubscribes(t *testing.T) {
	common.SetTestLoggerNop()

	rs, srv := startRealtimeTestServer(t)

	lunchboxID, apiKey := createTestLunchbox(t, rs, "ws-disconnect-box")

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(srv, lunchboxID, apiKey), nil)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return rs.Hub.SessionCount(lunchboxID) == 1
	}, 2*time.Second, 10*time.Millisecond)

	conn.Close()

	require.Eventually(t, func() bool {
		return rs.Hub.SessionCount(lunchboxID) == 0
	}, 2*time.Second, 10*time.Millisecond)
}
