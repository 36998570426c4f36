package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/realtime"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// origin policy is enforced by the Authorizer, not here
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeLunchboxSocket upgrades a dashboard connection and subscribes it to one
// lunchbox. The session receives a current_state snapshot first, then live
// sensor_update and alert frames as they are published.
func (rs *RestfulServer) ServeLunchboxSocket(c *gin.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameRestfulServer,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryBroadcast),
	)

	lunchboxID, err := parseUintParam(c, "lunchbox_id")
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not found"})
		return
	}

	if rs.Authorize == nil || !rs.Authorize(c, lunchboxID) {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Unauthorized"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}

	client := realtime.NewClient(rs.Hub, conn, lunchboxID)

	// queue the snapshot before joining the broadcast group so it is the
	// first frame on the wire
	latest, err := rs.Monitor.Ingest.LatestReadings(lunchboxID)
	if err != nil {
		logger.Warn("Dropping session, snapshot query failed",
			zap.Uint("lunchbox_id", lunchboxID), zap.Error(err))
		conn.Close()
		return
	}
	if err := client.Enqueue(realtime.NewCurrentState(lunchboxID, latest)); err != nil {
		conn.Close()
		return
	}

	rs.Hub.Register(client)

	go client.WritePump()
	go client.ReadPump()
}
