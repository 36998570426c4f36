package realtime

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"lunchbox.dev/lunchbox-monitoring-service/pkg/common"
)

const redisChannel = "lunchbox:events"

// Hub manages dashboard sessions grouped per lunchbox and fans events out to
// them. At-most-once: there is no queueing or replay, a session connecting
// after an event never sees it. With a redis client attached, events are
// bridged through pub/sub so sessions on other instances receive them too.
type Hub struct {
	// lunchbox id -> set of subscribed sessions
	rooms map[uint]map[*Client]bool
	mu    sync.Mutex

	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastFrame

	rdb *redis.Client
}

type broadcastFrame struct {
	lunchboxID uint
	data       []byte
}

type redisEnvelope struct {
	LunchboxID uint            `json:"lunchbox_id"`
	Event      json.RawMessage `json:"event"`
}

func NewHub(rdb *redis.Client) *Hub {
	return &Hub{
		rooms:      make(map[uint]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastFrame, 256),
		rdb:        rdb,
	}
}

// Run owns registration and delivery until ctx is cancelled.
func (h *Hub) Run(ctx context.Context) {
	if h.rdb != nil {
		go h.subscribeRedis(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case frame := <-h.broadcast:
			h.deliverLocal(frame.lunchboxID, frame.data)
		}
	}
}

// Register queues a session for subscription to its lunchbox.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Publish implements Publisher. Marshal failures and a full queue are logged
// and dropped; the caller never blocks.
func (h *Hub) Publish(lunchboxID uint, event Event) {
	logger := common.GetLoggerWith(
		common.LoggerNameRealtimeHub,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryBroadcast),
	)

	data, err := json.Marshal(event)
	if err != nil {
		logger.Warn("Dropping unmarshalable event", zap.Error(err))
		return
	}

	if h.rdb != nil {
		frame, err := json.Marshal(redisEnvelope{LunchboxID: lunchboxID, Event: data})
		if err == nil {
			err = h.rdb.Publish(context.Background(), redisChannel, frame).Err()
		}
		if err != nil {
			logger.Warn("Redis publish failed, delivering locally only", zap.Error(err))
			h.enqueueLocal(lunchboxID, data, logger)
		}
		// delivery to local sessions happens via the subscriber
		return
	}

	h.enqueueLocal(lunchboxID, data, logger)
}

func (h *Hub) enqueueLocal(lunchboxID uint, data []byte, logger *zap.Logger) {
	select {
	case h.broadcast <- broadcastFrame{lunchboxID: lunchboxID, data: data}:
	default:
		logger.Warn("Broadcast queue full, dropping event", zap.Uint("lunchbox_id", lunchboxID))
	}
}

// SessionCount reports how many sessions are subscribed to a lunchbox.
func (h *Hub) SessionCount(lunchboxID uint) int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.rooms[lunchboxID])
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.rooms[client.LunchboxID]; !ok {
		h.rooms[client.LunchboxID] = make(map[*Client]bool)
	}
	h.rooms[client.LunchboxID][client] = true

	common.GetLoggerWith(
		common.LoggerNameRealtimeHub,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryBroadcast),
	).Info("Session subscribed",
		zap.Uint("lunchbox_id", client.LunchboxID),
		zap.Int("sessions", len(h.rooms[client.LunchboxID])))
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients, ok := h.rooms[client.LunchboxID]
	if !ok {
		return
	}
	if _, member := clients[client]; member {
		delete(clients, client)
		close(client.send)
	}
	if len(clients) == 0 {
		delete(h.rooms, client.LunchboxID)
	}
}

func (h *Hub) deliverLocal(lunchboxID uint, data []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()

	clients := h.rooms[lunchboxID]
	for client := range clients {
		select {
		case client.send <- data:
		default:
			// slow consumer, drop the session
			close(client.send)
			delete(clients, client)
		}
	}
}

func (h *Hub) subscribeRedis(ctx context.Context) {
	logger := common.GetLoggerWith(
		common.LoggerNameRealtimeHub,
		zap.String(common.LoggerFieldCategory, common.LoggerCategoryBroadcast),
	)

	pubsub := h.rdb.Subscribe(ctx, redisChannel)
	defer pubsub.Close()

	ch := pubsub.Channel()
	logger.Info("Redis pub/sub subscriber started")

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var envelope redisEnvelope
			if err := json.Unmarshal([]byte(msg.Payload), &envelope); err != nil {
				logger.Warn("Ignoring malformed redis frame", zap.Error(err))
				continue
			}
			h.deliverLocal(envelope.LunchboxID, envelope.Event)
		}
	}
}
