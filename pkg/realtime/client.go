package realtime

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 1024
)

// Client is one dashboard session subscribed to a single lunchbox.
type Client struct {
	hub        *Hub
	conn       *websocket.Conn
	send       chan []byte
	LunchboxID uint
}

func NewClient(hub *Hub, conn *websocket.Conn, lunchboxID uint) *Client {
	return &Client{
		hub:        hub,
		conn:       conn,
		send:       make(chan []byte, 64),
		LunchboxID: lunchboxID,
	}
}

// Enqueue queues one event for this session only. Used for the current_state
// snapshot sent on connect, before the session joins the broadcast group.
func (c *Client) Enqueue(event Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	select {
	case c.send <- data:
		return nil
	default:
		return fmt.Errorf("session send buffer full")
	}
}

// ReadPump drains the connection until it closes. Incoming frames carry no
// operations; the loop exists for close and pong handling. Exit unsubscribes
// the session immediately.
func (c *Client) ReadPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			break
		}
	}
}

// WritePump pumps queued frames to the connection, one websocket message per
// event, and keeps the connection alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				// hub dropped the session
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
