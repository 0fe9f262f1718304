// internal/chat/client.go

package chat

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// Time allowed to write a message to the peer
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer
	pongWait = 60 * time.Second

	// Send pings to peer with this period
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer
	maxMessageSize = 4 * 1024
)

// clientCommand is what a connected client may send upstream:
// subscribe or unsubscribe from a conversation's timer updates.
type clientCommand struct {
	Action         string `json:"action"`
	ConversationID string `json:"conversation_id"`
}

// Client represents a single websocket connection.
type Client struct {
	hub     *Hub
	watcher *Watcher
	conn    *websocket.Conn
	send    chan []byte
	userID  string

	closeOnce sync.Once

	// Conversations this client subscribed to, released on disconnect
	watched map[string]bool
}

func NewClient(hub *Hub, watcher *Watcher, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:     hub,
		watcher: watcher,
		conn:    conn,
		send:    make(chan []byte, 256),
		userID:  userID,
		watched: make(map[string]bool),
	}
}

func (c *Client) Start() {
	go c.writePump()
	go c.readPump()
}

func (c *Client) readPump() {
	defer func() {
		c.releaseWatches()
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
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error: %v", err)
			}
			break
		}

		c.processCommand(message)
	}
}

func (c *Client) processCommand(message []byte) {
	var cmd clientCommand
	if err := json.Unmarshal(message, &cmd); err != nil {
		log.Printf("Invalid websocket command from user %s: %v", c.userID, err)
		return
	}
	if cmd.ConversationID == "" {
		return
	}

	switch cmd.Action {
	case "watch":
		if !c.watched[cmd.ConversationID] {
			c.watched[cmd.ConversationID] = true
			c.watcher.Watch(cmd.ConversationID)
		}
	case "unwatch":
		if c.watched[cmd.ConversationID] {
			delete(c.watched, cmd.ConversationID)
			c.watcher.Unwatch(cmd.ConversationID)
		}
	default:
		log.Printf("Unknown websocket action %q from user %s", cmd.Action, c.userID)
	}
}

func (c *Client) releaseWatches() {
	for id := range c.watched {
		c.watcher.Unwatch(id)
	}
	c.watched = make(map[string]bool)
}

func (c *Client) writePump() {
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

func (c *Client) Close() {
	c.closeOnce.Do(func() {
		close(c.send)
	})
}
