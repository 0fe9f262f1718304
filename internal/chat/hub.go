// internal/chat/hub.go

package chat

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Event types pushed to connected clients.
const (
	EventMessage             = "message"
	EventConversationUpdated = "conversation_updated"
	EventWindowChanged       = "window_changed"
	EventWindowExpired       = "window_expired"
)

// Event is the envelope for everything sent over the websocket.
type Event struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data,omitempty"`
	Timestamp time.Time   `json:"timestamp"`
}

func NewEvent(eventType string, data interface{}) Event {
	return Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now(),
	}
}

// Hub maintains active websocket connections and fans events out to them.
type Hub struct {
	clients    map[string]*Client
	clientsMux sync.RWMutex

	broadcast  chan Event
	register   chan *Client
	unregister chan *Client

	ctx    context.Context
	cancel context.CancelFunc
}

func NewHub() *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		clients:    make(map[string]*Client),
		broadcast:  make(chan Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		ctx:        ctx,
		cancel:     cancel,
	}
}

func (h *Hub) Run() {
	defer h.cleanup()

	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)

		case event := <-h.broadcast:
			h.broadcastEvent(event)

		case <-h.ctx.Done():
			return
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	// Replace a stale connection for the same user
	if old, exists := h.clients[client.userID]; exists {
		old.Close()
	}

	h.clients[client.userID] = client

	log.Printf("User %s connected. Total clients: %d", client.userID, len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	if current, exists := h.clients[client.userID]; exists && current == client {
		client.Close()
		delete(h.clients, client.userID)

		log.Printf("User %s disconnected. Total clients: %d", client.userID, len(h.clients))
	}
}

func (h *Hub) broadcastEvent(event Event) {
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("Failed to marshal event: %v", err)
		return
	}

	h.clientsMux.RLock()
	defer h.clientsMux.RUnlock()

	for _, client := range h.clients {
		select {
		case client.send <- data:
		default:
			// Slow consumer, drop the event for this client
		}
	}
}

// Broadcast queues an event for delivery to all connected clients.
// It never blocks the caller.
func (h *Hub) Broadcast(event Event) {
	select {
	case h.broadcast <- event:
	case <-h.ctx.Done():
	default:
		log.Printf("Broadcast queue full, dropping %s event", event.Type)
	}
}

// Shutdown stops the hub and closes all client connections.
func (h *Hub) Shutdown() {
	h.cancel()
}

func (h *Hub) cleanup() {
	h.clientsMux.Lock()
	defer h.clientsMux.Unlock()

	for _, client := range h.clients {
		client.Close()
	}
	h.clients = make(map[string]*Client)
}
