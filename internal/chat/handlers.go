// internal/chat/handlers.go

package chat

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/aviato-app/aviato-backend/internal/common/utils"
	"github.com/aviato-app/aviato-backend/internal/users"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

type Handler struct {
	service Service
	hub     *Hub
	watcher *Watcher
}

func NewHandler(service Service, hub *Hub, watcher *Watcher) *Handler {
	return &Handler{service: service, hub: hub, watcher: watcher}
}

// ListConversations returns all conversations, most recent first
func (h *Handler) ListConversations(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.service.ListConversations(r.Context()))
}

// StartConversation opens (or returns the existing) chat with a user
func (h *Handler) StartConversation(w http.ResponseWriter, r *http.Request) {
	counterpartID := mux.Vars(r)["userId"]

	conv, err := h.service.EnsureConversation(r.Context(), counterpartID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to open conversation")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, conv)
}

// GetConversation returns a single conversation by counterpart id
func (h *Handler) GetConversation(w http.ResponseWriter, r *http.Request) {
	counterpartID := mux.Vars(r)["userId"]

	conv, err := h.service.GetConversation(r.Context(), counterpartID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Conversation not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, conv)
}

// SendMessage appends an outgoing message, subject to the recipient's
// availability mode
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	senderID := r.Context().Value("userID").(string)
	counterpartID := mux.Vars(r)["userId"]

	var req SendMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	conv, err := h.service.SendMessage(r.Context(), senderID, counterpartID, req.Text)
	if err != nil {
		var unavailable *UnavailableError
		if errors.As(err, &unavailable) {
			utils.RespondWithError(w, http.StatusConflict, unavailable.Reason)
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to send message")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, conv)
}

// ReceiveMessage injects an incoming message from the counterpart
func (h *Handler) ReceiveMessage(w http.ResponseWriter, r *http.Request) {
	counterpartID := mux.Vars(r)["userId"]

	var req ReceiveMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	conv, err := h.service.ReceiveMessage(r.Context(), counterpartID, req.Text)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "Conversation not found")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, conv)
}

// GetWindow reports the current response window state for a conversation
func (h *Handler) GetWindow(w http.ResponseWriter, r *http.Request) {
	counterpartID := mux.Vars(r)["userId"]

	utils.RespondWithJSON(w, http.StatusOK, h.service.Window(r.Context(), counterpartID))
}

// RateConversation records a good/bad rating once the response window
// has lapsed, adjusting the counterpart's approval rating
func (h *Handler) RateConversation(w http.ResponseWriter, r *http.Request) {
	counterpartID := mux.Vars(r)["userId"]

	var req RateConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	delta, err := h.service.Rate(r.Context(), counterpartID, req.IsGood, req.Reason)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to rate conversation")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"conversationId": counterpartID,
		"approvalDelta":  delta,
	})
}

// DeleteConversations wipes all conversations
func (h *Handler) DeleteConversations(w http.ResponseWriter, r *http.Request) {
	h.service.DeleteAll(r.Context())
	utils.MessageResponse(w, "All conversations deleted", http.StatusOK)
}

// ServeWS upgrades the connection and registers the client with the hub
func (h *Handler) ServeWS(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadDeadline(time.Now().Add(pongWait))

	client := NewClient(h.hub, h.watcher, conn, userID)
	h.hub.register <- client
	client.Start()
}
