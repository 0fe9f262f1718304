// internal/chat/routes.go

package chat

import (
	"net/http"

	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authenticate mux.MiddlewareFunc) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authenticate)

	api.HandleFunc("/conversations", handler.ListConversations).Methods(http.MethodGet)
	api.HandleFunc("/conversations", handler.DeleteConversations).Methods(http.MethodDelete)
	api.HandleFunc("/conversations/{userId}", handler.StartConversation).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{userId}", handler.GetConversation).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{userId}/messages", handler.SendMessage).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{userId}/receive", handler.ReceiveMessage).Methods(http.MethodPost)
	api.HandleFunc("/conversations/{userId}/window", handler.GetWindow).Methods(http.MethodGet)
	api.HandleFunc("/conversations/{userId}/rate", handler.RateConversation).Methods(http.MethodPost)

	api.HandleFunc("/ws", handler.ServeWS).Methods(http.MethodGet)
}
