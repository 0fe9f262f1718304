// internal/matching/routes.go

package matching

import (
	"net/http"

	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authenticate mux.MiddlewareFunc) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authenticate)

	api.HandleFunc("/interests", handler.GetInterests).Methods(http.MethodGet)

	api.HandleFunc("/selections", handler.GetSelections).Methods(http.MethodGet)
	api.HandleFunc("/selections", handler.SetSelections).Methods(http.MethodPut)
	api.HandleFunc("/selections", handler.AddSelection).Methods(http.MethodPost)
	api.HandleFunc("/selections", handler.RemoveSelection).Methods(http.MethodDelete)
	api.HandleFunc("/selections/clear", handler.ClearSelections).Methods(http.MethodPost)

	api.HandleFunc("/matches", handler.FindMatches).Methods(http.MethodGet)
}
