// internal/session/routes.go

package session

import (
	"net/http"

	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authenticate mux.MiddlewareFunc) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authenticate)

	api.HandleFunc("/settings", handler.GetSettings).Methods(http.MethodGet)
	api.HandleFunc("/settings/language", handler.GetLanguage).Methods(http.MethodGet)
	api.HandleFunc("/settings/language", handler.SetLanguage).Methods(http.MethodPut)
	api.HandleFunc("/settings/theme", handler.GetTheme).Methods(http.MethodGet)
	api.HandleFunc("/settings/theme", handler.SetTheme).Methods(http.MethodPut)
	api.HandleFunc("/settings/translations", handler.GetTranslations).Methods(http.MethodGet)
}
