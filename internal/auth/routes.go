// internal/auth/routes.go

package auth

import (
	"net/http"

	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authenticate mux.MiddlewareFunc) {
	api := router.PathPrefix("/api/v1").Subrouter()

	api.HandleFunc("/auth/login", handler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/signup", handler.Signup).Methods(http.MethodPost)

	protected := api.PathPrefix("").Subrouter()
	protected.Use(authenticate)
	protected.HandleFunc("/auth/logout", handler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/me", handler.Me).Methods(http.MethodGet)
}
