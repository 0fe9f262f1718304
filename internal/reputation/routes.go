// internal/reputation/routes.go

package reputation

import (
	"net/http"

	"github.com/gorilla/mux"
)

func RegisterRoutes(router *mux.Router, handler *Handler, authenticate mux.MiddlewareFunc) {
	api := router.PathPrefix("/api/v1").Subrouter()
	api.Use(authenticate)

	api.HandleFunc("/users/{id}/reviews", handler.SubmitReview).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/reviews", handler.GetReviews).Methods(http.MethodGet)
}
