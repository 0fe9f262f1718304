// internal/users/routes.go

package users

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all user and profile routes
func RegisterRoutes(r chi.Router, handler *Handler, authenticate func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		r.Use(authenticate)

		// Directory
		r.Get("/api/v1/users", handler.ListUsers)
		r.Get("/api/v1/users/{id}", handler.GetUser)
		r.Get("/api/v1/users/{id}/availability", handler.CheckAvailability)

		// Own profile
		r.Get("/api/v1/profile", handler.GetMyProfile)
		r.Patch("/api/v1/profile", handler.UpdateProfile)
		r.Put("/api/v1/profile/selections", handler.UpdateSelections)
		r.Put("/api/v1/profile/availability", handler.SetAvailability)
		r.Post("/api/v1/profile/picture", handler.UploadProfilePicture)
	})
}
