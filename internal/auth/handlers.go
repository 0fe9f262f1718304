// internal/auth/handlers.go

package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aviato-app/aviato-backend/internal/common/utils"
	"github.com/aviato-app/aviato-backend/internal/users"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// Login starts a session for any well-formed credentials
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log in")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, resp)
}

// Signup registers a new profile and starts a session for it
func (h *Handler) Signup(w http.ResponseWriter, r *http.Request) {
	var req SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	resp, err := h.service.Signup(r.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrUserExists) {
			utils.RespondWithError(w, http.StatusConflict, "User already exists")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to sign up")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, resp)
}

// Logout ends the session, keeping registered profiles on record
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to log out")
		return
	}

	utils.MessageResponse(w, "Logged out", http.StatusOK)
}

// Me returns the signed-in user's profile
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.CurrentUser(r.Context())
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "No active session")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, user)
}
