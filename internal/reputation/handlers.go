// internal/reputation/handlers.go

package reputation

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/aviato-app/aviato-backend/internal/common/utils"
	"github.com/aviato-app/aviato-backend/internal/users"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// SubmitReview handles a one-time star review of another user
func (h *Handler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	raterID := r.Context().Value("userID").(string)
	targetID := mux.Vars(r)["id"]

	var req SubmitReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	review, err := h.service.SubmitReview(r.Context(), targetID, raterID, req.Rating)
	if err != nil {
		switch {
		case errors.Is(err, ErrAlreadyReviewed):
			utils.RespondWithError(w, http.StatusConflict, err.Error())
		case errors.Is(err, users.ErrUserNotFound):
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
		default:
			utils.RespondWithError(w, http.StatusInternalServerError, "Failed to submit review")
		}
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, review)
}

// GetReviews lists the reviews received by a user, in submission order
func (h *Handler) GetReviews(w http.ResponseWriter, r *http.Request) {
	targetID := mux.Vars(r)["id"]

	reviews, err := h.service.GetReviews(r.Context(), targetID)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			utils.RespondWithError(w, http.StatusNotFound, "User not found")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to get reviews")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, reviews)
}
