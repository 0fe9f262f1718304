// internal/matching/handlers.go

package matching

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aviato-app/aviato-backend/internal/common/utils"
)

type Handler struct {
	service Service
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// GetInterests returns the selectable interest catalog
func (h *Handler) GetInterests(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, h.service.Interests())
}

// GetSelections returns the session's current query tags
func (h *Handler) GetSelections(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)
	utils.RespondWithJSON(w, http.StatusOK, h.service.GetSelections(userID))
}

// SetSelectionsRequest replaces the session's query tags
type SetSelectionsRequest struct {
	Selections []string `json:"selections" validate:"required,dive,min=1"`
}

// SetSelections replaces the session's query tags
func (h *Handler) SetSelections(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req SetSelectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	selections, err := h.service.SetSelections(userID, req.Selections)
	if err != nil {
		if errors.Is(err, ErrTooManySelections) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to set selections")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, selections)
}

// AddSelectionRequest adds one query tag
type AddSelectionRequest struct {
	Item string `json:"item" validate:"required,min=1"`
}

// AddSelection adds a single query tag; duplicates are ignored
func (h *Handler) AddSelection(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req AddSelectionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	selections, err := h.service.AddSelection(userID, req.Item)
	if err != nil {
		if errors.Is(err, ErrTooManySelections) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to add selection")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, selections)
}

// RemoveSelection removes a single query tag
func (h *Handler) RemoveSelection(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	item := r.URL.Query().Get("item")
	if item == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "item query parameter is required")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, h.service.RemoveSelection(userID, item))
}

// ClearSelections drops all session query tags
func (h *Handler) ClearSelections(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)
	h.service.ClearSelections(userID)
	w.WriteHeader(http.StatusNoContent)
}

// FindMatches ranks all users against the session query tags
func (h *Handler) FindMatches(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	matches, err := h.service.FindMatches(r.Context(), userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to find matches")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, matches)
}
