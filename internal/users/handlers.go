// internal/users/handlers.go

package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/aviato-app/aviato-backend/internal/availability"
	"github.com/aviato-app/aviato-backend/internal/common/utils"
)

// Handler handles user and profile HTTP requests
type Handler struct {
	service Service
}

// NewHandler creates a new users handler
func NewHandler(service Service) *Handler {
	return &Handler{service: service}
}

// ListUsers returns every known member
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	all, err := h.service.ListUsers(r.Context())
	if err != nil {
		utils.ErrorResponse(w, "Failed to list users", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, all, http.StatusOK)
}

// GetUser returns a single member by id
func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			utils.ErrorResponse(w, "User not found", http.StatusNotFound)
			return
		}
		utils.ErrorResponse(w, "Failed to get user", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, user, http.StatusOK)
}

// GetMyProfile returns the session user's record
func (h *Handler) GetMyProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	user, err := h.service.GetUser(r.Context(), userID)
	if err != nil {
		utils.ErrorResponse(w, "Profile not found", http.StatusNotFound)
		return
	}

	utils.SuccessResponse(w, user, http.StatusOK)
}

// UpdateProfile applies a partial profile update
func (h *Handler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var patch ProfilePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(patch); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateProfile(r.Context(), userID, &patch)
	if err != nil {
		utils.ErrorResponse(w, "Failed to update profile", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, user, http.StatusOK)
}

// UpdateSelectionsRequest carries a full replacement of interest tags
type UpdateSelectionsRequest struct {
	Selections []string `json:"selections" validate:"required,max=45,dive,min=1"`
}

// UpdateSelections replaces the session user's interest tags
func (h *Handler) UpdateSelections(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req UpdateSelectionsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.service.UpdateSelections(r.Context(), userID, req.Selections)
	if err != nil {
		utils.ErrorResponse(w, "Failed to update selections", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, user, http.StatusOK)
}

// SetAvailabilityRequest selects a mode and its parameters. Mode "none"
// clears the declared mode back to the invisible default.
type SetAvailabilityRequest struct {
	Mode            string     `json:"mode" validate:"required,oneof=none green yellow orange blue red gray brown"`
	OpenDate        *string    `json:"open_date,omitempty"`
	LaterMinutes    *int       `json:"later_minutes,omitempty" validate:"omitempty,gte=0"`
	LaterStartTime  *time.Time `json:"later_start_time,omitempty"`
	MaxContact      *int       `json:"max_contact,omitempty" validate:"omitempty,gte=0"`
	CurrentContacts *int       `json:"current_contacts,omitempty" validate:"omitempty,gte=0"`
	TimedHour       *int       `json:"timed_hour,omitempty" validate:"omitempty,gte=0,lte=23"`
	TimedMinute     *int       `json:"timed_minute,omitempty" validate:"omitempty,gte=0,lte=59"`
}

func (req *SetAvailabilityRequest) toSettings() (*availability.Settings, error) {
	switch availability.Mode(req.Mode) {
	case availability.ModeOnline:
		return availability.NewOnline(), nil
	case availability.ModeLocked:
		return availability.NewLocked(), nil
	case availability.ModePaused:
		return availability.NewPaused(), nil
	case availability.ModeDelayed:
		minutes := 0
		if req.LaterMinutes != nil {
			minutes = *req.LaterMinutes
		}
		return availability.NewDelayed(minutes, req.LaterStartTime), nil
	case availability.ModeScheduled:
		if req.OpenDate == nil {
			return nil, errors.New("open_date is required for blue mode")
		}
		openDate, err := time.Parse("2006-01-02", *req.OpenDate)
		if err != nil {
			return nil, errors.New("open_date must be formatted as YYYY-MM-DD")
		}
		return availability.NewScheduled(openDate), nil
	case availability.ModeCapped:
		if req.MaxContact == nil {
			return nil, errors.New("max_contact is required for orange mode")
		}
		current := 0
		if req.CurrentContacts != nil {
			current = *req.CurrentContacts
		}
		return availability.NewCapped(*req.MaxContact, current)
	case availability.ModeTimed:
		if req.TimedHour == nil {
			return nil, errors.New("timed_hour is required for brown mode")
		}
		minute := 0
		if req.TimedMinute != nil {
			minute = *req.TimedMinute
		}
		return availability.NewTimed(*req.TimedHour, minute)
	}
	// "none"
	return nil, nil
}

// SetAvailability updates the session user's reachability mode
func (h *Handler) SetAvailability(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	var req SetAvailabilityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ErrorResponse(w, "Invalid request payload", http.StatusBadRequest)
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	settings, err := req.toSettings()
	if err != nil {
		utils.ErrorResponse(w, err.Error(), http.StatusBadRequest)
		return
	}

	user, err := h.service.SetAvailability(r.Context(), userID, settings)
	if err != nil {
		if errors.Is(err, ErrInvalidSettings) {
			utils.ErrorResponse(w, "Invalid availability settings", http.StatusBadRequest)
			return
		}
		utils.ErrorResponse(w, "Failed to update availability", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, user, http.StatusOK)
}

// CheckAvailability returns the reachability verdict for a user right now
func (h *Handler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	verdict := h.service.CheckAvailability(r.Context(), chi.URLParam(r, "id"), time.Now())
	utils.SuccessResponse(w, verdict, http.StatusOK)
}

// UploadProfilePicture stores a new profile picture and returns the
// updated record
func (h *Handler) UploadProfilePicture(w http.ResponseWriter, r *http.Request) {
	userID := r.Context().Value("userID").(string)

	// 10MB limit for profile pictures
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		utils.ErrorResponse(w, "File too large or invalid form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("picture")
	if err != nil {
		utils.ErrorResponse(w, "Picture file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	user, err := h.service.UploadProfilePicture(r.Context(), userID, file, header)
	if err != nil {
		utils.ErrorResponse(w, "Failed to upload picture", http.StatusInternalServerError)
		return
	}

	utils.SuccessResponse(w, user, http.StatusOK)
}
