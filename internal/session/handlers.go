// internal/session/handlers.go

package session

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/aviato-app/aviato-backend/internal/common/utils"
)

type Handler struct {
	manager *Manager
}

func NewHandler(manager *Manager) *Handler {
	return &Handler{manager: manager}
}

type SetLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

type SetThemeRequest struct {
	Theme string `json:"theme" validate:"required"`
}

// GetSettings returns the current language and theme preferences
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"language":  h.manager.Language(),
		"theme":     h.manager.Theme(),
		"languages": Languages(),
	})
}

// GetLanguage returns the active language
func (h *Handler) GetLanguage(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"language": h.manager.Language()})
}

// GetTheme returns the active theme
func (h *Handler) GetTheme(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"theme": h.manager.Theme()})
}

// SetLanguage switches the UI language
func (h *Handler) SetLanguage(w http.ResponseWriter, r *http.Request) {
	var req SetLanguageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.manager.SetLanguage(r.Context(), req.Language); err != nil {
		if errors.Is(err, ErrUnknownLanguage) {
			utils.RespondWithError(w, http.StatusBadRequest, "Unsupported language")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save language")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"language": req.Language})
}

// SetTheme switches between light, dark and system themes
func (h *Handler) SetTheme(w http.ResponseWriter, r *http.Request) {
	var req SetThemeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := utils.ValidateStruct(req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.manager.SetTheme(r.Context(), req.Theme); err != nil {
		if errors.Is(err, ErrUnknownTheme) {
			utils.RespondWithError(w, http.StatusBadRequest, "Unsupported theme")
			return
		}
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save theme")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"theme": req.Theme})
}

// GetTranslations returns the string catalog for the active language
func (h *Handler) GetTranslations(w http.ResponseWriter, r *http.Request) {
	lang := h.manager.Language()

	catalog := make(map[string]string, len(translations[DefaultLanguage]))
	for key := range translations[DefaultLanguage] {
		catalog[key] = Translate(lang, key)
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]interface{}{
		"language": lang,
		"strings":  catalog,
	})
}
