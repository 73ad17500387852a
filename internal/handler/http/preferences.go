package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-daily-diary/internal/app"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
)

func (h *Handler) getPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.services.PreferencesService.GetPreferences(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.getPreferences", "error loading preferences")
		return
	}

	utils.WriteJSON(w, prefs, http.StatusOK)
}

// updatePreferences merges the fields present in the body over the stored
// preferences.
func (h *Handler) updatePreferences(w http.ResponseWriter, r *http.Request) {
	var update models.StatisticsPreferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updatePreferences").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	prefs, err := h.services.PreferencesService.UpdatePreferences(r.Context(), update)
	if err != nil {
		writeError(w, r, err, "*Handler.updatePreferences", "error saving preferences")
		return
	}

	utils.WriteJSON(w, prefs, http.StatusOK)
}

func (h *Handler) resetPreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.services.PreferencesService.ResetPreferences(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.resetPreferences", "error resetting preferences")
		return
	}

	utils.WriteJSON(w, prefs, http.StatusOK)
}
