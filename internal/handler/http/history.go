package http

import (
	"net/http"

	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) history(w http.ResponseWriter, r *http.Request) {
	days, err := h.services.HistoryService.Month(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		writeError(w, r, err, "*Handler.history", "error getting month history")
		return
	}

	utils.WriteJSON(w, days, http.StatusOK)
}

func (h *Handler) favorites(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.HistoryService.Favorites(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.favorites", "error getting favorites")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) timeline(w http.ResponseWriter, r *http.Request) {
	section := models.Section(chi.URLParam(r, "section"))

	groups, err := h.services.TimelineService.Timeline(r.Context(), section)
	if err != nil {
		writeError(w, r, err, "*Handler.timeline", "error building timeline")
		return
	}

	utils.WriteJSON(w, groups, http.StatusOK)
}
