package http

import (
	"net/http"

	"github.com/MKhiriev/go-daily-diary/internal/utils"
)

func (h *Handler) statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.StatisticsService.Statistics(r.Context())
	if err != nil {
		writeError(w, r, err, "*Handler.statistics", "error calculating statistics")
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) search(w http.ResponseWriter, r *http.Request) {
	results, err := h.services.SearchService.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, r, err, "*Handler.search", "error searching entries")
		return
	}

	utils.WriteJSON(w, results, http.StatusOK)
}
