package http

import (
	"encoding/json"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-daily-diary/internal/app"
	"github.com/MKhiriev/go-daily-diary/internal/logger"
	"github.com/MKhiriev/go-daily-diary/internal/utils"
	"github.com/MKhiriev/go-daily-diary/models"
	"github.com/go-chi/chi/v5"
)

// diary opens the day named by the "date" query parameter. An absent or
// invalid date redirects to the same view with today's date.
func (h *Handler) diary(w http.ResponseWriter, r *http.Request) {
	active, ok := h.services.EntryService.ActiveDate(r.URL.Query().Get("date"))
	if !ok {
		query := r.URL.Query()
		query.Set("date", active)
		target := url.URL{Path: r.URL.Path, RawQuery: query.Encode()}

		logger.FromRequest(r).Debug().Str("func", "*Handler.diary").Str("date", active).Msg("redirecting to active date")
		http.Redirect(w, r, target.String(), http.StatusFound)
		return
	}

	h.writeEntry(w, r, active)
}

func (h *Handler) getEntry(w http.ResponseWriter, r *http.Request) {
	h.writeEntry(w, r, chi.URLParam(r, "date"))
}

func (h *Handler) writeEntry(w http.ResponseWriter, r *http.Request, date string) {
	entry, err := h.services.EntryService.GetEntry(r.Context(), date)
	if err != nil {
		writeError(w, r, err, "*Handler.getEntry", "error getting entry")
		return
	}

	utils.WriteJSON(w, entry, http.StatusOK)
}

func (h *Handler) saveEntry(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var entry models.DailyEntry
	if err := json.NewDecoder(r.Body).Decode(&entry); err != nil {
		log.Err(err).Str("func", "*Handler.saveEntry").Msg("Invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	saved, err := h.services.EntryService.SaveEntry(r.Context(), chi.URLParam(r, "date"), entry)
	if err != nil {
		writeError(w, r, err, "*Handler.saveEntry", "error saving entry")
		return
	}

	utils.WriteJSON(w, saved, http.StatusOK)
}

// listEntries returns the entries of [from, to], or every entry when both
// query parameters are absent.
func (h *Handler) listEntries(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	entries, err := h.services.EntryService.ListEntries(r.Context(), query.Get("from"), query.Get("to"))
	if err != nil {
		writeError(w, r, err, "*Handler.listEntries", "error listing entries")
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}
