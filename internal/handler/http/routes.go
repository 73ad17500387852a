package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router of the diary API.
//
// Authentication is enforced only when the service set carries an
// AuthService, i.e. under the remote backend.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging, withGZip)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		if h.services.AuthService != nil {
			r.Post("/api/user/register", h.register)
			r.Post("/api/user/login", h.login)
		}
		r.Get("/api/version/", h.getServerVersion)
	})

	router.Group(func(r chi.Router) {
		if h.services.AuthService != nil {
			r.Use(h.auth)
		}

		r.Get("/api/diary", h.diary)

		r.Get("/api/entries", h.listEntries)
		r.Get("/api/entries/{date}", h.getEntry)
		r.With(h.entryHashing).Put("/api/entries/{date}", h.saveEntry)

		r.Get("/api/history/{month}", h.history)
		r.Get("/api/favorites", h.favorites)
		r.Get("/api/timeline/{section}", h.timeline)

		r.Get("/api/statistics", h.statistics)
		r.Get("/api/search", h.search)
		r.Get("/api/export", h.export)

		r.Get("/api/preferences", h.getPreferences)
		r.Put("/api/preferences", h.updatePreferences)
		r.Delete("/api/preferences", h.resetPreferences)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
