package stubserver

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer, h.withTraceID, h.withLogging)

	// control route, never affected by the mode
	router.Put("/stub/mode/{mode}", h.setMode)

	router.Group(func(r chi.Router) {
		r.Use(h.withMode)

		r.Get("/health", h.health)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)

			r.Post("/send-request", h.sendRequest)
			r.Post("/send-request-by-biodata", h.sendRequestByBiodata)
			r.Post("/send-request-by-objectid", h.sendRequestByObjectID)
			r.Get("/request-status/{sender}/{receiver}", h.requestStatus)
			r.Delete("/cancel-request/{id}", h.cancelRequest)

			r.Get("/user/{email}", h.userInfo)
			r.Get("/browse-matches/{email}", h.browseMatches)
			r.Get("/all-biodata", h.allBiodata)

			r.Post("/send-verification-email", h.sendVerificationEmail)
			r.Post("/register-user", h.registerUser)
			r.Post("/complete-registration", h.completeRegistration)
		})
	})

	router.NotFound(h.notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
