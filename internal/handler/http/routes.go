package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withRequestAuth)

	// routes without a session
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Post("/users", h.register)
		r.Post("/sessions", h.login)
		r.Post("/reset_password", h.resetPasswordToken)
		r.Put("/reset_password", h.updatePassword)
	})

	// routes requiring a valid session cookie
	router.Group(func(r chi.Router) {
		r.Use(h.withSessionUser)
		r.Delete("/sessions", h.logout)
		r.Get("/profile", h.profile)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
