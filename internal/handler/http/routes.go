package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init assembles the router. The authentication gate wraps every route;
// it consults its own allow-list to decide which paths pass through
// unauthenticated, so no route is registered outside the gate.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.auth)

	// unauthenticated by allow-list
	router.Post(h.path("/login"), h.login)
	router.Get("/docs", h.docs)
	router.Get("/openapi.json", h.openAPISchema)

	router.Route(h.path("/users"), func(r chi.Router) {
		r.Post("/", h.createUser)
		r.Get("/", h.findUsers)
		r.Get("/{userID}", h.findUser)
		r.Patch("/{userID}", h.updateUser)
		r.Delete("/{userID}", h.deleteUser)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
