package http

import (
	"github.com/mqsalx/user-management-api/internal/config"
	"github.com/mqsalx/user-management-api/internal/logger"
	"github.com/mqsalx/user-management-api/internal/service"
)

// Handler carries the dependencies of every HTTP route and middleware.
//
// The allow-list of unauthenticated paths is built once at construction
// from the configured API version and is immutable afterwards; it is the
// single source of truth for which endpoints bypass authentication.
type Handler struct {
	services *service.Services

	apiVersion string
	allowList  map[string]struct{}

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	h := &Handler{
		services:   services,
		apiVersion: cfg.APIVersion,
		logger:     logger,
	}

	h.allowList = map[string]struct{}{
		h.path("/login"): {},
		"/docs":          {},
		"/openapi.json":  {},
	}

	logger.Info().Msg("http handler created")
	return h
}

// path prefixes a route with the versioned API segment,
// e.g. path("/users") → "/api-v1/users".
func (h *Handler) path(route string) string {
	return "/api-" + h.apiVersion + route
}
