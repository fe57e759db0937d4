package handler

import (
	"github.com/mqsalx/user-management-api/internal/config"
	"github.com/mqsalx/user-management-api/internal/handler/http"
	"github.com/mqsalx/user-management-api/internal/logger"
	"github.com/mqsalx/user-management-api/internal/service"
)

// Handlers aggregates the transport-layer entry points of the
// application. Only HTTP is served.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg config.App, logger *logger.Logger) *Handlers {
	logger.Info().Msg("creating new handlers...")

	return &Handlers{
		HTTP: http.NewHandler(services, cfg, logger),
	}
}
