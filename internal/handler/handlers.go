package handler

import (
	"github.com/Dzrekey001/user-auth-service/internal/config"
	"github.com/Dzrekey001/user-auth-service/internal/handler/http"
	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.Server.HTTPAddress != "" {
		httpHandler, err := http.NewHandler(services, cfg.App, logger)
		if err != nil {
			return nil, err
		}
		handlers.HTTP = httpHandler
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
