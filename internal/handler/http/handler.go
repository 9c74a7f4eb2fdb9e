package http

import (
	"github.com/Dzrekey001/user-auth-service/internal/config"
	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/internal/service"
)

type Handler struct {
	services *service.Services

	// authenticator gates API routes outside excludedPaths. Selected by
	// config; see NewAuthenticator.
	authenticator Authenticator
	excludedPaths []string

	// cookieName is the name of the session cookie.
	cookieName string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) (*Handler, error) {
	authenticator, err := NewAuthenticator(cfg.AuthScheme, services.AuthService)
	if err != nil {
		return nil, err
	}

	logger.Info().Str("auth_scheme", cfg.AuthScheme).Msg("http handler created")
	return &Handler{
		services:      services,
		authenticator: authenticator,
		excludedPaths: cfg.AuthExcludedPaths,
		cookieName:    cfg.SessionCookieName,
		logger:        logger,
	}, nil
}
