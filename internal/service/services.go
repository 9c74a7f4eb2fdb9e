package service

import (
	"github.com/Dzrekey001/user-auth-service/internal/config"
	"github.com/Dzrekey001/user-auth-service/internal/logger"
	"github.com/Dzrekey001/user-auth-service/internal/store"
	"github.com/Dzrekey001/user-auth-service/internal/utils"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(
			storages.UserRepository,
			utils.NewBcryptHasher(cfg.App.BcryptCost),
			utils.NewUUIDGenerator(),
			logger,
		),
	}
}
