package config

import "time"

// Recognized values for [App.AuthScheme] and [DB.Driver].
const (
	AuthSchemeNone  = "none"
	AuthSchemeBasic = "basic"

	DriverPgx    = "pgx"
	DriverSQLite = "sqlite3"
)

const defaultRequestTimeout = 30 * time.Second

// bcrypt cost bounds, mirrored from golang.org/x/crypto/bcrypt so this
// package does not depend on the crypto library just for validation.
const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.AuthScheme != AuthSchemeNone && cfg.App.AuthScheme != AuthSchemeBasic {
		return ErrInvalidAuthScheme
	}

	if cfg.App.BcryptCost != 0 && (cfg.App.BcryptCost < minBcryptCost || cfg.App.BcryptCost > maxBcryptCost) {
		return ErrInvalidBcryptCost
	}

	if cfg.Storage.DB.Driver != DriverPgx && cfg.Storage.DB.Driver != DriverSQLite {
		return ErrInvalidStorageConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.ServerAddress == "" || cfg.Adapter.RequestTimeout == 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.App.SessionCookieName == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
