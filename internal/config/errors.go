package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAuthScheme indicates that App.AuthScheme is not one of the
	// recognized schemes ("none", "basic").
	ErrInvalidAuthScheme = errors.New("invalid auth scheme configuration")
	// ErrInvalidBcryptCost indicates a bcrypt work factor outside of the
	// range accepted by the hashing library.
	ErrInvalidBcryptCost = errors.New("invalid bcrypt cost configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN or unknown driver).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing HTTP listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates invalid client transport settings
	// (for example, missing server address or zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidAppConfigs indicates invalid client application settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
