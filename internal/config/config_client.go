package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientApp holds client-side application settings derived from the shared
// structured config.
type ClientApp struct {
	// SessionCookieName is the name of the cookie carrying the session token.
	SessionCookieName string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// ServerAddress is the HTTP endpoint address of the auth server.
	ServerAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains application-level client settings.
	App ClientApp
	// Adapter contains client transport address and timeout.
	Adapter ClientAdapter
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps only the fields
// relevant to the client runtime, and validates the resulting [ClientConfig].
// A listen address without a host (e.g. ":5000") is dialed on localhost.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	address := cfg.Server.HTTPAddress
	if strings.HasPrefix(address, ":") {
		address = "localhost" + address
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			SessionCookieName: cfg.App.SessionCookieName,
		},
		Adapter: ClientAdapter{
			ServerAddress:  address,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
	}

	return clientCfg, clientCfg.validate()
}
