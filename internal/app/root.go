package app

import (
	"fmt"

	"github.com/oshokin/steam-session/internal/client/steam"
	"github.com/oshokin/steam-session/internal/config"
	"github.com/oshokin/steam-session/internal/service/auth"
	"github.com/oshokin/steam-session/internal/service/market"
	"github.com/oshokin/steam-session/internal/session"
	http_transport "github.com/oshokin/steam-session/internal/transport/http"
)

// components holds the services of one command run, sharing one cookie store.
type components struct {
	store     *session.Store
	transport *http_transport.Client
	auth      auth.Service
	market    market.Service
}

// newComponents builds the services from a validated configuration.
func newComponents(cfg *config.Config) (*components, error) {
	store := session.NewStore()

	transport, err := http_transport.NewClientFromConfig(cfg, store)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize HTTP transport: %w", err)
	}

	steamClient, err := steam.NewClient(cfg, transport)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Steam client: %w", err)
	}

	return &components{
		store:     store,
		transport: transport,
		auth:      auth.NewService(steamClient, store),
		market:    market.NewService(cfg, steamClient, store),
	}, nil
}

// close releases idle connections.
func (c *components) close() {
	c.transport.CloseIdleConnections()
}

// loginParams collects the credentials to log in with.
// The configuration drops its reference to the password, leaving the returned copy the only one.
func loginParams(cfg *config.Config) auth.Params {
	params := auth.Params{
		AccountName:   cfg.ResolvedAccountName(),
		Password:      cfg.Secrets.Password,
		SharedSecret:  cfg.ResolvedSharedSecret(),
		TwoFactorCode: cfg.Secrets.TwoFactorCode,
	}

	cfg.Secrets.Password = ""

	return params
}
