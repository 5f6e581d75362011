package bootstrap

import (
	"ev-campus-client/internal/client"
	"ev-campus-client/internal/pkg/config"
	"ev-campus-client/internal/session"

	"go.uber.org/fx"
)

var ClientModule = fx.Module("client",
	fx.Provide(
		NewPipeline,
		client.NewOperations,
	),
)

func NewPipeline(cfg config.Config, store *session.Store) *client.Pipeline {
	return client.NewPipeline(cfg.API, store)
}
