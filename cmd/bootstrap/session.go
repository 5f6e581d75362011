package bootstrap

import (
	"context"

	"ev-campus-client/internal/pkg/config"
	"ev-campus-client/internal/session"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionStorage,
		session.NewStore,
	),
	fx.Invoke(registerBootstrap),
)

func NewSessionStorage(cfg config.Config) (session.Storage, error) {
	return session.NewFileStorage(cfg.Session.CredentialFile)
}

// The persisted credential is restored before the UI starts serving, so the
// first rendered page already knows who is logged in.
func registerBootstrap(lc fx.Lifecycle, store *session.Store) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return store.Bootstrap()
		},
	})
}
