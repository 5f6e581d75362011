package bootstrap

import (
	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	SessionModule,
	ClientModule,
	NotifyModule,
	UIModule,
)
