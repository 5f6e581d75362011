package bootstrap

import (
	"ev-campus-client/internal/notify"
	"ev-campus-client/internal/pkg/clock"
	"ev-campus-client/internal/pkg/config"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		clock.NewRealScheduler,
		NewNotifier,
	),
)

func NewNotifier(cfg config.Config, scheduler clock.Scheduler) *notify.Notifier {
	return notify.NewNotifier(scheduler, cfg.Session.ToastDuration)
}
