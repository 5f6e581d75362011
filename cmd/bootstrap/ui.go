package bootstrap

import (
	"ev-campus-client/internal/client"
	"ev-campus-client/internal/confirm"
	"ev-campus-client/internal/notify"
	"ev-campus-client/internal/ui"
	"ev-campus-client/internal/ui/pages"
	"ev-campus-client/internal/view"

	"go.uber.org/fx"
)

var UIModule = fx.Module("ui",
	fx.Provide(
		view.NewDashboard,
		NewGate,
		pages.NewHandler,
	),
	fx.Invoke(ui.NewRouter),
)

func NewGate(ops client.Operations, dashboard *view.Dashboard, notifier *notify.Notifier) *confirm.Gate {
	return confirm.NewGate(ops, dashboard, notifier)
}
