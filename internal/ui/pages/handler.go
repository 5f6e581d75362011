package pages

import (
	"ev-campus-client/internal/client"
	"ev-campus-client/internal/confirm"
	"ev-campus-client/internal/notify"
	"ev-campus-client/internal/session"
	"ev-campus-client/internal/view"

	"github.com/gin-gonic/gin"
)

// Handler renders the pages. It consumes the session store, the domain
// operations, the notifier and the confirmation gate; it never reaches the
// request pipeline directly.
type Handler struct {
	sessions  *session.Store
	ops       client.Operations
	notifier  *notify.Notifier
	dashboard *view.Dashboard
	gate      *confirm.Gate
}

func NewHandler(
	sessions *session.Store,
	ops client.Operations,
	notifier *notify.Notifier,
	dashboard *view.Dashboard,
	gate *confirm.Gate,
) *Handler {
	return &Handler{
		sessions:  sessions,
		ops:       ops,
		notifier:  notifier,
		dashboard: dashboard,
		gate:      gate,
	}
}

// render injects the cross-page state (session, toast) every template needs.
func (h *Handler) render(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if sess, ok := h.sessions.Current(); ok {
		data["User"] = sess
	}
	data["Toast"] = h.notifier.Current()
	c.HTML(status, name, data)
}
