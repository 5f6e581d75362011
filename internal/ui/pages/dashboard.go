package pages

import (
	"errors"
	"net/http"
	"strconv"

	"ev-campus-client/internal/confirm"
	"ev-campus-client/internal/notify"
	"ev-campus-client/internal/view"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Dashboard(c *gin.Context) {
	if _, ok := h.sessions.Current(); !ok {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := h.dashboard.Load(c.Request.Context(), h.ops); err != nil {
		h.notifier.Notify("Could not load your bookings.", notify.KindError)
	}

	bookings, err := view.ToBookingViews(h.dashboard.Bookings())
	if err != nil {
		bookings = nil
	}

	pendingID, pendingOpen := h.gate.Pending()
	h.render(c, http.StatusOK, "dashboard", gin.H{
		"Bookings":     bookings,
		"Loaded":       h.dashboard.Loaded(),
		"CO2SavingsKg": h.dashboard.CO2SavingsKg(),
		"ConfirmID":    pendingID,
		"ConfirmOpen":  pendingOpen,
	})
}

func (h *Handler) RequestCancel(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/dashboard")
		return
	}
	h.gate.Request(bookingID)
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) ConfirmCancel(c *gin.Context) {
	// Outcome toasts are emitted by the gate; a stray confirm with nothing
	// pending just falls through to the dashboard.
	if err := h.gate.Confirm(c.Request.Context()); err != nil && !errors.Is(err, confirm.ErrNothingPending) {
		_ = c.Error(err)
	}
	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (h *Handler) DismissCancel(c *gin.Context) {
	h.gate.Dismiss()
	c.Redirect(http.StatusSeeOther, "/dashboard")
}
