package pages

import (
	"net/http"
	"strconv"

	"ev-campus-client/internal/client"
	"ev-campus-client/internal/notify"
	"ev-campus-client/internal/view"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Home(c *gin.Context) {
	filter := c.DefaultQuery("type", view.FilterAll)

	vehicles, err := h.ops.ListVehicles(c.Request.Context())
	if err != nil {
		h.notifier.Notify("Could not load vehicle data.", notify.KindError)
	}

	views, err := view.ToVehicleViews(view.FilterVehicles(vehicles, filter))
	if err != nil {
		views = nil
	}

	h.render(c, http.StatusOK, "home", gin.H{
		"Vehicles": views,
		"Filter":   filter,
	})
}

func (h *Handler) CreateBooking(c *gin.Context) {
	if _, ok := h.sessions.Current(); !ok {
		h.notifier.Notify("Please log in to book a vehicle.", notify.KindError)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	vehicleID, err := strconv.ParseInt(c.PostForm("vehicleId"), 10, 64)
	if err != nil {
		h.notifier.Notify("An unexpected error occurred.", notify.KindError)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if _, err := h.ops.CreateBooking(c.Request.Context(), vehicleID); err != nil {
		h.notifier.Notify(client.RejectedMessage(err, "An unexpected error occurred."), notify.KindError)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	h.notifier.Notify("Vehicle booked successfully! Check your dashboard.", notify.KindSuccess)
	c.Redirect(http.StatusSeeOther, "/")
}
