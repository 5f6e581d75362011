package pages

import (
	"net/http"

	"ev-campus-client/internal/view"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Leaderboard(c *gin.Context) {
	h.render(c, http.StatusOK, "leaderboard", gin.H{
		"Entries": view.Leaderboard,
	})
}

func (h *Handler) Stations(c *gin.Context) {
	filter := c.DefaultQuery("status", "All")
	h.render(c, http.StatusOK, "stations", gin.H{
		"Stations": view.FilterStations(filter),
		"Filter":   filter,
	})
}

func (h *Handler) CampusMap(c *gin.Context) {
	h.render(c, http.StatusOK, "map", gin.H{
		"Buildings": view.MapBuildings,
		"Pins":      view.MapPins,
	})
}

func (h *Handler) Contact(c *gin.Context) {
	h.render(c, http.StatusOK, "contact", gin.H{
		"Team": view.Team,
	})
}
