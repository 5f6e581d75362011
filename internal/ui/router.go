package ui

import (
	"net/http"

	"ev-campus-client/internal/pkg/config"
	"ev-campus-client/internal/ui/middleware"
	"ev-campus-client/internal/ui/pages"

	"github.com/gin-gonic/gin"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, handler *pages.Handler) {
	engine.SetHTMLTemplate(loadTemplates())
	setupMiddleware(engine, cfg)
	setupRoutes(engine, handler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
}

func setupRoutes(engine *gin.Engine, handler *pages.Handler) {
	engine.GET("/health", healthCheck)
	engine.GET("/static/app.css", serveStylesheet)

	addRoutes(engine, []route{
		{Method: http.MethodGet, Path: "/", Handler: handler.Home},
		{Method: http.MethodGet, Path: "/login", Handler: handler.ShowLogin},
		{Method: http.MethodGet, Path: "/register", Handler: handler.ShowRegister},
		{Method: http.MethodPost, Path: "/auth/login", Handler: handler.Login},
		{Method: http.MethodPost, Path: "/auth/register", Handler: handler.Register},
		{Method: http.MethodPost, Path: "/auth/logout", Handler: handler.Logout},
		{Method: http.MethodGet, Path: "/dashboard", Handler: handler.Dashboard},
		{Method: http.MethodPost, Path: "/bookings", Handler: handler.CreateBooking},
		{Method: http.MethodPost, Path: "/bookings/:id/cancel", Handler: handler.RequestCancel},
		{Method: http.MethodPost, Path: "/bookings/cancel/confirm", Handler: handler.ConfirmCancel},
		{Method: http.MethodPost, Path: "/bookings/cancel/dismiss", Handler: handler.DismissCancel},
		{Method: http.MethodGet, Path: "/leaderboard", Handler: handler.Leaderboard},
		{Method: http.MethodGet, Path: "/stations", Handler: handler.Stations},
		{Method: http.MethodGet, Path: "/map", Handler: handler.CampusMap},
		{Method: http.MethodGet, Path: "/contact", Handler: handler.Contact},
	})
}

func addRoutes(engine *gin.Engine, routes []route) {
	for _, r := range routes {
		engine.Handle(r.Method, r.Path, r.Handler)
	}
}

func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func serveStylesheet(c *gin.Context) {
	c.Data(http.StatusOK, "text/css; charset=utf-8", stylesheet)
}
