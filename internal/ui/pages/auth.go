package pages

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"ev-campus-client/internal/client"
	"ev-campus-client/internal/notify"

	"github.com/gin-gonic/gin"
)

func (h *Handler) ShowLogin(c *gin.Context) {
	h.render(c, http.StatusOK, "auth", gin.H{"Mode": "login"})
}

func (h *Handler) ShowRegister(c *gin.Context) {
	h.render(c, http.StatusOK, "auth", gin.H{"Mode": "register"})
}

func (h *Handler) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")

	credential, err := h.ops.Login(c.Request.Context(), email, password)
	if err != nil {
		h.notifier.Notify(authErrorMessage(err, "login"), notify.KindError)
		c.Redirect(http.StatusSeeOther, "/login")
		return
	}

	h.establish(c, credential, "")
}

func (h *Handler) Register(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	password := c.PostForm("password")

	credential, err := h.ops.Register(c.Request.Context(), name, email, password)
	if err != nil {
		h.notifier.Notify(authErrorMessage(err, "register"), notify.KindError)
		c.Redirect(http.StatusSeeOther, "/register")
		return
	}

	h.establish(c, credential, name)
}

func (h *Handler) establish(c *gin.Context, credential, preferredName string) {
	sess, err := h.sessions.Establish(credential, preferredName)
	if err != nil {
		slog.Warn("server issued an undecodable credential", "error", err.Error())
		h.notifier.Notify("An unexpected error occurred.", notify.KindError)
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	h.notifier.Notify(fmt.Sprintf("Welcome, %s!", sess.DisplayName), notify.KindSuccess)
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) Logout(c *gin.Context) {
	if err := h.sessions.Clear(); err != nil {
		slog.Warn("failed to clear session", "error", err.Error())
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// The server reports auth failures under "message"; a bare 403 means bad
// credentials, anything else gets the per-mode default.
func authErrorMessage(err error, mode string) string {
	var rejected *client.RejectedError
	if errors.As(err, &rejected) {
		if rejected.ServerMessage != "" {
			return rejected.ServerMessage
		}
		if rejected.StatusCode == http.StatusForbidden {
			return "Invalid email or password."
		}
	}
	return fmt.Sprintf("An error occurred during %s.", mode)
}
