package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	authmw "github.com/nexatech/nexatech-web/internal/auth/middleware"
	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/logging"
	"github.com/nexatech/nexatech-web/internal/ratelimit"
)

// LoginPage shows the sign-in form, or skips it when already signed in.
func (h *Handler) LoginPage(c *gin.Context) {
	if authmw.SessionFrom(c) != nil {
		c.Redirect(http.StatusFound, DashboardPath)
		return
	}
	h.renderLogin(c, http.StatusOK, "", "")
}

// Login exchanges the submitted credentials for a session cookie. Failures
// re-render the form with the backend's message.
func (h *Handler) Login(c *gin.Context) {
	email := strings.TrimSpace(c.PostForm("email"))
	password := c.PostForm("password")

	if ratelimit.Limited(c) {
		h.renderLogin(c, http.StatusTooManyRequests, email, ratelimit.Message)
		return
	}
	if email == "" || password == "" {
		h.renderLogin(c, http.StatusUnprocessableEntity, email, "Email and password are required")
		return
	}

	sess, err := h.auth.Login(c.Request.Context(), email, password)
	if err != nil {
		status := http.StatusBadGateway
		var re *backend.RequestError
		if errors.As(err, &re) && re.Status >= 400 && re.Status < 500 {
			status = re.Status
		}
		h.renderLogin(c, status, email, backend.UserMessage(err))
		return
	}

	h.sessions.SetCookie(c, sess)
	c.Redirect(http.StatusSeeOther, DashboardPath)
}

func (h *Handler) Logout(c *gin.Context) {
	if sess := authmw.SessionFrom(c); sess != nil {
		if err := h.auth.Logout(c.Request.Context(), sess.ID); err != nil {
			logging.NewLogger(c.Request.Context()).LogError("logout", err)
		}
	}
	h.sessions.ClearCookie(c)
	c.Redirect(http.StatusSeeOther, authmw.LoginPath)
}

func (h *Handler) renderLogin(c *gin.Context, status int, email, errMsg string) {
	c.HTML(status, "bare/login", gin.H{
		"Title": "Admin Login",
		"Email": email,
		"Error": errMsg,
	})
}
