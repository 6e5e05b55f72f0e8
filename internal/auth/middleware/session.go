package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexatech/nexatech-web/internal/auth/domain"
	"github.com/nexatech/nexatech-web/internal/auth/service"
	"github.com/nexatech/nexatech-web/internal/logging"
)

const (
	CookieName = "adminToken"
	ctxSession = "admin_session"
	LoginPath  = "/admin/login"
)

// Sessions binds the admin session cookie to gin requests.
type Sessions struct {
	auth   *service.AuthService
	secure bool
}

func NewSessions(auth *service.AuthService, secure bool) *Sessions {
	return &Sessions{auth: auth, secure: secure}
}

// Load resolves the adminToken cookie into a session on the gin context.
// Unknown or expired sessions leave the request unauthenticated.
func (m *Sessions) Load() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(CookieName)
		if err != nil || id == "" {
			c.Next()
			return
		}

		sess, err := m.auth.Session(c.Request.Context(), id)
		switch {
		case err == nil:
			c.Set(ctxSession, sess)
		case errors.Is(err, domain.ErrSessionNotFound), errors.Is(err, domain.ErrSessionExpired):
			m.ClearCookie(c)
		default:
			logging.NewLogger(c.Request.Context()).LogError("load_session", err)
		}
		c.Next()
	}
}

// Require redirects to the login page unless a session was loaded. It runs
// before any protected handler writes output.
func (m *Sessions) Require() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c) == nil {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAPI is Require for JSON endpoints: it answers 401 instead of
// redirecting.
func (m *Sessions) RequireAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if SessionFrom(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "Not authorized"})
			return
		}
		c.Next()
	}
}

// Invalidate ends the current session after the backend rejected its token
// and sends the browser to the login page.
func (m *Sessions) Invalidate(c *gin.Context) {
	if sess := SessionFrom(c); sess != nil {
		if err := m.auth.Logout(c.Request.Context(), sess.ID); err != nil {
			logging.NewLogger(c.Request.Context()).LogError("invalidate_session", err)
		}
	}
	m.ClearCookie(c)
	c.Redirect(http.StatusFound, LoginPath)
	c.Abort()
}

func (m *Sessions) SetCookie(c *gin.Context, sess *domain.Session) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, sess.ID, int(m.auth.Sessions().TTL().Seconds()), "/", "", m.secure, true)
}

func (m *Sessions) ClearCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(CookieName, "", -1, "/", "", m.secure, true)
}

// SessionFrom returns the session loaded for this request, or nil.
func SessionFrom(c *gin.Context) *domain.Session {
	v, ok := c.Get(ctxSession)
	if !ok {
		return nil
	}
	sess, _ := v.(*domain.Session)
	return sess
}
