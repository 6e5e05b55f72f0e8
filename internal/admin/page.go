package admin

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	authdomain "github.com/nexatech/nexatech-web/internal/auth/domain"
	authmw "github.com/nexatech/nexatech-web/internal/auth/middleware"
	"github.com/nexatech/nexatech-web/internal/auth/service"
	"github.com/nexatech/nexatech-web/internal/backend"
	content "github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/logging"
)

// base carries what every admin view needs: the current session and a way
// to leave banners on it.
type base struct {
	auth     *service.AuthService
	sessions *authmw.Sessions
}

func (b base) token(c *gin.Context) string {
	if sess := authmw.SessionFrom(c); sess != nil {
		return sess.Token
	}
	return ""
}

// page returns template data with the keys every admin layout reads.
func (b base) page(c *gin.Context, title, active string, h gin.H) gin.H {
	data := gin.H{
		"Title":  title,
		"Active": active,
		"User":   content.User{},
		"Flash":  (*authdomain.Flash)(nil),
		"Error":  "",
	}
	if sess := authmw.SessionFrom(c); sess != nil {
		data["User"] = sess.User
		data["Flash"] = sess.FlashFor(active)
	}
	for k, v := range h {
		data[k] = v
	}
	return data
}

func (b base) flash(c *gin.Context, view string, kind authdomain.FlashKind, msg string) {
	sess := authmw.SessionFrom(c)
	if sess == nil {
		return
	}
	// SetFlash logs its own failures; a lost banner does not fail the action.
	_ = b.auth.SetFlash(c.Request.Context(), sess.ID, view, authdomain.Flash{Kind: kind, Message: msg})
}

// expired handles a backend rejection of the session token. It returns true
// when the response has been written.
func (b base) expired(c *gin.Context, err error) bool {
	if !backend.IsUnauthorized(err) {
		return false
	}
	logging.NewLogger(c.Request.Context()).LogWarnf("admin", "backend rejected session token: %v", err)
	b.sessions.Invalidate(c)
	return true
}

// formStatus picks the status code for a form re-rendered after a backend
// error.
func formStatus(err error) int {
	var re *backend.RequestError
	if errors.As(err, &re) && re.Status >= 400 && re.Status < 500 {
		return re.Status
	}
	return http.StatusBadGateway
}
