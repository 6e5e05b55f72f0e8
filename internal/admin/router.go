package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authmw "github.com/nexatech/nexatech-web/internal/auth/middleware"
	"github.com/nexatech/nexatech-web/internal/auth/service"
	"github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/content/sitecopy"
)

type Deps struct {
	Auth     *service.AuthService
	Sessions *authmw.Sessions
	API      API
	// Uploads may be nil when no image host is configured.
	Uploads ImageUploader
	Copy    *sitecopy.Content
}

// Register mounts the back office on rg, which is expected to be the /admin
// group with sessions already loaded.
func Register(rg *gin.RouterGroup, d Deps) {
	b := base{auth: d.Auth, sessions: d.Sessions}

	dash := rg.Group("/dashboard", d.Sessions.Require())
	{
		h := &Dashboard{base: b, api: d.API, copy: d.Copy}
		dash.GET("", h.index)
		dash.GET("/analytics", h.analytics)

		NewManager(b, "services", "/admin/dashboard/services", ServiceSchema(), Resource[domain.Service](serviceResource{api: d.API}), d.Uploads).
			Register(dash.Group("/services"))
		NewManager(b, "portfolio", "/admin/dashboard/portfolio", PortfolioSchema(), Resource[domain.PortfolioItem](portfolioResource{api: d.API}), d.Uploads).
			Register(dash.Group("/portfolio"))
		(&Contacts{base: b, api: d.API}).Register(dash.Group("/contacts"))
	}

	rg.POST("/api/uploads/image", d.Sessions.RequireAPI(), uploadImage(d.Uploads))

	rg.GET("", func(c *gin.Context) {
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})
}
