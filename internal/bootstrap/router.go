package bootstrap

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/nexatech/nexatech-web/internal/admin"
	httpapi "github.com/nexatech/nexatech-web/internal/api/http"
	"github.com/nexatech/nexatech-web/internal/api/http/middleware"
	"github.com/nexatech/nexatech-web/internal/api/http/routes"
	authhttp "github.com/nexatech/nexatech-web/internal/auth/http"
	authmw "github.com/nexatech/nexatech-web/internal/auth/middleware"
	"github.com/nexatech/nexatech-web/internal/auth/service"
	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/content/sitecopy"
	"github.com/nexatech/nexatech-web/internal/monitor"
	"github.com/nexatech/nexatech-web/internal/ratelimit"
	"github.com/nexatech/nexatech-web/internal/site"
	"github.com/nexatech/nexatech-web/internal/web"
)

type RouterDeps struct {
	ServiceName  string
	Version      string
	Backend      *backend.Client
	Auth         *service.AuthService
	CookieSecure bool
	Copy         *sitecopy.Content
	Renderer     *web.Renderer
	// Uploads is nil when no image host key is configured.
	Uploads      admin.ImageUploader
	Monitor      *monitor.Monitor
	CORSOrigins  []string
	ContactLimit *ratelimit.Limiter
	LoginLimit   *ratelimit.Limiter
	// TrustedProxies lists proxy addresses or CIDRs whose forwarding headers
	// are believed. Empty means the peer address is the client IP.
	TrustedProxies []string
}

func BuildRouter(dep RouterDeps) *gin.Engine {
	r := gin.New()
	r.HTMLRender = dep.Renderer
	if err := r.SetTrustedProxies(dep.TrustedProxies); err != nil {
		log.Printf("[warn] operation=BuildRouter invalid trusted proxies %v, trusting none: %v", dep.TrustedProxies, err)
		_ = r.SetTrustedProxies(nil)
	}

	pages := site.New(dep.Backend, dep.Copy)
	r.Use(middleware.RequestIDMiddleware(), pages.Recovery())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.Auth.Sessions(), dep.Monitor, dep.Backend)
	healthHandler.RegisterRoutes(r)

	routes.RegisterV1(r, routes.V1Deps{
		Contact:     dep.Backend,
		CORSOrigins: dep.CORSOrigins,
		Limiter:     dep.ContactLimit,
	})

	pages.Register(r, dep.ContactLimit)

	sessions := authmw.NewSessions(dep.Auth, dep.CookieSecure)
	adminGroup := r.Group("/admin", sessions.Load())
	authhttp.New(dep.Auth, sessions).Register(adminGroup, dep.LoginLimit)
	admin.Register(adminGroup, admin.Deps{
		Auth:     dep.Auth,
		Sessions: sessions,
		API:      dep.Backend,
		Uploads:  dep.Uploads,
		Copy:     dep.Copy,
	})

	r.NoRoute(pages.NotFound)
	return r
}
