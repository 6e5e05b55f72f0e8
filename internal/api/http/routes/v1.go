package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	httpapi "github.com/nexatech/nexatech-web/internal/api/http"
	"github.com/nexatech/nexatech-web/internal/ratelimit"
)

type V1Deps struct {
	Contact     httpapi.ContactSubmitter
	CORSOrigins []string
	// Limiter throttles contact submissions; nil disables it.
	Limiter *ratelimit.Limiter
}

func RegisterV1(r *gin.Engine, dep V1Deps) {
	api := r.Group("/api/v1")
	// cors.New panics on an empty origin list; no origins means same-origin only.
	if len(dep.CORSOrigins) > 0 {
		api.Use(cors.New(cors.Config{
			AllowOrigins:  dep.CORSOrigins,
			AllowMethods:  []string{"GET", "POST", "OPTIONS"},
			AllowHeaders:  []string{"Origin", "Content-Type", "X-Request-Id"},
			ExposeHeaders: []string{"X-Request-Id"},
			MaxAge:        12 * time.Hour,
		}))
	}

	contact := []gin.HandlerFunc{httpapi.NewContactHandler(dep.Contact).Submit}
	if dep.Limiter != nil {
		contact = append([]gin.HandlerFunc{dep.Limiter.JSON()}, contact...)
	}
	api.POST("/contact", contact...)
}
