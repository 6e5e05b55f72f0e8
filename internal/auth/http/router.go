package http

import (
	"github.com/gin-gonic/gin"

	"github.com/nexatech/nexatech-web/internal/ratelimit"
)

// Register mounts login and logout on the /admin group. limiter may be nil.
func (h *Handler) Register(rg *gin.RouterGroup, limiter *ratelimit.Limiter) {
	login := []gin.HandlerFunc{h.Login}
	if limiter != nil {
		login = append([]gin.HandlerFunc{limiter.Mark()}, login...)
	}
	rg.GET("/login", h.LoginPage)
	rg.POST("/login", login...)
	rg.POST("/logout", h.Logout)
}
