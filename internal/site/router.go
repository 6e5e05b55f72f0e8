package site

import (
	"github.com/gin-gonic/gin"

	"github.com/nexatech/nexatech-web/internal/ratelimit"
)

// Register mounts the public pages on r. limiter throttles contact
// submissions and may be nil.
func (h *Handler) Register(r gin.IRouter, limiter *ratelimit.Limiter) {
	r.GET("/", h.Home)
	r.GET("/about", h.About)
	r.GET("/services", h.Services)
	r.GET("/services/:id", h.ServiceDetail)
	r.GET("/portfolio", h.Portfolio)
	r.GET("/contact", h.ContactPage)

	submit := []gin.HandlerFunc{h.SubmitContact}
	if limiter != nil {
		submit = append([]gin.HandlerFunc{limiter.Mark()}, submit...)
	}
	r.POST("/contact", submit...)
}
