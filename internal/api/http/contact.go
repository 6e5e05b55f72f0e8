package http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/logging"
)

// ContactSubmitter forwards contact messages to the backend.
type ContactSubmitter interface {
	SubmitContact(ctx context.Context, sub domain.ContactSubmission) error
}

type ContactHandler struct {
	backend ContactSubmitter
}

func NewContactHandler(b ContactSubmitter) *ContactHandler {
	return &ContactHandler{backend: b}
}

// Submit accepts a JSON contact message. Validation failures answer 422
// with a message per field.
func (h *ContactHandler) Submit(c *gin.Context) {
	var sub domain.ContactSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid request body"})
		return
	}
	sub = sub.Normalize()

	if errs := sub.Validate(); len(errs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"ok": false, "error": "validation failed", "fields": errs})
		return
	}

	if err := h.backend.SubmitContact(c.Request.Context(), sub); err != nil {
		logging.NewLogger(c.Request.Context()).LogWarnf("api_contact", "submit failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"ok": false, "error": "Failed to send message. Please try again."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "message": "Message sent successfully"})
}
