package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nexatech/nexatech-web/internal/upload"
)

// uploadImage accepts a multipart "image" field and answers with the hosted
// URL. The admin form posts files inline; this endpoint serves scripted
// clients.
func uploadImage(uploads ImageUploader) gin.HandlerFunc {
	return func(c *gin.Context) {
		if uploads == nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": upload.MsgNotConfigured})
			return
		}
		fh, err := c.FormFile("image")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": upload.MsgNotImage})
			return
		}
		att := uploads.Upload(c.Request.Context(), fh)
		if att.State != upload.Success {
			status := http.StatusBadGateway
			if att.Err == upload.MsgNotImage || att.Err == upload.MsgUnreadable || att.Err == upload.MsgTooLarge {
				status = http.StatusBadRequest
			}
			c.JSON(status, gin.H{"ok": false, "error": att.Err})
			return
		}
		c.JSON(http.StatusOK, gin.H{"ok": true, "url": att.URL})
	}
}
