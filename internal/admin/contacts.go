package admin

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	authdomain "github.com/nexatech/nexatech-web/internal/auth/domain"
	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/logging"
)

const contactsPath = "/admin/dashboard/contacts"

// Contacts serves the contact inbox. Contacts are never created here and
// only their status can change.
type Contacts struct {
	base
	api API
}

func (h *Contacts) Register(rg gin.IRouter) {
	rg.GET("", h.list)
	rg.POST("/:id/status", h.setStatus)
	rg.GET("/:id/delete", h.confirmDelete)
	rg.POST("/:id/delete", h.delete)
}

func (h *Contacts) list(c *gin.Context) {
	contacts, err := h.api.Contacts(c.Request.Context(), h.token(c))
	if err != nil {
		if h.expired(c, err) {
			return
		}
		c.HTML(http.StatusOK, "admin/contacts", h.page(c, "Contacts", "contacts", gin.H{
			"Contacts": []domain.Contact(nil),
			"Open":     "",
			"Statuses": domain.ContactStatuses(),
			"Stats":    domain.CountContacts(nil),
			"Error":    backend.UserMessage(err),
		}))
		return
	}

	c.HTML(http.StatusOK, "admin/contacts", h.page(c, "Contacts", "contacts", gin.H{
		"Contacts": contacts,
		"Open":     c.Query("open"),
		"Statuses": domain.ContactStatuses(),
		"Stats":    domain.CountContacts(contacts),
	}))
}

func (h *Contacts) setStatus(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	status, err := domain.ParseContactStatus(c.PostForm("status"))
	if err != nil {
		h.flash(c, "contacts", authdomain.FlashError, "Invalid contact status")
		c.Redirect(http.StatusSeeOther, contactsPath)
		return
	}

	if err := h.api.UpdateContactStatus(ctx, h.token(c), id, status); err != nil {
		if h.expired(c, err) {
			return
		}
		logging.NewLogger(ctx).LogWarnf("contacts", "status update %s failed: %v", id, err)
		h.flash(c, "contacts", authdomain.FlashError, backend.UserMessage(err))
		c.Redirect(http.StatusSeeOther, contactsPath)
		return
	}

	h.flash(c, "contacts", authdomain.FlashSuccess, "Status updated successfully")
	c.Redirect(http.StatusSeeOther, contactsPath+"?open="+url.QueryEscape(id))
}

func (h *Contacts) confirmDelete(c *gin.Context) {
	id := c.Param("id")
	name := id
	contacts, err := h.api.Contacts(c.Request.Context(), h.token(c))
	if err != nil && h.expired(c, err) {
		return
	}
	for _, ct := range contacts {
		if ct.ID == id {
			name = ct.Name
			break
		}
	}
	c.HTML(http.StatusOK, "admin/confirm", h.page(c, "Delete Contact", "contacts", gin.H{
		"Meta":   ViewMeta{Singular: "Contact", Plural: "Contacts", Base: contactsPath},
		"Name":   name,
		"Action": contactsPath + "/" + id + "/delete",
	}))
}

func (h *Contacts) delete(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")
	if err := h.api.DeleteContact(ctx, h.token(c), id); err != nil {
		if h.expired(c, err) {
			return
		}
		logging.NewLogger(ctx).LogWarnf("contacts", "delete %s failed: %v", id, err)
		h.flash(c, "contacts", authdomain.FlashError, backend.UserMessage(err))
		c.Redirect(http.StatusSeeOther, contactsPath)
		return
	}
	h.flash(c, "contacts", authdomain.FlashSuccess, "Contact deleted successfully")
	c.Redirect(http.StatusSeeOther, contactsPath)
}
