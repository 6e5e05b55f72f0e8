package admin

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/content/sitecopy"
)

// DashboardStats are the counters on the dashboard landing page.
type DashboardStats struct {
	Services    int
	Portfolio   int
	Contacts    int
	NewContacts int
}

type Dashboard struct {
	base
	api  API
	copy *sitecopy.Content
}

func (h *Dashboard) index(c *gin.Context) {
	token := h.token(c)
	g, ctx := errgroup.WithContext(c.Request.Context())

	var (
		services  []domain.Service
		portfolio []domain.PortfolioItem
		contacts  []domain.Contact
	)
	g.Go(func() (err error) {
		services, err = h.api.Services(ctx, token)
		return err
	})
	g.Go(func() (err error) {
		portfolio, err = h.api.Portfolio(ctx, token)
		return err
	})
	g.Go(func() (err error) {
		contacts, err = h.api.Contacts(ctx, token)
		return err
	})

	if err := g.Wait(); err != nil {
		if h.expired(c, err) {
			return
		}
		c.HTML(http.StatusOK, "admin/dashboard", h.page(c, "Dashboard", "dashboard", gin.H{
			"Stats": DashboardStats{},
			"Error": backend.UserMessage(err),
		}))
		return
	}

	c.HTML(http.StatusOK, "admin/dashboard", h.page(c, "Dashboard", "dashboard", gin.H{
		"Stats": DashboardStats{
			Services:    len(services),
			Portfolio:   len(portfolio),
			Contacts:    len(contacts),
			NewContacts: domain.CountContacts(contacts).New,
		},
	}))
}

func (h *Dashboard) analytics(c *gin.Context) {
	c.HTML(http.StatusOK, "admin/analytics", h.page(c, "Analytics", "analytics", gin.H{
		"Analytics": h.copy.Analytics,
	}))
}
