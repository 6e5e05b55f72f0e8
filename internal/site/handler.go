// Package site serves the public marketing pages.
package site

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/content/sitecopy"
	"github.com/nexatech/nexatech-web/internal/logging"
	"github.com/nexatech/nexatech-web/internal/ratelimit"
)

// homeProjects is how many portfolio items the home page highlights.
const homeProjects = 3

const categoryAll = "All"

// PublicAPI is the unauthenticated part of the backend.
type PublicAPI interface {
	PublicServices(ctx context.Context) ([]domain.Service, error)
	PublicService(ctx context.Context, id string) (*domain.Service, error)
	PublicPortfolio(ctx context.Context) ([]domain.PortfolioItem, error)
	SubmitContact(ctx context.Context, sub domain.ContactSubmission) error
}

type Handler struct {
	api  PublicAPI
	copy *sitecopy.Content
}

func New(api PublicAPI, copy *sitecopy.Content) *Handler {
	return &Handler{api: api, copy: copy}
}

// page returns template data with the keys the public layout reads.
func (h *Handler) page(title, active string, extra gin.H) gin.H {
	data := gin.H{
		"Title":  title,
		"Active": active,
		"Copy":   h.copy,
		"Error":  "",
	}
	for k, v := range extra {
		data[k] = v
	}
	return data
}

func (h *Handler) Home(c *gin.Context) {
	g, ctx := errgroup.WithContext(c.Request.Context())
	var (
		services []domain.Service
		projects []domain.PortfolioItem
	)
	g.Go(func() (err error) {
		services, err = h.api.PublicServices(ctx)
		return err
	})
	g.Go(func() (err error) {
		projects, err = h.api.PublicPortfolio(ctx)
		return err
	})

	errMsg := ""
	if err := g.Wait(); err != nil {
		logging.NewLogger(c.Request.Context()).LogWarnf("home", "backend unavailable: %v", err)
		errMsg = backend.UserMessage(err)
	}
	if len(projects) > homeProjects {
		projects = projects[:homeProjects]
	}

	c.HTML(http.StatusOK, "public/home", h.page("", "home", gin.H{
		"Services": services,
		"Projects": projects,
		"Error":    errMsg,
	}))
}

func (h *Handler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "public/about", h.page("About", "about", nil))
}

func (h *Handler) Services(c *gin.Context) {
	services, err := h.api.PublicServices(c.Request.Context())
	errMsg := ""
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogWarnf("services", "backend unavailable: %v", err)
		errMsg = backend.UserMessage(err)
	}
	c.HTML(http.StatusOK, "public/services", h.page("Services", "services", gin.H{
		"Services": services,
		"Error":    errMsg,
	}))
}

func (h *Handler) ServiceDetail(c *gin.Context) {
	svc, err := h.api.PublicService(c.Request.Context(), c.Param("id"))
	if backend.IsNotFound(err) {
		h.NotFound(c)
		return
	}
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogWarnf("service_detail", "backend unavailable: %v", err)
		c.HTML(http.StatusOK, "public/service_detail", h.page("Services", "services", gin.H{
			"Service": (*domain.Service)(nil),
			"Error":   backend.UserMessage(err),
		}))
		return
	}
	c.HTML(http.StatusOK, "public/service_detail", h.page(svc.Title, "services", gin.H{
		"Service": svc,
	}))
}

// Portfolio lists projects, optionally narrowed by ?category=. Unknown
// categories fall back to showing everything.
func (h *Handler) Portfolio(c *gin.Context) {
	items, err := h.api.PublicPortfolio(c.Request.Context())
	errMsg := ""
	if err != nil {
		logging.NewLogger(c.Request.Context()).LogWarnf("portfolio", "backend unavailable: %v", err)
		errMsg = backend.UserMessage(err)
	}

	selected := categoryAll
	if cat, err := domain.ParseCategory(c.Query("category")); err == nil {
		selected = cat.String()
		items = filterByCategory(items, cat)
	}

	c.HTML(http.StatusOK, "public/portfolio", h.page("Portfolio", "portfolio", gin.H{
		"Items":      items,
		"Categories": categoryFilters(),
		"Selected":   selected,
		"Error":      errMsg,
	}))
}

func categoryFilters() []string {
	out := []string{categoryAll}
	for _, c := range domain.Categories() {
		out = append(out, c.String())
	}
	return out
}

func filterByCategory(items []domain.PortfolioItem, cat domain.Category) []domain.PortfolioItem {
	out := make([]domain.PortfolioItem, 0, len(items))
	for _, it := range items {
		if it.Category == cat {
			out = append(out, it)
		}
	}
	return out
}

func (h *Handler) ContactPage(c *gin.Context) {
	h.renderContact(c, http.StatusOK, domain.ContactSubmission{}, map[string]string{}, false, "")
}

func (h *Handler) SubmitContact(c *gin.Context) {
	var form domain.ContactSubmission
	_ = c.ShouldBind(&form)
	form = form.Normalize()

	if ratelimit.Limited(c) {
		h.renderContact(c, http.StatusTooManyRequests, form, map[string]string{}, false, ratelimit.Message)
		return
	}
	if errs := form.Validate(); len(errs) > 0 {
		h.renderContact(c, http.StatusUnprocessableEntity, form, errs, false, "")
		return
	}

	if err := h.api.SubmitContact(c.Request.Context(), form); err != nil {
		logging.NewLogger(c.Request.Context()).LogWarnf("contact", "submit failed: %v", err)
		h.renderContact(c, http.StatusBadGateway, form, map[string]string{}, false, "Failed to send message. Please try again.")
		return
	}
	logging.NewLogger(c.Request.Context()).LogInfof("contact", "message received from %s", form.Email)
	h.renderContact(c, http.StatusOK, domain.ContactSubmission{}, map[string]string{}, true, "")
}

func (h *Handler) renderContact(c *gin.Context, status int, form domain.ContactSubmission, errs map[string]string, ok bool, errMsg string) {
	c.HTML(status, "public/contact", h.page("Contact", "contact", gin.H{
		"Form":    form,
		"Errors":  errs,
		"Success": ok,
		"Error":   errMsg,
	}))
}

func (h *Handler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "public/not_found", h.page("Page Not Found", "", nil))
}

// Recovery turns a panic in any handler into the error page.
func (h *Handler) Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, rec any) {
		logging.NewLogger(c.Request.Context()).LogErrorf("recovery", "panic: %v", rec)
		c.HTML(http.StatusInternalServerError, "bare/error", gin.H{"Title": "Something went wrong"})
		c.Abort()
	})
}
