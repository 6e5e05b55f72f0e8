package site

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/backend/backendtest"
	"github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/content/sitecopy"
	"github.com/nexatech/nexatech-web/internal/ratelimit"
	"github.com/nexatech/nexatech-web/internal/web"
)

func newSite(t *testing.T, limiter *ratelimit.Limiter) (*gin.Engine, *backendtest.Server) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	fake := backendtest.New(t)
	copy, err := sitecopy.Load("")
	require.NoError(t, err)

	h := New(backend.NewClient(fake.URL, 5*time.Second), copy)
	r := gin.New()
	r.HTMLRender = web.MustNew()
	r.Use(h.Recovery())
	h.Register(r, limiter)
	r.GET("/boom", func(*gin.Context) { panic("boom") })
	r.NoRoute(h.NotFound)
	return r, fake
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func postContact(r *gin.Engine, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/contact", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func seed(fake *backendtest.Server) {
	fake.AddService(domain.Service{ID: "web-dev", Title: "Web Development", ShortDescription: "Modern sites",
		FullDescription: "Full stack web", LongDescription: "We build fast sites", Features: []string{"SEO"}})
	fake.AddPortfolio(domain.PortfolioItem{ID: "shop", Title: "Shop Platform", Category: domain.CategoryWebDevelopment})
	fake.AddPortfolio(domain.PortfolioItem{ID: "scan", Title: "Vision Scanner", Category: domain.CategoryAIML})
}

func TestHome(t *testing.T) {
	r, fake := newSite(t, nil)
	seed(fake)

	w := get(r, "/")
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Web Development")
	assert.Contains(t, body, "Shop Platform")
	assert.Contains(t, body, "<title>NexaTech</title>")
}

func TestHome_BackendDownStillRenders(t *testing.T) {
	r, fake := newSite(t, nil)
	fake.Fail(http.StatusServiceUnavailable, "Service unavailable")

	w := get(r, "/")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Service unavailable")
}

func TestAbout(t *testing.T) {
	r, fake := newSite(t, nil)

	w := get(r, "/about")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "<title>About | NexaTech</title>")
	assert.Zero(t, fake.TotalHits())
}

func TestServices(t *testing.T) {
	r, fake := newSite(t, nil)
	seed(fake)

	w := get(r, "/services")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/services/web-dev")

	w = get(r, "/services/web-dev")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "We build fast sites")

	w = get(r, "/services/ghost")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")
}

func TestServices_Empty(t *testing.T) {
	r, _ := newSite(t, nil)
	assert.Contains(t, get(r, "/services").Body.String(), "No services available yet.")
}

func TestPortfolio_CategoryFilter(t *testing.T) {
	r, fake := newSite(t, nil)
	seed(fake)

	body := get(r, "/portfolio").Body.String()
	assert.Contains(t, body, "Shop Platform")
	assert.Contains(t, body, "Vision Scanner")
	assert.Less(t, strings.Index(body, ">All<"), strings.Index(body, ">Web Development<"))
	assert.Contains(t, body, `data-lucide="brain"`)

	body = get(r, "/portfolio?category="+url.QueryEscape("AI/ML")).Body.String()
	assert.Contains(t, body, "Vision Scanner")
	assert.NotContains(t, body, "Shop Platform")

	body = get(r, "/portfolio?category=Gardening").Body.String()
	assert.Contains(t, body, "Shop Platform")
	assert.Contains(t, body, "Vision Scanner")
}

func TestPortfolio_FilterHelpers(t *testing.T) {
	cats := categoryFilters()
	require.Len(t, cats, len(domain.Categories())+1)
	assert.Equal(t, "All", cats[0])

	items := []domain.PortfolioItem{{ID: "a", Category: domain.CategoryOther}, {ID: "b", Category: domain.CategoryMobileApp}}
	got := filterByCategory(items, domain.CategoryMobileApp)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
}

func TestContact_Validation(t *testing.T) {
	r, fake := newSite(t, nil)

	w := postContact(r, url.Values{"name": {"Ann"}, "email": {"not-an-email"}, "message": {"short"}})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "Please enter a valid email")
	assert.Contains(t, body, "Message must be at least 10 characters")
	assert.Contains(t, body, `value="Ann"`)
	assert.Zero(t, fake.Hits("POST /public/contact"))
}

func TestContact_Success(t *testing.T) {
	r, fake := newSite(t, nil)

	w := postContact(r, url.Values{
		"name":    {"Ann Lee"},
		"email":   {"ann@example.com"},
		"service": {"Web Development"},
		"message": {"We need a new website"},
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Your message has been sent successfully")
	assert.NotContains(t, w.Body.String(), `value="Ann Lee"`)

	stored := fake.Contacts()
	require.Len(t, stored, 1)
	assert.Equal(t, "Ann Lee", stored[0].Name)
	assert.Equal(t, domain.ContactNew, stored[0].Status)
}

func TestContact_BackendFailureKeepsForm(t *testing.T) {
	r, fake := newSite(t, nil)
	fake.Fail(http.StatusInternalServerError, "")

	w := postContact(r, url.Values{"name": {"Ann Lee"}, "email": {"ann@example.com"}, "message": {"We need a new website"}})
	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "Failed to send message. Please try again.")
	assert.Contains(t, w.Body.String(), `value="Ann Lee"`)
}

func TestContact_RateLimited(t *testing.T) {
	r, fake := newSite(t, ratelimit.New(1))
	form := url.Values{"name": {"Ann Lee"}, "email": {"ann@example.com"}, "message": {"We need a new website"}}

	require.Equal(t, http.StatusOK, postContact(r, form).Code)
	w := postContact(r, form)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), ratelimit.Message)
	assert.Len(t, fake.Contacts(), 1)
}

func TestNotFoundAndRecovery(t *testing.T) {
	r, _ := newSite(t, nil)

	w := get(r, "/does-not-exist")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Page Not Found")

	w = get(r, "/boom")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Something went wrong")
	assert.Contains(t, w.Body.String(), "Reload Page")
}
