// Package backendtest runs an in-memory stand-in for the NexaTech REST
// backend, for use in tests.
package backendtest

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/nexatech/nexatech-web/internal/content/domain"
)

const (
	AdminEmail    = "admin@example.com"
	AdminPassword = "validpass"
	AdminUsername = "admin"
)

var signingKey = []byte("backendtest")

type Server struct {
	*httptest.Server

	mu        sync.Mutex
	services  []domain.Service
	portfolio []domain.PortfolioItem
	contacts  []domain.Contact
	hits      map[string]int
	failCode  int
	failMsg   string
	revoked   map[string]bool

	// TokenTTL is the lifetime written into issued tokens.
	TokenTTL time.Duration
	// OmitLoginUser drops the user from login responses.
	OmitLoginUser bool
}

// New starts a fake backend that is closed when the test ends.
func New(t testing.TB) *Server {
	gin.SetMode(gin.TestMode)
	s := &Server{
		hits:     make(map[string]int),
		revoked:  make(map[string]bool),
		TokenTTL: time.Hour,
	}

	r := gin.New()
	r.Use(s.count, s.failure)

	r.POST("/auth/login", s.login)
	r.GET("/auth/me", s.requireToken, s.me)

	pub := r.Group("/public")
	pub.GET("/services", s.listServices)
	pub.GET("/services/:id", s.getService)
	pub.GET("/portfolio", s.listPortfolio)
	pub.GET("/portfolio/:id", s.getPortfolio)
	pub.POST("/contact", s.submitContact)

	adm := r.Group("/admin", s.requireToken)
	adm.GET("/services", s.listServices)
	adm.GET("/services/:id", s.getService)
	adm.POST("/services", s.createService)
	adm.PUT("/services/:id", s.updateService)
	adm.DELETE("/services/:id", s.deleteService)
	adm.GET("/portfolio", s.listPortfolio)
	adm.GET("/portfolio/:id", s.getPortfolio)
	adm.POST("/portfolio", s.createPortfolio)
	adm.PUT("/portfolio/:id", s.updatePortfolio)
	adm.DELETE("/portfolio/:id", s.deletePortfolio)
	adm.GET("/contacts", s.listContacts)
	adm.PUT("/contacts/:id/status", s.updateContactStatus)
	adm.DELETE("/contacts/:id", s.deleteContact)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Hits returns how many requests reached "METHOD /path".
func (s *Server) Hits(route string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[route]
}

// TotalHits returns the number of requests served so far.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	n := 0
	for _, v := range s.hits {
		n += v
	}
	return n
}

// Fail makes every following request answer with code and message. A zero
// code restores normal behaviour.
func (s *Server) Fail(code int, message string) {
	s.mu.Lock()
	s.failCode, s.failMsg = code, message
	s.mu.Unlock()
}

// Revoke makes token answer 401 from now on.
func (s *Server) Revoke(token string) {
	s.mu.Lock()
	s.revoked[token] = true
	s.mu.Unlock()
}

// IssueToken returns a token accepted by the admin routes.
func (s *Server) IssueToken() string {
	return s.sign(time.Now().Add(s.TokenTTL))
}

// IssueExpiredToken returns a token whose exp lies in the past.
func (s *Server) IssueExpiredToken() string {
	return s.sign(time.Now().Add(-time.Minute))
}

func (s *Server) sign(exp time.Time) string {
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   AdminUsername,
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	signed, _ := tok.SignedString(signingKey)
	return signed
}

func (s *Server) AddService(v domain.Service) {
	s.mu.Lock()
	s.services = append(s.services, v)
	s.mu.Unlock()
}

func (s *Server) AddPortfolio(v domain.PortfolioItem) {
	s.mu.Lock()
	s.portfolio = append(s.portfolio, v)
	s.mu.Unlock()
}

func (s *Server) AddContact(v domain.Contact) {
	s.mu.Lock()
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	s.contacts = append(s.contacts, v)
	s.mu.Unlock()
}

func (s *Server) Services() []domain.Service {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Service(nil), s.services...)
}

func (s *Server) PortfolioItems() []domain.PortfolioItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.PortfolioItem(nil), s.portfolio...)
}

func (s *Server) Contacts() []domain.Contact {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Contact(nil), s.contacts...)
}

func (s *Server) count(c *gin.Context) {
	s.mu.Lock()
	s.hits[c.Request.Method+" "+c.Request.URL.Path]++
	s.mu.Unlock()
	c.Next()
}

func (s *Server) failure(c *gin.Context) {
	s.mu.Lock()
	code, msg := s.failCode, s.failMsg
	s.mu.Unlock()
	if code == 0 {
		c.Next()
		return
	}
	if msg == "" {
		c.String(code, "upstream unavailable")
	} else {
		c.JSON(code, gin.H{"message": msg})
	}
	c.Abort()
}

func (s *Server) requireToken(c *gin.Context) {
	raw := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	s.mu.Lock()
	revoked := s.revoked[raw]
	s.mu.Unlock()

	_, err := jwt.Parse(raw, func(*jwt.Token) (any, error) { return signingKey, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Name}))
	if raw == "" || err != nil || revoked {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Not authorized, token failed"})
		return
	}
	c.Next()
}

func (s *Server) login(c *gin.Context) {
	var in struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body"})
		return
	}
	if in.Email != AdminEmail || in.Password != AdminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
		return
	}
	out := gin.H{"token": s.IssueToken()}
	if !s.OmitLoginUser {
		out["user"] = adminUser()
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": adminUser()})
}

func adminUser() domain.User {
	return domain.User{ID: "u-1", Username: AdminUsername, Email: AdminEmail}
}

func (s *Server) listServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"services": s.Services()})
}

func (s *Server) getService(c *gin.Context) {
	for _, v := range s.Services() {
		if v.ID == c.Param("id") {
			c.JSON(http.StatusOK, gin.H{"service": v})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
}

func (s *Server) createService(c *gin.Context) {
	var in domain.Service
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.services {
		if v.ID == in.ID {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Service with this ID already exists"})
			return
		}
	}
	in.RecordID = uuid.NewString()
	s.services = append(s.services, in)
	c.JSON(http.StatusCreated, gin.H{"service": in})
}

func (s *Server) updateService(c *gin.Context) {
	var in domain.Service
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.services {
		if v.ID == c.Param("id") {
			in.ID, in.RecordID = v.ID, v.RecordID
			s.services[i] = in
			c.JSON(http.StatusOK, gin.H{"service": in})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
}

func (s *Server) deleteService(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.services {
		if v.ID == c.Param("id") {
			s.services = append(s.services[:i], s.services[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Service deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Service not found"})
}

func (s *Server) listPortfolio(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"portfolio": s.PortfolioItems()})
}

func (s *Server) getPortfolio(c *gin.Context) {
	for _, v := range s.PortfolioItems() {
		if v.ID == c.Param("id") {
			c.JSON(http.StatusOK, gin.H{"portfolio": v})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
}

func (s *Server) createPortfolio(c *gin.Context) {
	var in domain.PortfolioItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, v := range s.portfolio {
		if v.ID == in.ID {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Portfolio item with this ID already exists"})
			return
		}
	}
	in.RecordID = uuid.NewString()
	s.portfolio = append(s.portfolio, in)
	c.JSON(http.StatusCreated, gin.H{"portfolio": in})
}

func (s *Server) updatePortfolio(c *gin.Context) {
	var in domain.PortfolioItem
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.portfolio {
		if v.ID == c.Param("id") {
			in.ID, in.RecordID = v.ID, v.RecordID
			s.portfolio[i] = in
			c.JSON(http.StatusOK, gin.H{"portfolio": in})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
}

func (s *Server) deletePortfolio(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.portfolio {
		if v.ID == c.Param("id") {
			s.portfolio = append(s.portfolio[:i], s.portfolio[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Portfolio item deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Portfolio item not found"})
}

func (s *Server) submitContact(c *gin.Context) {
	var in domain.ContactSubmission
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}
	if in.Name == "" || in.Email == "" || in.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please provide name, email and message"})
		return
	}
	ct := domain.Contact{
		ID:        uuid.NewString(),
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Service:   in.Service,
		Message:   in.Message,
		Status:    domain.ContactNew,
		CreatedAt: time.Now().UTC(),
	}
	s.AddContact(ct)
	c.JSON(http.StatusCreated, gin.H{"message": "Message sent successfully"})
}

func (s *Server) listContacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"contacts": s.Contacts()})
}

func (s *Server) updateContactStatus(c *gin.Context) {
	var in struct {
		Status domain.ContactStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status"})
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.contacts {
		if v.ID == c.Param("id") {
			s.contacts[i].Status = in.Status
			c.JSON(http.StatusOK, gin.H{"contact": s.contacts[i]})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
}

func (s *Server) deleteContact(c *gin.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, v := range s.contacts {
		if v.ID == c.Param("id") {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			c.JSON(http.StatusOK, gin.H{"message": "Contact deleted"})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"message": "Contact not found"})
}
