package routes

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/ratelimit"
)

type recorder struct{ got []domain.ContactSubmission }

func (r *recorder) SubmitContact(_ context.Context, sub domain.ContactSubmission) error {
	r.got = append(r.got, sub)
	return nil
}

func newEngine(dep V1Deps) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterV1(r, dep)
	return r
}

func contactRequest() *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/contact",
		strings.NewReader(`{"name":"Ann","email":"ann@example.com","message":"Please call me back"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "https://nexatech.example")
	return req
}

func TestRegisterV1_CORS(t *testing.T) {
	rec := &recorder{}
	r := newEngine(V1Deps{Contact: rec, CORSOrigins: []string{"https://nexatech.example"}})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, contactRequest())
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "https://nexatech.example", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Len(t, rec.got, 1)

	req := contactRequest()
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Len(t, rec.got, 1)
}

func TestRegisterV1_RateLimit(t *testing.T) {
	rec := &recorder{}
	r := newEngine(V1Deps{Contact: rec, Limiter: ratelimit.New(1)})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, contactRequest())
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, contactRequest())
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Too many requests. Please try again later."}`, w.Body.String())
	assert.Len(t, rec.got, 1)
}
