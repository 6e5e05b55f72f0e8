package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/backend/backendtest"
	"github.com/nexatech/nexatech-web/internal/monitor"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func serveHealth(t *testing.T, h *HealthHandler) HealthResponse {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h.RegisterRoutes(r)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, w.Code)

	var out HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestHealthCheck_Defaults(t *testing.T) {
	out := serveHealth(t, NewHealthHandler("nexatech-web", "1.0.0", nil, nil, nil))
	assert.Equal(t, "healthy", out.Status)
	assert.Equal(t, "nexatech-web", out.Service)
	assert.Equal(t, "disabled", out.SessionStore)
	assert.Equal(t, monitor.StatusUnknown, out.Upstream.Status)
	assert.Nil(t, out.Backend)
}

func TestHealthCheck_Dependencies(t *testing.T) {
	fake := backendtest.New(t)
	client := backend.NewClient(fake.URL, time.Second)
	_, err := client.PublicServices(context.Background())
	require.NoError(t, err)

	mon := monitor.New(fake.URL, "@every 1h", time.Second)
	mon.Probe(context.Background())

	up := pingFunc(func(context.Context) error { return nil })
	out := serveHealth(t, NewHealthHandler("nexatech-web", "1.0.0", up, mon, client))
	assert.Equal(t, "up", out.SessionStore)
	assert.Equal(t, monitor.StatusUp, out.Upstream.Status)
	require.NotNil(t, out.Backend)
	assert.EqualValues(t, 1, out.Backend.Calls)

	down := pingFunc(func(context.Context) error { return errors.New("connection refused") })
	out = serveHealth(t, NewHealthHandler("nexatech-web", "1.0.0", down, mon, client))
	assert.Equal(t, "degraded", out.Status)
	assert.Equal(t, "down", out.SessionStore)
}
