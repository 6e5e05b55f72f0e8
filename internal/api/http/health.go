package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nexatech/nexatech-web/internal/backend"
	"github.com/nexatech/nexatech-web/internal/monitor"
)

type HealthResponse struct {
	Status       string           `json:"status"`
	Timestamp    time.Time        `json:"timestamp"`
	Service      string           `json:"service"`
	Version      string           `json:"version"`
	SessionStore string           `json:"session_store"`
	Upstream     monitor.Snapshot `json:"upstream"`
	Backend      *backend.Metrics `json:"backend,omitempty"`
}

// Pinger reports whether a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	serviceName string
	version     string
	store       Pinger
	upstream    *monitor.Monitor
	client      *backend.Client
}

// NewHealthHandler builds the handler. store, upstream and client may each
// be nil.
func NewHealthHandler(serviceName, version string, store Pinger, upstream *monitor.Monitor, client *backend.Client) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		store:       store,
		upstream:    upstream,
		client:      client,
	}
}

func (h *HealthHandler) HealthCheck(c *gin.Context) {
	storeStatus := "disabled"
	if h.store != nil {
		pingCtx, cancel := context.WithTimeout(c.Request.Context(), 1*time.Second)
		defer cancel()

		if err := h.store.Ping(pingCtx); err != nil {
			storeStatus = "down"
		} else {
			storeStatus = "up"
		}
	}

	upstream := monitor.Snapshot{Status: monitor.StatusUnknown}
	if h.upstream != nil {
		upstream = h.upstream.Last()
	}

	var metrics *backend.Metrics
	if h.client != nil {
		m := h.client.Metrics()
		metrics = &m
	}

	status := "healthy"
	if storeStatus == "down" {
		status = "degraded"
	}

	c.JSON(http.StatusOK, HealthResponse{
		Status:       status,
		Timestamp:    time.Now().UTC(),
		Service:      h.serviceName,
		Version:      h.version,
		SessionStore: storeStatus,
		Upstream:     upstream,
		Backend:      metrics,
	})
}

func (h *HealthHandler) RegisterRoutes(r gin.IRouter) {
	r.GET("/health", h.HealthCheck)
	r.GET("/healthz", h.HealthCheck)
}
