// Package monitor probes the backend on a cron schedule so the health
// endpoint can report whether it is reachable.
package monitor

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/nexatech/nexatech-web/internal/logging"
)

const (
	StatusUnknown = "unknown"
	StatusUp      = "up"
	StatusDown    = "down"
)

// probePath is a cheap public endpoint that needs no token.
const probePath = "/public/services"

// Snapshot is the outcome of the latest probe.
type Snapshot struct {
	Status     string    `json:"status"`
	StatusCode int       `json:"status_code,omitempty"`
	LatencyMs  int64     `json:"latency_ms"`
	CheckedAt  time.Time `json:"checked_at,omitempty"`
	Error      string    `json:"error,omitempty"`
}

type Monitor struct {
	baseURL  string
	schedule string
	client   *http.Client
	cron     *cron.Cron

	mu   sync.RWMutex
	last Snapshot
}

func New(baseURL, schedule string, timeout time.Duration) *Monitor {
	return &Monitor{
		baseURL:  baseURL,
		schedule: schedule,
		client:   &http.Client{Timeout: timeout},
		last:     Snapshot{Status: StatusUnknown},
	}
}

// Start schedules the probe and runs it once right away.
func (m *Monitor) Start(ctx context.Context) error {
	c := cron.New()
	if _, err := c.AddFunc(m.schedule, func() { m.Probe(ctx) }); err != nil {
		return err
	}
	m.cron = c
	c.Start()
	go m.Probe(ctx)

	logging.NewLogger(ctx).LogInfof("monitor", "upstream probe scheduled (%s)", m.schedule)
	return nil
}

// Stop halts the schedule and waits for a running probe to finish.
func (m *Monitor) Stop() {
	if m.cron == nil {
		return
	}
	<-m.cron.Stop().Done()
}

// Probe checks the backend once and records the result.
func (m *Monitor) Probe(ctx context.Context) Snapshot {
	snap := Snapshot{CheckedAt: time.Now().UTC()}
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, m.baseURL+probePath, nil)
	if err == nil {
		var resp *http.Response
		resp, err = m.client.Do(req)
		if err == nil {
			_ = resp.Body.Close()
			snap.StatusCode = resp.StatusCode
		}
	}
	snap.LatencyMs = time.Since(start).Milliseconds()

	switch {
	case err != nil:
		snap.Status = StatusDown
		snap.Error = err.Error()
	case snap.StatusCode >= 500:
		snap.Status = StatusDown
	default:
		snap.Status = StatusUp
	}

	m.mu.Lock()
	prev := m.last.Status
	m.last = snap
	m.mu.Unlock()

	if prev != snap.Status {
		logging.NewLogger(ctx).LogInfof("monitor", "upstream %s -> %s", prev, snap.Status)
	}
	return snap
}

// Last returns the most recent probe result.
func (m *Monitor) Last() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.last
}
