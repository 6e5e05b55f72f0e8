package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sync/atomic"
	"time"

	"github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/logging"
)

// Client talks to the NexaTech REST backend. Each call is a single attempt.
type Client struct {
	baseURL    string
	httpClient *http.Client

	calls   atomic.Int64
	errors  atomic.Int64
	latency atomic.Int64 // nanoseconds
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *Client) BaseURL() string { return c.baseURL }

// Metrics returns the call counters accumulated so far.
func (c *Client) Metrics() Metrics {
	m := Metrics{
		Calls:  c.calls.Load(),
		Errors: c.errors.Load(),
	}
	if m.Calls > 0 {
		m.AvgLatencyMs = float64(c.latency.Load()) / float64(m.Calls) / 1e6
		m.ErrorRatePct = float64(m.Errors) / float64(m.Calls) * 100
	}
	return m
}

func (c *Client) record(d time.Duration, err error) {
	c.calls.Add(1)
	c.latency.Add(d.Nanoseconds())
	if err != nil {
		c.errors.Add(1)
	}
}

func (c *Client) do(ctx context.Context, method, path, token string, in, out any) error {
	logger := logging.NewLogger(ctx)
	op := method + " " + path
	start := time.Now()

	var body io.Reader
	if in != nil {
		buf, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(time.Since(start), err)
		logger.LogError(op, err)
		return fmt.Errorf("backend request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	c.record(time.Since(start), statusErr(resp.StatusCode, err))
	if err != nil {
		logger.LogError(op, err)
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		re := &RequestError{Status: resp.StatusCode, Message: fallbackMessage}
		var eb errorBody
		if json.Unmarshal(raw, &eb) == nil && eb.Message != "" {
			re.Message = eb.Message
		}
		logger.LogWarnf(op, "backend returned status %d: %s", re.Status, re.Message)
		return re
	}

	if out == nil || len(bytes.TrimSpace(raw)) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		logger.LogError(op, err)
		return &DecodeError{Op: op, Err: err}
	}
	return nil
}

// decodeList decodes each record of a list envelope separately. Records that
// fail to decode are logged and left out; the rest are returned.
func decodeList[T any](ctx context.Context, op string, raws []json.RawMessage) []T {
	out := make([]T, 0, len(raws))
	for i, raw := range raws {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			logging.NewLogger(ctx).LogWarnf(op, "skipping record %d: %v", i, err)
			continue
		}
		out = append(out, v)
	}
	return out
}

func statusErr(code int, readErr error) error {
	if readErr != nil {
		return readErr
	}
	if code >= 400 {
		return errors.New(http.StatusText(code))
	}
	return nil
}

func escape(id string) string { return url.PathEscape(id) }

func (c *Client) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	var out LoginResult
	if err := c.do(ctx, http.MethodPost, "/auth/login", "", loginRequest{Email: email, Password: password}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	var out userEnvelope
	if err := c.do(ctx, http.MethodGet, "/auth/me", token, nil, &out); err != nil {
		return nil, err
	}
	return &out.User, nil
}

func (c *Client) PublicServices(ctx context.Context) ([]domain.Service, error) {
	var out servicesEnvelope
	if err := c.do(ctx, http.MethodGet, "/public/services", "", nil, &out); err != nil {
		return nil, err
	}
	return decodeList[domain.Service](ctx, "services", out.Services), nil
}

func (c *Client) PublicService(ctx context.Context, id string) (*domain.Service, error) {
	var out serviceEnvelope
	if err := c.do(ctx, http.MethodGet, "/public/services/"+escape(id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out.Service, nil
}

func (c *Client) PublicPortfolio(ctx context.Context) ([]domain.PortfolioItem, error) {
	var out portfolioListEnvelope
	if err := c.do(ctx, http.MethodGet, "/public/portfolio", "", nil, &out); err != nil {
		return nil, err
	}
	return decodeList[domain.PortfolioItem](ctx, "portfolio", out.Portfolio), nil
}

func (c *Client) PublicPortfolioItem(ctx context.Context, id string) (*domain.PortfolioItem, error) {
	var out portfolioEnvelope
	if err := c.do(ctx, http.MethodGet, "/public/portfolio/"+escape(id), "", nil, &out); err != nil {
		return nil, err
	}
	return &out.Portfolio, nil
}

func (c *Client) SubmitContact(ctx context.Context, sub domain.ContactSubmission) error {
	return c.do(ctx, http.MethodPost, "/public/contact", "", sub, nil)
}

func (c *Client) Services(ctx context.Context, token string) ([]domain.Service, error) {
	var out servicesEnvelope
	if err := c.do(ctx, http.MethodGet, "/admin/services", token, nil, &out); err != nil {
		return nil, err
	}
	return decodeList[domain.Service](ctx, "services", out.Services), nil
}

func (c *Client) Service(ctx context.Context, token, id string) (*domain.Service, error) {
	var out serviceEnvelope
	if err := c.do(ctx, http.MethodGet, "/admin/services/"+escape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out.Service, nil
}

func (c *Client) CreateService(ctx context.Context, token string, s domain.Service) error {
	return c.do(ctx, http.MethodPost, "/admin/services", token, s, nil)
}

func (c *Client) UpdateService(ctx context.Context, token, id string, s domain.Service) error {
	return c.do(ctx, http.MethodPut, "/admin/services/"+escape(id), token, s, nil)
}

func (c *Client) DeleteService(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/services/"+escape(id), token, nil, nil)
}

func (c *Client) Portfolio(ctx context.Context, token string) ([]domain.PortfolioItem, error) {
	var out portfolioListEnvelope
	if err := c.do(ctx, http.MethodGet, "/admin/portfolio", token, nil, &out); err != nil {
		return nil, err
	}
	return decodeList[domain.PortfolioItem](ctx, "portfolio", out.Portfolio), nil
}

func (c *Client) PortfolioItem(ctx context.Context, token, id string) (*domain.PortfolioItem, error) {
	var out portfolioEnvelope
	if err := c.do(ctx, http.MethodGet, "/admin/portfolio/"+escape(id), token, nil, &out); err != nil {
		return nil, err
	}
	return &out.Portfolio, nil
}

func (c *Client) CreatePortfolio(ctx context.Context, token string, p domain.PortfolioItem) error {
	return c.do(ctx, http.MethodPost, "/admin/portfolio", token, p, nil)
}

func (c *Client) UpdatePortfolio(ctx context.Context, token, id string, p domain.PortfolioItem) error {
	return c.do(ctx, http.MethodPut, "/admin/portfolio/"+escape(id), token, p, nil)
}

func (c *Client) DeletePortfolio(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/portfolio/"+escape(id), token, nil, nil)
}

func (c *Client) Contacts(ctx context.Context, token string) ([]domain.Contact, error) {
	var out contactsEnvelope
	if err := c.do(ctx, http.MethodGet, "/admin/contacts", token, nil, &out); err != nil {
		return nil, err
	}
	return decodeList[domain.Contact](ctx, "contacts", out.Contacts), nil
}

func (c *Client) UpdateContactStatus(ctx context.Context, token, id string, status domain.ContactStatus) error {
	return c.do(ctx, http.MethodPut, "/admin/contacts/"+escape(id)+"/status", token, statusRequest{Status: status}, nil)
}

func (c *Client) DeleteContact(ctx context.Context, token, id string) error {
	return c.do(ctx, http.MethodDelete, "/admin/contacts/"+escape(id), token, nil, nil)
}
