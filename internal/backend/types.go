package backend

import (
	"encoding/json"

	"github.com/nexatech/nexatech-web/internal/content/domain"
)

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResult is the body of a successful /auth/login call.
type LoginResult struct {
	Token string       `json:"token"`
	User  *domain.User `json:"user,omitempty"`
}

type userEnvelope struct {
	User domain.User `json:"user"`
}

type servicesEnvelope struct {
	Services []json.RawMessage `json:"services"`
}

type serviceEnvelope struct {
	Service domain.Service `json:"service"`
}

type portfolioListEnvelope struct {
	Portfolio []json.RawMessage `json:"portfolio"`
}

type portfolioEnvelope struct {
	Portfolio domain.PortfolioItem `json:"portfolio"`
}

type contactsEnvelope struct {
	Contacts []json.RawMessage `json:"contacts"`
}

type statusRequest struct {
	Status domain.ContactStatus `json:"status"`
}

type errorBody struct {
	Message string `json:"message"`
}

// Metrics is a snapshot of the calls made by a Client.
type Metrics struct {
	Calls        int64   `json:"calls"`
	Errors       int64   `json:"errors"`
	AvgLatencyMs float64 `json:"avg_latency_ms"`
	ErrorRatePct float64 `json:"error_rate_pct"`
}
