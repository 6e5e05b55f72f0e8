package http

import (
	authmw "github.com/nexatech/nexatech-web/internal/auth/middleware"
	"github.com/nexatech/nexatech-web/internal/auth/service"
)

// DashboardPath is where a successful login lands.
const DashboardPath = "/admin/dashboard"

type Handler struct {
	auth     *service.AuthService
	sessions *authmw.Sessions
}

func New(auth *service.AuthService, sessions *authmw.Sessions) *Handler {
	return &Handler{auth: auth, sessions: sessions}
}
