package domain

import (
	"errors"
	"time"

	content "github.com/nexatech/nexatech-web/internal/content/domain"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session expired")
)

// FlashKind selects the banner style.
type FlashKind string

const (
	FlashSuccess FlashKind = "success"
	FlashError   FlashKind = "error"
)

// Flash is the banner shown on a management view. It stays until the next
// action on the same view replaces it.
type Flash struct {
	Kind    FlashKind `json:"kind"`
	Message string    `json:"message"`
}

// Session is the signed-in admin state kept server side. ID is the opaque
// value of the adminToken cookie.
type Session struct {
	ID        string           `json:"id"`
	Token     string           `json:"token"`
	User      content.User     `json:"user"`
	Flash     map[string]Flash `json:"flash,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
}

func (s *Session) FlashFor(view string) *Flash {
	if s == nil {
		return nil
	}
	f, ok := s.Flash[view]
	if !ok {
		return nil
	}
	return &f
}
