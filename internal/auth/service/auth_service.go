package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/nexatech/nexatech-web/internal/auth/domain"
	"github.com/nexatech/nexatech-web/internal/auth/repository"
	"github.com/nexatech/nexatech-web/internal/backend"
	content "github.com/nexatech/nexatech-web/internal/content/domain"
	"github.com/nexatech/nexatech-web/internal/logging"
)

// Authenticator is the part of the backend client used for sign-in.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (*backend.LoginResult, error)
	CurrentUser(ctx context.Context, token string) (*content.User, error)
}

type AuthService struct {
	backend  Authenticator
	sessions *repository.SessionRepository
	now      func() time.Time
}

func NewAuthService(b Authenticator, sessions *repository.SessionRepository) *AuthService {
	return &AuthService{
		backend:  b,
		sessions: sessions,
		now:      time.Now,
	}
}

func (s *AuthService) Sessions() *repository.SessionRepository { return s.sessions }

// Login exchanges credentials for a backend token and stores a new session.
// Backend errors are returned unchanged and nothing is stored.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	logger := logging.NewLogger(ctx)

	res, err := s.backend.Login(ctx, email, password)
	if err != nil {
		logger.LogWarnf("login", "login rejected for email=%s: %v", email, err)
		return nil, err
	}

	var user content.User
	if res.User != nil {
		user = *res.User
	} else {
		u, err := s.backend.CurrentUser(ctx, res.Token)
		if err != nil {
			logger.LogError("login", err)
			return nil, err
		}
		user = *u
	}

	sess := &domain.Session{Token: res.Token, User: user}
	if err := s.sessions.Create(ctx, sess); err != nil {
		logger.LogError("login", err)
		return nil, err
	}
	logger.LogInfof("login", "session created for user=%s", user.DisplayName())
	return sess, nil
}

func (s *AuthService) Logout(ctx context.Context, id string) error {
	if id == "" {
		return nil
	}
	return s.sessions.Delete(ctx, id)
}

// Session returns the stored session for id. A session whose token carries
// an exp in the past is deleted and reported as ErrSessionExpired.
func (s *AuthService) Session(ctx context.Context, id string) (*domain.Session, error) {
	sess, err := s.sessions.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if tokenExpired(sess.Token, s.now()) {
		if err := s.sessions.Delete(ctx, id); err != nil {
			logging.NewLogger(ctx).LogError("session_expire", err)
		}
		return nil, domain.ErrSessionExpired
	}
	return sess, nil
}

func (s *AuthService) SetFlash(ctx context.Context, id, view string, f domain.Flash) error {
	err := s.sessions.SetFlash(ctx, id, view, f)
	if err != nil && !errors.Is(err, domain.ErrSessionNotFound) {
		logging.NewLogger(ctx).LogError("set_flash", err)
	}
	return err
}

// tokenExpired reads the exp claim without verifying the signature; the
// backend stays the authority on validity. Tokens that are not JWTs never
// expire here.
func tokenExpired(token string, now time.Time) bool {
	var claims jwt.RegisteredClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return false
	}
	return claims.ExpiresAt != nil && !claims.ExpiresAt.After(now)
}
