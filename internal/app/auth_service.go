package app

import (
	"context"
	"log/slog"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/ports"
)

// AuthService handles the admin login flow and the local session.
type AuthService struct {
	client  ports.AuthClient
	session ports.SessionStore
	logger  *slog.Logger
}

// AuthServiceConfig contains configuration for the auth service.
type AuthServiceConfig struct {
	Client  ports.AuthClient
	Session ports.SessionStore
	Logger  *slog.Logger
}

// NewAuthService creates a new auth service with the provided dependencies.
func NewAuthService(cfg AuthServiceConfig) *AuthService {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AuthService{
		client:  cfg.Client,
		session: cfg.Session,
		logger:  logger.With(slog.String("component", "app.AuthService")),
	}
}

// Login exchanges credentials for a token and stores it in the session.
func (s *AuthService) Login(ctx context.Context, email, password string) error {
	token, err := s.client.Login(ctx, email, password)
	if err != nil {
		return err
	}

	if err := s.session.Login(token); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "admin logged in", slog.String("email", email))

	return nil
}

// Logout clears the stored session token. Logging out when not logged
// in is a no-op.
func (s *AuthService) Logout(ctx context.Context) error {
	if err := s.session.Logout(); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "admin logged out")

	return nil
}

// Authenticated reports whether a session token is present.
func (s *AuthService) Authenticated() bool {
	return s.session.Authenticated()
}
