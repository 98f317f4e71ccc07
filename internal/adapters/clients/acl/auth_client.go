package acl

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/clients"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
)

// loginFallbackMessage is surfaced when the upstream rejects the
// credentials without a usable error body.
const loginFallbackMessage = "Login failed. Please check credentials."

// AuthAdapter implements ports.AuthClient against the content API's
// admin login endpoint.
type AuthAdapter struct {
	BaseAdapter

	logger *slog.Logger
}

// NewAuthAdapter creates the auth adapter. Panics if client is nil.
// Defaults logger to slog.Default() if nil.
func NewAuthAdapter(client *clients.Client, logger *slog.Logger) *AuthAdapter {
	if client == nil {
		panic("AuthAdapter: client is required")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &AuthAdapter{
		BaseAdapter: NewBaseAdapter(client, contentServiceName),
		logger:      logger,
	}
}

// loginPayload is the JSON body for the login request.
type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// loginResponse is the success body of the login endpoint.
type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for a session token. Rejected credentials
// come back as domain.ErrUnauthorized carrying the upstream's message,
// or the fallback when the body is unusable.
func (a *AuthAdapter) Login(ctx context.Context, email, password string) (string, error) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(loginPayload{Email: email, Password: password}); err != nil {
		return "", fmt.Errorf("encoding login payload: %w", err)
	}

	resp, err := a.Client().Post(ctx, "/admin/login", &buf)
	if err != nil {
		return "", MapHTTPError(nil, err, a.ServiceName(), "login", "")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusBadRequest {
		return "", a.loginError(ctx, resp)
	}

	var ext loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&ext); err != nil {
		return "", domain.NewUnavailableError(a.ServiceName(), "decoding login response: "+err.Error())
	}

	if ext.Token == "" {
		return "", domain.NewUnavailableError(a.ServiceName(), "login response missing token")
	}

	return ext.Token, nil
}

// loginError maps a rejected login to an unauthorized error with the
// upstream's message. Server-side failures stay unavailable so the
// console does not blame the credentials for an outage.
func (a *AuthAdapter) loginError(ctx context.Context, resp *http.Response) error {
	if resp.StatusCode >= http.StatusInternalServerError {
		return MapHTTPError(resp, nil, a.ServiceName(), "login", "")
	}

	message := loginFallbackMessage
	if errResp := ParseErrorResponse(resp.Body); errResp != nil && errResp.GetMessage() != "" {
		message = errResp.GetMessage()
	}

	a.logger.DebugContext(ctx, "login rejected", slog.Int("status", resp.StatusCode))

	return domain.NewUnauthorizedError(message)
}
