package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MAHAK0804/QuoteAppAdmin/internal/adapters/http/dto"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/app"
	"github.com/MAHAK0804/QuoteAppAdmin/internal/domain"
)

func newAuthHandler(client *fakeAuthClient, store *fakeSessionStore) *AuthHandler {
	return NewAuthHandler(app.NewAuthService(app.AuthServiceConfig{
		Client:  client,
		Session: store,
		Logger:  testLogger(),
	}))
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("stores the token and reports authenticated", func(t *testing.T) {
		client := &fakeAuthClient{token: "jwt-abc"}
		store := &fakeSessionStore{}
		handler := newAuthHandler(client, store)

		body := strings.NewReader(`{"email":"admin@example.com","password":"hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
		req.Header.Set("Content-Type", "application/json")
		w := serve(t, handler.RegisterAuthRoutes, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Authenticated)

		assert.Equal(t, []string{"admin@example.com"}, client.emails)
		token, ok := store.Token()
		require.True(t, ok)
		assert.Equal(t, "jwt-abc", token)
	})

	t.Run("rejected credentials map to 401 and leave the session anonymous", func(t *testing.T) {
		client := &fakeAuthClient{loginErr: domain.NewUnauthorizedError("Invalid email or password")}
		store := &fakeSessionStore{}
		handler := newAuthHandler(client, store)

		body := strings.NewReader(`{"email":"admin@example.com","password":"wrong-pass"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
		req.Header.Set("Content-Type", "application/json")
		w := serve(t, handler.RegisterAuthRoutes, req)

		require.Equal(t, http.StatusUnauthorized, w.Code)
		assert.False(t, store.Authenticated())

		var resp dto.ErrorResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, dto.ErrorCodeUnauthorized, resp.Error.Code)
		assert.Contains(t, resp.Error.Message, "Invalid email or password")
	})

	t.Run("malformed email fails local validation without an upstream call", func(t *testing.T) {
		client := &fakeAuthClient{token: "jwt-abc"}
		handler := newAuthHandler(client, &fakeSessionStore{})

		body := strings.NewReader(`{"email":"not-an-email","password":"hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
		req.Header.Set("Content-Type", "application/json")
		w := serve(t, handler.RegisterAuthRoutes, req)

		require.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, client.emails)
	})

	t.Run("upstream outage maps to 503", func(t *testing.T) {
		client := &fakeAuthClient{loginErr: domain.NewUnavailableError("content-api", "timeout")}
		handler := newAuthHandler(client, &fakeSessionStore{})

		body := strings.NewReader(`{"email":"admin@example.com","password":"hunter2"}`)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
		req.Header.Set("Content-Type", "application/json")
		w := serve(t, handler.RegisterAuthRoutes, req)

		require.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	store := &fakeSessionStore{token: "jwt-abc"}
	handler := newAuthHandler(&fakeAuthClient{}, store)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	w := serve(t, handler.RegisterAuthRoutes, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.False(t, store.Authenticated())
	assert.Equal(t, 1, store.logouts)

	var resp SessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Authenticated)
}

func TestAuthHandler_Session(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		handler := newAuthHandler(&fakeAuthClient{}, &fakeSessionStore{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
		w := serve(t, handler.RegisterAuthRoutes, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Authenticated)
	})

	t.Run("authenticated", func(t *testing.T) {
		handler := newAuthHandler(&fakeAuthClient{}, &fakeSessionStore{token: "jwt-abc"})

		req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/session", nil)
		w := serve(t, handler.RegisterAuthRoutes, req)

		require.Equal(t, http.StatusOK, w.Code)

		var resp SessionResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Authenticated)
	})
}
