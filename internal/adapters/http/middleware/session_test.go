package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

// fakeSessionStore is a minimal in-memory ports.SessionStore.
type fakeSessionStore struct {
	token string
}

func (s *fakeSessionStore) Token() (string, bool) { return s.token, s.token != "" }
func (s *fakeSessionStore) Authenticated() bool   { return s.token != "" }
func (s *fakeSessionStore) Login(token string) error {
	s.token = token
	return nil
}
func (s *fakeSessionStore) Logout() error {
	s.token = ""
	return nil
}

func TestRequireSession(t *testing.T) {
	t.Parallel()

	newRouter := func(store *fakeSessionStore) *gin.Engine {
		router := gin.New()
		router.Use(RequireSession(store))
		router.GET("/categories", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		return router
	}

	t.Run("authenticated request passes", func(t *testing.T) {
		t.Parallel()

		router := newRouter(&fakeSessionStore{token: "jwt-abc"})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("anonymous request gets 401 with login hint", func(t *testing.T) {
		t.Parallel()

		router := newRouter(&fakeSessionStore{})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
		assert.Contains(t, w.Body.String(), "login")
	})

	t.Run("session appearing after login passes", func(t *testing.T) {
		t.Parallel()

		store := &fakeSessionStore{}
		router := newRouter(store)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)

		_ = store.Login("jwt-abc")

		w = httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("nil store rejects", func(t *testing.T) {
		t.Parallel()

		router := gin.New()
		router.Use(RequireSession(nil))
		router.GET("/categories", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"ok": true})
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/categories", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}
