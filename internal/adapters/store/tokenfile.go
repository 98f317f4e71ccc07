// Package store provides the durable session store backing the console.
// The only persisted state in this service is the admin session token;
// everything else lives upstream.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// TokenFile is a file-backed session store. The token file is read once
// at construction; a missing file means an anonymous session. Reads are
// lock-protected and cheap, writes go through the filesystem so the
// session survives restarts.
type TokenFile struct {
	path string

	mu    sync.RWMutex
	token string
}

// NewTokenFile loads the session state from path. A missing file is not
// an error, it simply starts the store anonymous.
func NewTokenFile(path string) (*TokenFile, error) {
	if path == "" {
		return nil, errors.New("token file path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading token file: %w", err)
	}

	return &TokenFile{
		path:  path,
		token: strings.TrimSpace(string(data)),
	}, nil
}

// Token returns the current session token, if any.
func (t *TokenFile) Token() (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.token, t.token != ""
}

// Authenticated reports whether a session token is present.
func (t *TokenFile) Authenticated() bool {
	_, ok := t.Token()
	return ok
}

// Login persists the token and transitions the session to authenticated.
// The file is written with owner-only permissions.
func (t *TokenFile) Login(token string) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return errors.New("token must not be empty")
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(t.path), 0o700); err != nil {
		return fmt.Errorf("creating token directory: %w", err)
	}

	if err := os.WriteFile(t.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("writing token file: %w", err)
	}

	t.token = token

	return nil
}

// Logout removes the durable token and transitions the session to
// anonymous. Logging out an anonymous session is a no-op.
func (t *TokenFile) Logout() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := os.Remove(t.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("removing token file: %w", err)
	}

	t.token = ""

	return nil
}
