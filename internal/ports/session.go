package ports

// SessionStore is the single session authority, injected into the HTTP
// client (token attachment), the guard middleware (access checks) and
// the auth service (transitions). Implementations must be safe for
// concurrent reads; login and logout are the only writers.
type SessionStore interface {
	// Token returns the current session token. The second return is
	// false while the session is anonymous.
	Token() (string, bool)

	// Authenticated reports whether a session token is present.
	Authenticated() bool

	// Login stores the token durably and transitions to authenticated.
	Login(token string) error

	// Logout removes the durable token and transitions to anonymous.
	Logout() error
}
