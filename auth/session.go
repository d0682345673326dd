package auth

import (
	"context"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Authentication endpoints, relative to the API base URL
const (
	// LoginPath is the token exchange endpoint for basic credentials
	LoginPath = "/auth/login"
	// LoginAdminPath is the token exchange endpoint for administrative credentials
	LoginAdminPath = "/auth/loginadmin"
)

// ExchangeFunc performs the credential exchange: POST the form to the given
// path and return the raw bearer token from the response body
type ExchangeFunc func(ctx context.Context, path string, form url.Values) (string, error)

// SessionManager owns the current bearer token and its lifecycle. It acquires
// a token on first use and transparently re-acquires it once the token's
// embedded expiry has passed. Safe for concurrent use; concurrent callers
// observing an expired session serialize on a single exchange.
//
// Tokens whose expiry cannot be determined (not a JWT, or no exp claim) are
// cached until the process ends or a later exchange overwrites them.
type SessionManager struct {
	store    *Store
	exchange ExchangeFunc

	mu        sync.Mutex
	token     string
	expiresAt time.Time // zero means no known expiry
}

// NewSessionManager creates a session manager for the given credential store.
// The exchange func is the transport that performs the actual login request.
func NewSessionManager(store *Store, exchange ExchangeFunc) *SessionManager {
	return &SessionManager{
		store:    store,
		exchange: exchange,
	}
}

// Token returns the current bearer token, performing a credential exchange
// first if no token is held or the held token has expired. Exchange failures
// propagate unchanged; the held token is left untouched on failure.
func (m *SessionManager) Token(ctx context.Context) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != "" && !m.expired(time.Now()) {
		return m.token, nil
	}

	path := LoginPath
	if m.store.Credentials().Variant() == VariantAdministrative {
		path = LoginAdminPath
	}

	raw, err := m.exchange(ctx, path, m.store.Credentials().Values())
	if err != nil {
		return "", err
	}

	// The exchange returns the bearer token as a bare string body.
	token := strings.TrimSpace(raw)
	m.token = token
	m.expiresAt = tokenExpiry(token)
	return token, nil
}

// expired reports whether the held token's expiry has been reached.
// A zero expiry means the token never expires on its own.
func (m *SessionManager) expired(now time.Time) bool {
	if m.expiresAt.IsZero() {
		return false
	}
	return !m.expiresAt.After(now)
}

// tokenExpiry decodes the token without verifying its signature and reads
// the exp claim. The zero time is returned when the token is not a parseable
// JWT or carries no exp claim.
func tokenExpiry(token string) time.Time {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return time.Time{}
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}
