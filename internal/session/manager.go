package session

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"campusnavigator/internal/adapters/campus"
	"campusnavigator/internal/adapters/push"
	"campusnavigator/internal/domain"
)

// CookieTTL is the lifetime of the token cookie. Tokens with an earlier
// JWT expiry cap the cookie at that expiry instead.
const CookieTTL = 7 * 24 * time.Hour

// Manager validates tokens, tracks live sessions, and owns the push
// connection each session carries. Safe for concurrent use.
type Manager struct {
	api    *campus.Client
	dialer *push.Dialer
	logger *slog.Logger

	mu       sync.RWMutex
	sessions map[string]*Session // keyed by bearer token
}

// NewManager returns a Manager backed by the campus API client and the
// push dialer.
func NewManager(api *campus.Client, dialer *push.Dialer, logger *slog.Logger) *Manager {
	return &Manager{
		api:      api,
		dialer:   dialer,
		logger:   logger,
		sessions: make(map[string]*Session),
	}
}

// Resolve returns the session for a presented token, validating it
// against the identity-check endpoint on first sight. A rejected or
// expired token drops any cached session and returns
// domain.ErrUnauthorized; callers surface no error on the cold-load
// path, they just treat the request as unauthenticated.
func (m *Manager) Resolve(ctx context.Context, token string) (*Session, error) {
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	m.mu.RLock()
	s, ok := m.sessions[token]
	m.mu.RUnlock()
	if ok {
		return s, nil
	}

	// An already-expired JWT cannot validate; skip the network call.
	if expired(token, time.Now()) {
		return nil, domain.ErrUnauthorized
	}

	user, err := m.api.Me(ctx, token)
	if err != nil {
		m.drop(token)
		return nil, err
	}
	return m.admit(ctx, token, *user), nil
}

// Login exchanges credentials for a token and opens the session.
// Failures surface the API's message; no session state changes.
func (m *Manager) Login(ctx context.Context, email, password string) (*Session, error) {
	res, err := m.api.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.admit(ctx, res.Token, res.User), nil
}

// Register creates an account and opens the session with its first token.
func (m *Manager) Register(ctx context.Context, data domain.RegisterData) (*Session, error) {
	res, err := m.api.Register(ctx, data)
	if err != nil {
		return nil, err
	}
	return m.admit(ctx, res.Token, res.User), nil
}

// GoogleLogin exchanges a confirmed third-party identity token for a
// campus token and opens the session.
func (m *Manager) GoogleLogin(ctx context.Context, idToken string) (*Session, error) {
	res, err := m.api.GoogleLogin(ctx, idToken)
	if err != nil {
		return nil, err
	}
	return m.admit(ctx, res.Token, res.User), nil
}

// Logout tears the session down: the token mapping goes first, then
// the push connection closes. The Session fields are left untouched so
// in-flight refetch goroutines can keep reading them without locking;
// teardown is observable through the map removal and the cookie clear.
// Subsequent requests with the old token re-validate from scratch.
func (m *Manager) Logout(s *Session) {
	if s == nil {
		return
	}
	m.drop(s.Token)
	if s.conn != nil {
		s.conn.Close()
	}
}

// TokenTTL returns the cookie lifetime for a token: CookieTTL, capped
// at the token's own expiry when the JWT carries one.
func (m *Manager) TokenTTL(token string, now time.Time) time.Duration {
	ttl := CookieTTL
	if exp, ok := expiry(token); ok {
		if remaining := exp.Sub(now); remaining < ttl {
			ttl = remaining
		}
	}
	return ttl
}

// admit caches the session and opens its push connection. A failed dial
// leaves the session usable without live refresh; nothing retries.
// Concurrent requests racing on the same uncached token each reach
// here; the first to insert wins and the losers hand back its session,
// closing their redundant dial, so a token carries one connection.
func (m *Manager) admit(ctx context.Context, token string, user domain.User) *Session {
	s := &Session{
		ID:    uuid.NewString(),
		Token: token,
		User:  user,
	}
	conn, err := m.dialer.Dial(ctx, token)
	if err != nil {
		m.logger.Warn("push channel unavailable", "session", s.ID, "err", err)
	} else {
		s.conn = conn
	}

	m.mu.Lock()
	if existing, ok := m.sessions[token]; ok {
		m.mu.Unlock()
		if conn != nil {
			conn.Close()
		}
		return existing
	}
	m.sessions[token] = s
	m.mu.Unlock()

	m.logger.Info("session opened", "session", s.ID, "user", user.ID, "role", user.Role)
	return s
}

func (m *Manager) drop(token string) {
	m.mu.Lock()
	delete(m.sessions, token)
	m.mu.Unlock()
}

// Close shuts every cached session's push connection. Used on server
// shutdown.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for token, s := range m.sessions {
		if s.conn != nil {
			s.conn.Close()
		}
		delete(m.sessions, token)
	}
}

// expiry reads the exp claim without verifying the signature. The
// campus API is the verifier; locally the claim only bounds cookie
// lifetime and skips doomed validation calls.
func expiry(token string) (time.Time, bool) {
	claims := jwt.RegisteredClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, &claims)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

func expired(token string, now time.Time) bool {
	exp, ok := expiry(token)
	return ok && exp.Before(now)
}
