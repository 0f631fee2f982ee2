// Package session holds the client-side representation of an
// authenticated user: the bearer token, the user record it identifies,
// and the push-channel connection opened on their behalf. Sessions are
// passed explicitly through the request context; there is no ambient
// singleton.
package session

import (
	"campusnavigator/internal/adapters/push"
	"campusnavigator/internal/domain"
)

// Session is one authenticated user's state. It lives from the first
// successful token validation (or login) until logout or token expiry.
// The fields are set at admission and never mutated afterwards, so
// push-triggered refetch goroutines read them without locking.
type Session struct {
	ID    string
	Token string
	User  domain.User

	conn *push.Conn
}

// Subscribe binds fn to the named push events on this session's
// connection and returns the unbind handle. When the session has no
// live connection the binding is a no-op and the handle does nothing.
func (s *Session) Subscribe(names []string, fn func()) (unbind func()) {
	if s.conn == nil {
		return func() {}
	}
	return s.conn.Subscribe(names, fn)
}

// Connected reports whether the session has a live push connection.
func (s *Session) Connected() bool {
	if s.conn == nil {
		return false
	}
	select {
	case <-s.conn.Done():
		return false
	default:
		return true
	}
}
