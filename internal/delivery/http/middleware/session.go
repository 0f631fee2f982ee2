package middleware

import (
	"context"
	"log/slog"
	"net/http"

	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/session"
)

type contextKey string

const sessionKey contextKey = "session"

// WithSession returns a context carrying the resolved session.
func WithSession(ctx context.Context, s *session.Session) context.Context {
	return context.WithValue(ctx, sessionKey, s)
}

// SessionFromContext returns the session resolved for this request, if any.
func SessionFromContext(ctx context.Context) (*session.Session, bool) {
	s, ok := ctx.Value(sessionKey).(*session.Session)
	return s, ok
}

// RequireSession resolves the token cookie (or Authorization header)
// into a session and puts it in the request context. A missing or
// rejected token clears the cookie and responds 401 without surfacing
// the validation failure itself, so cold loads with a stale cookie stay
// quiet.
func RequireSession(mgr *session.Manager, logger *slog.Logger) func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			token := session.TokenFromRequest(r)
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
				return
			}
			sess, err := mgr.Resolve(r.Context(), token)
			if err != nil {
				logger.DebugContext(r.Context(), "token validation failed", "err", err)
				session.ClearCookie(w)
				h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
				return
			}
			next(w, r.WithContext(WithSession(r.Context(), sess)))
		}
	}
}
