// Package controllers exposes the campus views over JSON. Controllers
// stay thin: decode, hand off to a view, and write the envelope. All
// real rules live in the remote campus API; role checks here only shape
// what the UI offers.
package controllers

import (
	"net/http"

	h "campusnavigator/internal/delivery/http"
	"campusnavigator/internal/delivery/http/middleware"
	"campusnavigator/internal/session"
)

// requireSession pulls the resolved session out of the request context,
// writing a 401 when the route was wired without the session middleware.
func requireSession(w http.ResponseWriter, r *http.Request) (*session.Session, bool) {
	sess, ok := middleware.SessionFromContext(r.Context())
	if !ok {
		h.WriteJSONError(w, http.StatusUnauthorized, h.ErrCodeUnauthorized, "authentication required")
		return nil, false
	}
	return sess, true
}

// requireConfirm enforces the delete-confirmation step: destructive
// routes demand an explicit confirm=true before any API call is made.
func requireConfirm(w http.ResponseWriter, r *http.Request) bool {
	if r.URL.Query().Get("confirm") != "true" {
		h.WriteJSONError(w, http.StatusBadRequest, h.ErrCodeBadRequest, "confirmation required: pass confirm=true")
		return false
	}
	return true
}
