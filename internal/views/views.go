// Package views implements the page-level behavior of the campus
// navigator: each view fetches one collection or record from the campus
// API, layers client-side filtering on top, exposes the mutations the
// page offers, and re-runs its fetch whenever a bound push event
// arrives. Views hold no state of their own; every displayed entity is
// a verbatim API response or a flagged placeholder.
package views

import "strings"

// Notifier delivers named push events to a view. *session.Session
// implements it; the returned handle removes the bindings.
type Notifier interface {
	Subscribe(names []string, fn func()) (unbind func())
}

// matchesSearch reports whether term occurs, case-insensitively, in the
// space-joined concatenation of fields. An empty term matches everything.
func matchesSearch(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	haystack := strings.ToLower(strings.Join(fields, " "))
	return strings.Contains(haystack, strings.ToLower(term))
}
