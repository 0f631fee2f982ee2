package domain

import "errors"

// Sentinel errors shared across the view and delivery layers.
var (
	// ErrNotFound covers both upstream 404s and ids that resolve to nothing.
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized means the bearer token was missing, expired, or rejected.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrSampleReadOnly is returned when a mutation targets a placeholder record.
	ErrSampleReadOnly = errors.New("sample records are read-only")
)

// ValidationError is a client-side validation failure. The request never
// reaches the campus API when one is returned.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError returns a ValidationError with the given message.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

// UpstreamError carries the campus API's own error message and status code
// so it can be surfaced to the user verbatim.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return "campus API request failed"
}

// UpstreamMessage extracts the campus API's message from err, or returns
// fallback when the error carries none.
func UpstreamMessage(err error, fallback string) string {
	var ue *UpstreamError
	if errors.As(err, &ue) && ue.Message != "" {
		return ue.Message
	}
	return fallback
}
