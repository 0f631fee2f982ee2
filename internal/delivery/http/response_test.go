package http

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campusnavigator/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func writeAndDecode(t *testing.T, err error, fallback string) (int, APIResponse) {
	t.Helper()
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/views/rooms", nil)
	WriteViewError(w, testLogger, r, err, fallback)

	var env APIResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	return w.Code, env
}

func TestWriteViewError_Validation(t *testing.T) {
	code, env := writeAndDecode(t, domain.NewValidationError("end time must be after start time"), "x")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, ErrCodeBadRequest, env.Error.Code)
	assert.Equal(t, "end time must be after start time", env.Error.Message)
}

func TestWriteViewError_SampleReadOnly(t *testing.T) {
	code, env := writeAndDecode(t, domain.ErrSampleReadOnly, "x")
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, ErrCodeBadRequest, env.Error.Code)
}

func TestWriteViewError_Unauthorized(t *testing.T) {
	err := fmt.Errorf("%w: %w", domain.ErrUnauthorized, &domain.UpstreamError{StatusCode: 401, Message: "token expired"})
	code, env := writeAndDecode(t, err, "x")
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.Equal(t, ErrCodeUnauthorized, env.Error.Code)
	assert.Equal(t, "token expired", env.Error.Message)
}

func TestWriteViewError_NotFound(t *testing.T) {
	err := fmt.Errorf("%w: %w", domain.ErrNotFound, &domain.UpstreamError{StatusCode: 404})
	code, env := writeAndDecode(t, err, "Room not found")
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, ErrCodeNotFound, env.Error.Code)
	assert.Equal(t, "Room not found", env.Error.Message)
}

func TestWriteViewError_UpstreamDefault(t *testing.T) {
	code, env := writeAndDecode(t, &domain.UpstreamError{StatusCode: 500, Message: "database unavailable"}, "x")
	assert.Equal(t, http.StatusBadGateway, code)
	assert.Equal(t, ErrCodeUpstream, env.Error.Code)
	assert.Equal(t, "database unavailable", env.Error.Message)
}

func TestWriteJSONSuccess_Envelope(t *testing.T) {
	w := httptest.NewRecorder()
	WriteJSONSuccess(w, http.StatusCreated, map[string]string{"id": "r1"})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	var env APIResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
	assert.Nil(t, env.Error)
	assert.Equal(t, "r1", env.Data.(map[string]any)["id"])
}

type failingValidator struct{}

func (failingValidator) Validate() []string { return []string{"first", "second"} }

func TestDecodeAndValidate(t *testing.T) {
	t.Run("unknown fields rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", jsonBody(`{"bogus":1}`))
		var dest struct{}
		assert.False(t, DecodeAndValidate(w, r, &dest))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("validator messages joined", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodPost, "/", jsonBody(`{}`))
		var dest failingValidator
		assert.False(t, DecodeAndValidate(w, r, &dest))

		var env APIResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&env))
		assert.Equal(t, "first; second", env.Error.Message)
	})
}

func jsonBody(s string) io.Reader { return strings.NewReader(s) }
