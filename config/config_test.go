package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("PORT", "")
	t.Setenv("CAMPUS_API_URL", "")
	t.Setenv("CAMPUS_PUSH_URL", "")
	t.Setenv("ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "http://localhost:5000/api", cfg.APIBaseURL)
	assert.Equal(t, "ws://localhost:5000/push", cfg.PushURL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.AllowedOrigins)
}

func TestLoad_TrimsAPITrailingSlash(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("CAMPUS_API_URL", "https://api.campus.example/api/")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://api.campus.example/api", cfg.APIBaseURL)
}

func TestLoad_SplitsAllowedOrigins(t *testing.T) {
	t.Setenv("GO_ENV", "test")
	t.Setenv("ALLOWED_ORIGINS", "https://app.campus.example, https://admin.campus.example ,")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://app.campus.example", "https://admin.campus.example"}, cfg.AllowedOrigins)
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("nonsense"))
}
