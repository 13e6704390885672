package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "fingerprint_customer", cfg.Auth.SigningSecret)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "bookshop-session", cfg.Auth.CookieName)
	assert.Equal(t, "8080", cfg.Server.Port)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("SESSION_SIGNING_SECRET", "rotated")
	t.Setenv("SESSION_TOKEN_TTL", "30m")
	t.Setenv("SESSION_COOKIE_NAME", "shop")
	t.Setenv("PORT", "9090")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "rotated", cfg.Auth.SigningSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, "shop", cfg.Auth.CookieName)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoadConfigInvalidDuration(t *testing.T) {
	t.Setenv("SESSION_TOKEN_TTL", "not-a-duration")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TOKEN_TTL")
}

func TestLoadConfigRejectsEmptySecret(t *testing.T) {
	t.Setenv("SESSION_SIGNING_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_SIGNING_SECRET")
}

func TestLoadConfigRejectsNonPositiveTTL(t *testing.T) {
	t.Setenv("SESSION_TOKEN_TTL", "-5m")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TOKEN_TTL")
}
