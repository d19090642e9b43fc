package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.HTTP.Port)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 10, cfg.RateLimit.Limit)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, "fit4ever-avatars", cfg.Storage.Bucket)
}

func TestNewConfig_FromEnvironment(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("JWT_SECRET", "supersecret")
	t.Setenv("JWT_TTL", "1h")
	t.Setenv("RATELIMIT_LIMIT", "5")
	t.Setenv("RATELIMIT_WINDOW", "30s")
	t.Setenv("OAUTH_GOOGLE_CLIENT_ID", "client-id")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.HTTP.Port)
	assert.Equal(t, "supersecret", cfg.JWT.Secret)
	assert.Equal(t, time.Hour, cfg.JWT.TTL)
	assert.Equal(t, 5, cfg.RateLimit.Limit)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.Equal(t, "client-id", cfg.OAuth.GoogleClientID)
}

func TestNewConfig_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_TTL", "not-a-duration")

	_, err := NewConfig()
	require.Error(t, err)
}
