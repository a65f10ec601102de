package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.HTTPPort)
	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, 10*time.Second, cfg.DBCommandTimeout)
	assert.Equal(t, 3, cfg.Dispatch.MaxConcurrentTasksPerAgent)
	assert.Equal(t, 120*time.Minute, cfg.Dispatch.DefaultTaskTimeout)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Equal(t, 100, cfg.RateLimit.MaxRequests)
	assert.Equal(t, 24*time.Hour, cfg.Sweep.IdempotencyTTL)
	assert.Equal(t, 30*24*time.Hour, cfg.Sweep.SoftDeleteRetention)

	assert.Empty(t, cfg.Validate())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("API_KEY", "secret")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("MAX_CONCURRENT_TASKS_PER_AGENT", "5")
	t.Setenv("RATE_LIMIT_WINDOW_SECONDS", "30")

	cfg := Load()
	assert.Equal(t, "9090", cfg.HTTPPort)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
	assert.Equal(t, 5, cfg.Dispatch.MaxConcurrentTasksPerAgent)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.Window)
	assert.True(t, cfg.AuthEnabled())
	assert.False(t, cfg.PermissiveCORS())
}

func TestLoad_InvalidIntFallsBack(t *testing.T) {
	t.Setenv("MAX_CONCURRENT_TASKS_PER_AGENT", "lots")
	cfg := Load()
	assert.Equal(t, 3, cfg.Dispatch.MaxConcurrentTasksPerAgent)
}

func TestValidate(t *testing.T) {
	cfg := Load()
	cfg.DBCommandTimeout = 0
	cfg.Dispatch.MaxConcurrentTasksPerAgent = 0
	cfg.RateLimit.MaxRequests = 0
	cfg.Sweep.GCBatchSize = 0

	problems := cfg.Validate()
	assert.Len(t, problems, 4)
}

func TestPermissiveCORS(t *testing.T) {
	cfg := &Config{CORSOrigins: []string{"*"}}
	assert.True(t, cfg.PermissiveCORS())

	cfg.CORSOrigins = []string{"https://a.example.com"}
	assert.False(t, cfg.PermissiveCORS())
}
