// Package config provides centralized, environment-driven service configuration.
package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all tunable service settings. Values are loaded from the
// environment with built-in defaults; see Load.
type Config struct {
	// HTTP
	HTTPPort    string
	APIKey      string   // empty disables write authentication (dev mode)
	CORSOrigins []string // ["*"] means permissive

	// DBCommandTimeout bounds each store operation; a wedged connection
	// cannot hold a request or a sweep open past this deadline.
	DBCommandTimeout time.Duration

	Dispatch  DispatchConfig
	RateLimit RateLimitConfig
	Sweep     SweepConfig

	LogLevel string
}

// DispatchConfig controls task claiming and timeout resolution.
type DispatchConfig struct {
	// MaxConcurrentTasksPerAgent caps tasks in {assigned, running, reviewing}
	// held by a single agent. Enforced inside the claim transaction.
	MaxConcurrentTasksPerAgent int

	// DefaultTaskTimeout applies when neither the task nor its type default
	// sets a timeout.
	DefaultTaskTimeout time.Duration
}

// RateLimitConfig controls the in-process fixed-window limiter.
type RateLimitConfig struct {
	Window       time.Duration
	MaxRequests  int
	MaxStoreSize int
}

// SweepConfig controls the background control loops.
type SweepConfig struct {
	// HeartbeatInterval is how often the heartbeat sweep runs.
	HeartbeatInterval time.Duration

	// OfflineThreshold is how stale an agent's heartbeat may be before it
	// is marked offline.
	OfflineThreshold time.Duration

	// StuckInterval is how often the stuck-task sweep runs.
	StuckInterval time.Duration

	// GCInterval is how often the retention sweep runs (idempotency keys
	// and soft-deleted rows).
	GCInterval time.Duration

	// IdempotencyTTL is how long an idempotency record replays.
	IdempotencyTTL time.Duration

	// SoftDeleteRetention is how long soft-deleted rows are kept before
	// the retention sweep hard-deletes them.
	SoftDeleteRetention time.Duration

	// GCBatchSize bounds each delete statement so the sweep never holds
	// long locks.
	GCBatchSize int
}

// Load reads configuration from the environment, applying defaults.
func Load() *Config {
	cfg := &Config{
		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		APIKey:      os.Getenv("API_KEY"),
		CORSOrigins: splitOrigins(getEnv("CORS_ORIGINS", "*")),
		DBCommandTimeout: time.Duration(getEnvInt("DB_COMMAND_TIMEOUT_SECONDS", 10)) * time.Second,
		Dispatch: DispatchConfig{
			MaxConcurrentTasksPerAgent: getEnvInt("MAX_CONCURRENT_TASKS_PER_AGENT", 3),
			DefaultTaskTimeout:         time.Duration(getEnvInt("DEFAULT_TASK_TIMEOUT_MINUTES", 120)) * time.Minute,
		},
		RateLimit: RateLimitConfig{
			Window:       time.Duration(getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60)) * time.Second,
			MaxRequests:  getEnvInt("RATE_LIMIT_MAX_REQUESTS", 100),
			MaxStoreSize: getEnvInt("RATE_LIMIT_MAX_STORE_SIZE", 10000),
		},
		Sweep: SweepConfig{
			HeartbeatInterval:   time.Duration(getEnvInt("HEARTBEAT_SWEEP_INTERVAL_SECONDS", 60)) * time.Second,
			OfflineThreshold:    time.Duration(getEnvInt("AGENT_OFFLINE_THRESHOLD_MINUTES", 5)) * time.Minute,
			StuckInterval:       time.Duration(getEnvInt("STUCK_SWEEP_INTERVAL_SECONDS", 60)) * time.Second,
			GCInterval:          time.Duration(getEnvInt("GC_INTERVAL_MINUTES", 60)) * time.Minute,
			IdempotencyTTL:      time.Duration(getEnvInt("IDEMPOTENCY_TTL_HOURS", 24)) * time.Hour,
			SoftDeleteRetention: time.Duration(getEnvInt("SOFT_DELETE_RETENTION_DAYS", 30)) * 24 * time.Hour,
			GCBatchSize:         getEnvInt("GC_BATCH_SIZE", 500),
		},
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
	return cfg
}

// Validate checks the configuration for inconsistent values.
// Returns all problems found, not just the first.
func (c *Config) Validate() []string {
	var errs []string

	if c.DBCommandTimeout < time.Second {
		errs = append(errs, "DB_COMMAND_TIMEOUT_SECONDS must be at least 1")
	}
	if c.Dispatch.MaxConcurrentTasksPerAgent < 1 {
		errs = append(errs, "MAX_CONCURRENT_TASKS_PER_AGENT must be at least 1")
	}
	if c.Dispatch.DefaultTaskTimeout < time.Minute {
		errs = append(errs, "DEFAULT_TASK_TIMEOUT_MINUTES must be at least 1")
	}
	if c.RateLimit.MaxRequests < 1 {
		errs = append(errs, "RATE_LIMIT_MAX_REQUESTS must be at least 1")
	}
	if c.RateLimit.MaxStoreSize < 100 {
		errs = append(errs, "RATE_LIMIT_MAX_STORE_SIZE should be at least 100")
	}
	if c.Sweep.IdempotencyTTL < time.Hour {
		errs = append(errs, "IDEMPOTENCY_TTL_HOURS must be at least 1")
	}
	if c.Sweep.GCBatchSize < 1 {
		errs = append(errs, "GC_BATCH_SIZE must be at least 1")
	}

	return errs
}

// PermissiveCORS reports whether the service allows any origin.
func (c *Config) PermissiveCORS() bool {
	return len(c.CORSOrigins) == 1 && c.CORSOrigins[0] == "*"
}

// AuthEnabled reports whether write operations require an API key.
func (c *Config) AuthEnabled() bool {
	return c.APIKey != ""
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default",
			"key", key, "value", val, "default", defaultVal)
		return defaultVal
	}
	return n
}
