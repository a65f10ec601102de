package api

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/metrics"
	"github.com/taskfleet/taskfleet/pkg/ratelimit"
)

// requestLogger logs every request with a correlation id and records the
// request counter. The API key header is never logged.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		status := c.Writer.Status()
		metrics.HTTPRequests.WithLabelValues(c.Request.Method, path, strconv.Itoa(status)).Inc()
		slog.Info("Request handled",
			"request_id", requestID,
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP())
	}
}

// storeDeadline bounds each request's store work with the configured command
// timeout, so a wedged database connection fails the request instead of
// holding it open
func storeDeadline(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.DBCommandTimeout > 0 {
			ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.DBCommandTimeout)
			defer cancel()
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}

// securityHeaders sets standard security response headers
func securityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-Frame-Options", "DENY")
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("Referrer-Policy", "strict-origin-when-cross-origin")
		c.Next()
	}
}

// corsMiddleware answers CORS preflight and sets the allow-origin header for
// configured origins. "*" is honored only when explicitly configured.
func corsMiddleware(cfg *config.Config) gin.HandlerFunc {
	allowed := make(map[string]struct{}, len(cfg.CORSOrigins))
	for _, origin := range cfg.CORSOrigins {
		allowed[origin] = struct{}{}
	}
	permissive := cfg.PermissiveCORS()

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin != "" {
			if permissive {
				c.Header("Access-Control-Allow-Origin", "*")
			} else if _, ok := allowed[origin]; ok {
				c.Header("Access-Control-Allow-Origin", origin)
				c.Header("Vary", "Origin")
			}
			c.Header("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
			c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization, X-API-Key, Idempotency-Key, X-Request-ID")
			c.Header("Access-Control-Max-Age", "600")
		}
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// rateLimitMiddleware admits requests through the fixed-window limiter,
// keyed by API key when present, else client IP
func rateLimitMiddleware(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("X-API-Key")
		if key == "" {
			key = c.ClientIP()
		}
		if !limiter.Allow(key) {
			metrics.RateLimited.Inc()
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorBody{
				Code:    "rate-limited",
				Message: "too many requests in window",
			})
			return
		}
		c.Next()
	}
}

// requireAPIKey gates mutating routes behind the configured API key. Reads
// stay open. An empty configured key disables authentication (dev mode).
func requireAPIKey(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !cfg.AuthEnabled() {
			c.Next()
			return
		}
		if c.GetHeader("X-API-Key") != cfg.APIKey {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody{
				Code:    "unauthorized",
				Message: "missing or invalid API key",
			})
			return
		}
		c.Next()
	}
}
