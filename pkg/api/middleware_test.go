package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/taskfleet/taskfleet/pkg/config"
	"github.com/taskfleet/taskfleet/pkg/ratelimit"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func perform(r *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func okHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func TestRequireAPIKey(t *testing.T) {
	t.Run("dev mode passes everything", func(t *testing.T) {
		r := gin.New()
		r.POST("/write", requireAPIKey(&config.Config{}), okHandler)

		rec := perform(r, http.MethodPost, "/write", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects missing and wrong keys", func(t *testing.T) {
		cfg := &config.Config{APIKey: "secret"}
		r := gin.New()
		r.POST("/write", requireAPIKey(cfg), okHandler)

		rec := perform(r, http.MethodPost, "/write", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = perform(r, http.MethodPost, "/write", map[string]string{"X-API-Key": "wrong"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = perform(r, http.MethodPost, "/write", map[string]string{"X-API-Key": "secret"})
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reads stay open when auth is enabled", func(t *testing.T) {
		cfg := &config.Config{APIKey: "secret"}
		r := gin.New()
		r.GET("/read", okHandler)
		r.POST("/write", requireAPIKey(cfg), okHandler)

		rec := perform(r, http.MethodGet, "/read", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRateLimitMiddleware(t *testing.T) {
	t.Run("returns 429 past the limit", func(t *testing.T) {
		limiter := ratelimit.New(time.Minute, 2, 100)
		r := gin.New()
		r.GET("/limited", rateLimitMiddleware(limiter), okHandler)

		assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/limited", nil).Code)
		assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/limited", nil).Code)

		rec := perform(r, http.MethodGet, "/limited", nil)
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		assert.Contains(t, rec.Body.String(), "rate-limited")
	})

	t.Run("keys by API key when present", func(t *testing.T) {
		limiter := ratelimit.New(time.Minute, 1, 100)
		r := gin.New()
		r.GET("/limited", rateLimitMiddleware(limiter), okHandler)

		assert.Equal(t, http.StatusOK,
			perform(r, http.MethodGet, "/limited", map[string]string{"X-API-Key": "a"}).Code)
		assert.Equal(t, http.StatusTooManyRequests,
			perform(r, http.MethodGet, "/limited", map[string]string{"X-API-Key": "a"}).Code)

		// A different caller is unaffected
		assert.Equal(t, http.StatusOK,
			perform(r, http.MethodGet, "/limited", map[string]string{"X-API-Key": "b"}).Code)
	})
}

func TestCORSMiddleware(t *testing.T) {
	t.Run("permissive", func(t *testing.T) {
		cfg := &config.Config{CORSOrigins: []string{"*"}}
		r := gin.New()
		r.Use(corsMiddleware(cfg))
		r.GET("/x", okHandler)

		rec := perform(r, http.MethodGet, "/x", map[string]string{"Origin": "https://anywhere.example"})
		assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("allow-list", func(t *testing.T) {
		cfg := &config.Config{CORSOrigins: []string{"https://app.example.com"}}
		r := gin.New()
		r.Use(corsMiddleware(cfg))
		r.GET("/x", okHandler)

		rec := perform(r, http.MethodGet, "/x", map[string]string{"Origin": "https://app.example.com"})
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "Origin", rec.Header().Get("Vary"))

		rec = perform(r, http.MethodGet, "/x", map[string]string{"Origin": "https://evil.example.com"})
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("preflight short-circuits", func(t *testing.T) {
		cfg := &config.Config{CORSOrigins: []string{"*"}}
		r := gin.New()
		r.Use(corsMiddleware(cfg))
		r.GET("/x", okHandler)

		rec := perform(r, http.MethodOptions, "/x", map[string]string{"Origin": "https://app.example.com"})
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

func TestStoreDeadline(t *testing.T) {
	t.Run("applies the configured deadline", func(t *testing.T) {
		cfg := &config.Config{DBCommandTimeout: 5 * time.Second}
		r := gin.New()
		r.Use(storeDeadline(cfg))
		var hasDeadline bool
		r.GET("/x", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			okHandler(c)
		})

		assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/x", nil).Code)
		assert.True(t, hasDeadline)
	})

	t.Run("unset timeout leaves the context unbounded", func(t *testing.T) {
		r := gin.New()
		r.Use(storeDeadline(&config.Config{}))
		var hasDeadline bool
		r.GET("/x", func(c *gin.Context) {
			_, hasDeadline = c.Request.Context().Deadline()
			okHandler(c)
		})

		assert.Equal(t, http.StatusOK, perform(r, http.MethodGet, "/x", nil).Code)
		assert.False(t, hasDeadline)
	})
}

func TestSecurityHeaders(t *testing.T) {
	r := gin.New()
	r.Use(securityHeaders())
	r.GET("/x", okHandler)

	rec := perform(r, http.MethodGet, "/x", nil)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestRequestLogger_RequestID(t *testing.T) {
	r := gin.New()
	r.Use(requestLogger())
	r.GET("/x", okHandler)

	t.Run("generates id", func(t *testing.T) {
		rec := perform(r, http.MethodGet, "/x", nil)
		assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
	})

	t.Run("echoes caller id", func(t *testing.T) {
		rec := perform(r, http.MethodGet, "/x", map[string]string{"X-Request-ID": "req-42"})
		assert.Equal(t, "req-42", rec.Header().Get("X-Request-ID"))
	})
}
