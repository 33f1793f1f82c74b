package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autofixx/storefront/pkg/config"
	"github.com/autofixx/storefront/pkg/ratelimit"
)

type stubLimiter struct {
	result *ratelimit.Result
	err    error
	keys   []string
}

func (l *stubLimiter) Allow(ctx context.Context, key string, limit ratelimit.Limit) (*ratelimit.Result, error) {
	l.keys = append(l.keys, key)
	return l.result, l.err
}

func rateLimitRouter(limiter ratelimit.RateLimiter, cfg config.RateLimitConfig) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RateLimitMiddleware(limiter, cfg))
	router.GET("/api/products", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func TestRateLimitAllowsAndSetsHeaders(t *testing.T) {
	limiter := &stubLimiter{result: &ratelimit.Result{
		Allowed:    true,
		Remaining:  9,
		ResetAfter: 2 * time.Second,
	}}
	cfg := config.RateLimitConfig{Enabled: true, Rate: 10, Period: 1, Burst: 10}
	router := rateLimitRouter(limiter, cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "10", rec.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "9", rec.Header().Get("X-RateLimit-Remaining"))

	require.Len(t, limiter.keys, 1)
	assert.True(t, strings.HasPrefix(limiter.keys[0], "storefront:ratelimit:"))
}

func TestRateLimitRejectsWithRetryAfter(t *testing.T) {
	limiter := &stubLimiter{result: &ratelimit.Result{
		Allowed:    false,
		RetryAfter: 3 * time.Second,
	}}
	cfg := config.RateLimitConfig{Enabled: true, Rate: 1, Period: 1, Burst: 1}
	router := rateLimitRouter(limiter, cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3", rec.Header().Get("Retry-After"))
}

func TestRateLimitFailsOpenOnLimiterError(t *testing.T) {
	limiter := &stubLimiter{err: assert.AnError}
	cfg := config.RateLimitConfig{Enabled: true, Rate: 1, Period: 1, Burst: 1}
	router := rateLimitRouter(limiter, cfg)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimitDisabledPassesThrough(t *testing.T) {
	limiter := &stubLimiter{}
	router := rateLimitRouter(limiter, config.RateLimitConfig{Enabled: false})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, limiter.keys)
}
