package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWindowLimiter(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	l := NewWindowLimiter(2, time.Minute, func() time.Time { return now })

	remaining, _, ok := l.Allow("10.0.0.1")
	assert.True(t, ok)
	assert.Equal(t, 1, remaining)

	_, _, ok = l.Allow("10.0.0.1")
	assert.True(t, ok)

	_, retry, ok := l.Allow("10.0.0.1")
	assert.False(t, ok)
	assert.Equal(t, time.Minute, retry)

	_, _, ok = l.Allow("10.0.0.2")
	assert.True(t, ok, "budgets are per key")

	now = now.Add(time.Minute)
	_, _, ok = l.Allow("10.0.0.1")
	assert.True(t, ok, "window resets")
	assert.Len(t, l.buckets, 1, "expired buckets are pruned")
}

func TestRateLimiterMiddleware(t *testing.T) {
	e := echo.New()
	e.Use(RateLimiter(1, time.Hour))
	e.GET("/", func(c echo.Context) error { return c.NoContent(http.StatusOK) })

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))

	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "3600", rec.Header().Get(echo.HeaderRetryAfter))
}
