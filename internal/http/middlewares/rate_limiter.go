package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
)

// WindowLimiter admits at most limit requests per key in each fixed window.
type WindowLimiter struct {
	limit  int
	window time.Duration
	now    func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

type bucket struct {
	count int
	start time.Time
}

func NewWindowLimiter(limit int, window time.Duration, now func() time.Time) *WindowLimiter {
	if now == nil {
		now = time.Now
	}
	return &WindowLimiter{
		limit:   limit,
		window:  window,
		now:     now,
		buckets: make(map[string]*bucket),
	}
}

// Allow counts one request for key. When the budget is spent it reports how
// long until the window resets.
func (l *WindowLimiter) Allow(key string) (remaining int, retryAfter time.Duration, ok bool) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	b, found := l.buckets[key]
	if !found || now.Sub(b.start) >= l.window {
		l.prune(now)
		b = &bucket{start: now}
		l.buckets[key] = b
	}

	if b.count >= l.limit {
		return 0, b.start.Add(l.window).Sub(now), false
	}
	b.count++
	return l.limit - b.count, 0, true
}

// prune drops expired buckets so idle clients do not accumulate.
func (l *WindowLimiter) prune(now time.Time) {
	for key, b := range l.buckets {
		if now.Sub(b.start) >= l.window {
			delete(l.buckets, key)
		}
	}
}

func RateLimiter(limit int, window time.Duration) echo.MiddlewareFunc {
	return RateLimiterWith(NewWindowLimiter(limit, window, nil))
}

func RateLimiterWith(l *WindowLimiter) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			remaining, retryAfter, ok := l.Allow(c.RealIP())
			c.Response().Header().Set("X-RateLimit-Remaining", strconv.Itoa(remaining))
			if !ok {
				seconds := int(retryAfter.Round(time.Second) / time.Second)
				if seconds < 1 {
					seconds = 1
				}
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(seconds))
				return echo.NewHTTPError(http.StatusTooManyRequests, "rate limit exceeded")
			}
			return next(c)
		}
	}
}
