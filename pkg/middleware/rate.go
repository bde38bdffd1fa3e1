package middleware

import (
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/shashiranjanraj/rentalease/pkg/response"
)

// bucket tracks a fixed-window request count for one client.
type bucket struct {
	count   int
	resetAt time.Time
}

// RateLimiter caps requests per client IP within a window. Each limiter
// owns its buckets, so separate route groups can be throttled separately.
type RateLimiter struct {
	max            int
	window         time.Duration
	trustForwarded bool
	now            func() time.Time

	mu      sync.Mutex
	buckets map[string]*bucket
}

// NewRateLimiter keys clients by the connection address. With
// trustForwarded set, the first X-Forwarded-For entry is used instead.
func NewRateLimiter(max int, window time.Duration, trustForwarded bool) *RateLimiter {
	return &RateLimiter{
		max:            max,
		window:         window,
		trustForwarded: trustForwarded,
		now:            time.Now,
		buckets:        make(map[string]*bucket),
	}
}

// Allow counts one request for key and reports whether it is within the limit.
func (l *RateLimiter) Allow(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	b, ok := l.buckets[key]
	if !ok || now.After(b.resetAt) {
		b = &bucket{resetAt: now.Add(l.window)}
		l.buckets[key] = b
	}
	b.count++

	if len(l.buckets) > 10_000 {
		l.sweep(now)
	}
	return b.count <= l.max
}

// sweep drops expired buckets. Callers hold l.mu.
func (l *RateLimiter) sweep(now time.Time) {
	for key, b := range l.buckets {
		if now.After(b.resetAt) {
			delete(l.buckets, key)
		}
	}
}

// Middleware rejects requests over the limit with 429.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(ClientIP(r, l.trustForwarded)) {
			response.Error(w, http.StatusTooManyRequests, "Too many requests, try again later")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ClientIP returns the caller's address without its port.
func ClientIP(r *http.Request, trustForwarded bool) string {
	if trustForwarded {
		if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
			if ip := strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0]); ip != "" {
				return ip
			}
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
