package middleware

import (
	"net"
	"net/http"
	"sync"
	"time"
)

// RateLimiter is a fixed-window per-client limiter. Windows reset
// lazily on access; stale entries are pruned as they are touched.
type RateLimiter struct {
	mu      sync.Mutex
	max     int
	window  time.Duration
	clients map[string]*windowCount
	now     func() time.Time
}

type windowCount struct {
	start time.Time
	count int
}

// NewRateLimiter allows max requests per client per window.
func NewRateLimiter(max int, window time.Duration) *RateLimiter {
	return &RateLimiter{
		max:     max,
		window:  window,
		clients: make(map[string]*windowCount),
		now:     time.Now,
	}
}

// Allow records a hit for the client and reports whether it is within
// the limit.
func (l *RateLimiter) Allow(client string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w, ok := l.clients[client]
	if !ok || now.Sub(w.start) >= l.window {
		l.clients[client] = &windowCount{start: now, count: 1}
		return true
	}
	w.count++
	return w.count <= l.max
}

// Middleware rejects over-limit requests with 429.
func (l *RateLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			host = r.RemoteAddr
		}
		if !l.Allow(host) {
			http.Error(w, "Too many requests, please try again later", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
