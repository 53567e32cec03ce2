package ratelimit

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

// ErrorMessage is the fixed user-facing text for rate-limited requests.
const ErrorMessage = "Too many requests. Please wait a moment before sending another message."

// Limiter gates requests per client key. Allow reports whether the request
// may proceed; it never panics and backends decide their own failure policy.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

type entry struct {
	count     int
	resetTime time.Time
}

// MemoryLimiter is a fixed-window counter held in process memory. Entries for
// stale keys persist for the life of the process; suitable for a
// single-instance deployment only.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	max     int
	window  time.Duration
	now     func() time.Time
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*entry),
		max:     max,
		window:  window,
		now:     time.Now,
	}
}

// Allow implements the window semantics: a fresh or expired bucket resets to
// count=1 and is allowed; at or above max the request is denied without
// mutating the bucket.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.After(e.resetTime) {
		l.entries[key] = &entry{count: 1, resetTime: now.Add(l.window)}
		return true, nil
	}

	if e.count >= l.max {
		return false, nil
	}

	e.count++
	return true, nil
}

// ClientID derives the rate-limit key for a request: the first entry of
// X-Forwarded-For when present, otherwise the connection's remote host,
// otherwise the literal "unknown".
func ClientID(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		return strings.TrimSpace(strings.Split(forwarded, ",")[0])
	}
	if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
