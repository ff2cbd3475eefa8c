// Package ratelimit implements fixed-window request limiting keyed by client
// identity. The window slides forward only on reset, which is a deliberate
// approximation: simpler than a sliding log and strict enough for a public
// contact form.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter decides whether a request from the given key may proceed.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// entry is the per-key window state, owned exclusively by the limiter.
type entry struct {
	windowStart time.Time
	count       int
}

// MemoryLimiter is an in-process fixed-window limiter. The check-and-increment
// runs under a single mutex so concurrent requests for the same key can never
// interleave past the limit.
type MemoryLimiter struct {
	mu      sync.Mutex
	entries map[string]*entry
	limit   int
	window  time.Duration
	now     func() time.Time
}

// NewMemoryLimiter creates a limiter allowing limit requests per key per window.
func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		entries: make(map[string]*entry),
		limit:   limit,
		window:  window,
		now:     time.Now,
	}
}

// Allow reports whether the key has budget left in its current window.
// A key whose window has elapsed is reset to a fresh window, not rejected.
func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[key]
	if !ok || now.Sub(e.windowStart) >= l.window {
		l.entries[key] = &entry{windowStart: now, count: 1}
		return true, nil
	}
	if e.count >= l.limit {
		return false, nil
	}
	e.count++
	return true, nil
}

// Cleanup evicts entries whose window has elapsed.
func (l *MemoryLimiter) Cleanup() {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	for key, e := range l.entries {
		if now.Sub(e.windowStart) >= l.window {
			delete(l.entries, key)
		}
	}
}

// StartJanitor evicts expired entries every interval until ctx is done.
func (l *MemoryLimiter) StartJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	t := time.NewTicker(interval)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				l.Cleanup()
			}
		}
	}()
}
