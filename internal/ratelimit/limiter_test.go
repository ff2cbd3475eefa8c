package ratelimit

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	l := NewMemoryLimiter(5, time.Hour)

	for i := 0; i < 5; i++ {
		allowed, err := l.Allow(context.Background(), "1.2.3.4")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !allowed {
			t.Fatalf("call %d should be allowed", i+1)
		}
	}

	allowed, err := l.Allow(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if allowed {
		t.Error("6th call within the window should be rejected")
	}
}

func TestMemoryLimiter_ResetsAfterWindow(t *testing.T) {
	now := time.Now()
	l := NewMemoryLimiter(5, time.Hour)
	l.now = func() time.Time { return now }

	for i := 0; i < 6; i++ {
		l.Allow(context.Background(), "1.2.3.4")
	}

	// Advance past the window: the next call starts a fresh window instead
	// of being rejected.
	now = now.Add(time.Hour + time.Second)

	allowed, err := l.Allow(context.Background(), "1.2.3.4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Fatal("call after window expiry should be allowed")
	}

	// The counter was reset, so the full budget minus one remains.
	for i := 0; i < 4; i++ {
		allowed, _ := l.Allow(context.Background(), "1.2.3.4")
		if !allowed {
			t.Fatalf("call %d of the fresh window should be allowed", i+2)
		}
	}
	allowed, _ = l.Allow(context.Background(), "1.2.3.4")
	if allowed {
		t.Error("fresh window should also cap at the limit")
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter(1, time.Hour)

	if allowed, _ := l.Allow(context.Background(), "a"); !allowed {
		t.Fatal("first call for key a should be allowed")
	}
	if allowed, _ := l.Allow(context.Background(), "a"); allowed {
		t.Error("second call for key a should be rejected")
	}
	if allowed, _ := l.Allow(context.Background(), "b"); !allowed {
		t.Error("key b has its own budget")
	}
}

func TestMemoryLimiter_ConcurrentBurstCapsAtLimit(t *testing.T) {
	l := NewMemoryLimiter(5, time.Hour)

	var allowedCount int32
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			allowed, err := l.Allow(context.Background(), "burst")
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			if allowed {
				atomic.AddInt32(&allowedCount, 1)
			}
		}()
	}
	wg.Wait()

	if allowedCount != 5 {
		t.Errorf("expected exactly 5 allowed under concurrency, got %d", allowedCount)
	}
}

func TestMemoryLimiter_CleanupEvictsExpiredEntries(t *testing.T) {
	now := time.Now()
	l := NewMemoryLimiter(5, time.Hour)
	l.now = func() time.Time { return now }

	l.Allow(context.Background(), "old")
	now = now.Add(2 * time.Hour)
	l.Allow(context.Background(), "fresh")

	l.Cleanup()

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.entries["old"]; ok {
		t.Error("expired entry should have been evicted")
	}
	if _, ok := l.entries["fresh"]; !ok {
		t.Error("live entry should have been kept")
	}
}
