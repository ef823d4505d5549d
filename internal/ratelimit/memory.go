package ratelimit

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

// MemoryLimiter is a sliding-window rate limiter backed by an in-process map.
// State is lost on restart and not shared between instances; use the Redis
// limiter when running more than one API replica.
type MemoryLimiter struct {
	mu     sync.Mutex
	events map[string][]time.Time
	now    func() time.Time
}

// compile-time check: *MemoryLimiter must satisfy port.RateLimiter
var _ port.RateLimiter = (*MemoryLimiter)(nil)

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		events: make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Allow prunes events older than the window, rejects when the count has
// reached the limit, and records the call otherwise. Check and record happen
// under one lock so concurrent callers cannot both slip under the limit.
func (l *MemoryLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	cutoff := now.Add(-window)

	kept := l.events[key][:0]
	for _, t := range l.events[key] {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}

	if len(kept) >= limit {
		l.events[key] = kept
		return fmt.Errorf("%w: %d calls in %s for %q", project.ErrRateLimited, len(kept), window, key)
	}

	l.events[key] = append(kept, now)
	return nil
}
