package port

import (
	"context"
	"time"
)

// RateLimiter is sliding-window admission control keyed per (user, action).
// Allow prunes events older than the window, rejects when the remaining count
// reaches the limit, and otherwise records the call — check and increment as
// one step from the caller's perspective.
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) error
}
