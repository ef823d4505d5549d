package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

// RedisLimiter implements the same sliding window over a Redis sorted set so
// the quota holds across API replicas. Members are scored by their unix
// timestamp in nanoseconds; pruning is a range removal below the cutoff.
type RedisLimiter struct {
	client *redis.Client
	now    func() time.Time
}

// compile-time check: *RedisLimiter must satisfy port.RateLimiter
var _ port.RateLimiter = (*RedisLimiter)(nil)

func NewRedisLimiter(client *redis.Client) *RedisLimiter {
	return &RedisLimiter{client: client, now: time.Now}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) error {
	now := l.now()
	cutoff := now.Add(-window).UnixNano()
	rkey := "ratelimit:" + key

	if err := l.client.ZRemRangeByScore(ctx, rkey, "0", strconv.FormatInt(cutoff, 10)).Err(); err != nil {
		return fmt.Errorf("ratelimit prune failed: %w", err)
	}

	count, err := l.client.ZCard(ctx, rkey).Result()
	if err != nil {
		return fmt.Errorf("ratelimit count failed: %w", err)
	}
	if count >= int64(limit) {
		return fmt.Errorf("%w: %d calls in %s for %q", project.ErrRateLimited, count, window, key)
	}

	member := redis.Z{
		Score: float64(now.UnixNano()),
		// uuid member keeps two calls in the same nanosecond distinct
		Member: uuid.NewString(),
	}
	pipe := l.client.TxPipeline()
	pipe.ZAdd(ctx, rkey, member)
	pipe.Expire(ctx, rkey, window)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("ratelimit record failed: %w", err)
	}
	return nil
}
