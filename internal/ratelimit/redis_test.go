package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"

	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

func makeTestLimiter(t *testing.T) (*RedisLimiter, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis.Run: %v", err)
	}
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	return NewRedisLimiter(client), mr
}

func TestRedisLimiter_AllowsUpToLimit(t *testing.T) {
	l, mr := makeTestLimiter(t)
	defer mr.Close()
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		if err := l.Allow(ctx, "generate_scenes:user1", 2, time.Hour); err != nil {
			t.Fatalf("call %d should be allowed: %v", i+1, err)
		}
	}
	err := l.Allow(ctx, "generate_scenes:user1", 2, time.Hour)
	if err == nil {
		t.Fatal("3rd call should be rejected")
	}
	if !errors.Is(err, project.ErrRateLimited) {
		t.Errorf("error should wrap ErrRateLimited, got %v", err)
	}
}

func TestRedisLimiter_PrunesExpiredEvents(t *testing.T) {
	l, mr := makeTestLimiter(t)
	defer mr.Close()
	ctx := context.Background()

	current := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return current }

	if err := l.Allow(ctx, "k", 1, time.Hour); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := l.Allow(ctx, "k", 1, time.Hour); err == nil {
		t.Fatal("second call inside window should be rejected")
	}

	current = current.Add(time.Hour + time.Second)
	if err := l.Allow(ctx, "k", 1, time.Hour); err != nil {
		t.Errorf("call after window expiry should be allowed: %v", err)
	}
}

func TestRedisLimiter_SetsKeyExpiry(t *testing.T) {
	l, mr := makeTestLimiter(t)
	defer mr.Close()
	ctx := context.Background()

	if err := l.Allow(ctx, "k", 5, time.Hour); err != nil {
		t.Fatalf("Allow: %v", err)
	}
	if ttl := mr.TTL("ratelimit:k"); ttl <= 0 || ttl > time.Hour {
		t.Errorf("key TTL = %v; want (0, 1h]", ttl)
	}
}

func TestRedisLimiter_RedisError(t *testing.T) {
	l, mr := makeTestLimiter(t)
	mr.Close()

	err := l.Allow(context.Background(), "k", 5, time.Hour)
	if err == nil {
		t.Fatal("expected error after redis shutdown")
	}
	if errors.Is(err, project.ErrRateLimited) {
		t.Error("infrastructure failure must not masquerade as a rate limit")
	}
}
