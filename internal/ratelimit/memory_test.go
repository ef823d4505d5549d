package ratelimit

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

func TestMemoryLimiter_AllowsUpToLimit(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if err := l.Allow(ctx, "generate_scenes:user1", 3, time.Hour); err != nil {
			t.Fatalf("call %d should be allowed: %v", i+1, err)
		}
	}
	err := l.Allow(ctx, "generate_scenes:user1", 3, time.Hour)
	if err == nil {
		t.Fatal("4th call should be rejected")
	}
	if !errors.Is(err, project.ErrRateLimited) {
		t.Errorf("error should wrap ErrRateLimited, got %v", err)
	}
}

func TestMemoryLimiter_KeysAreIndependent(t *testing.T) {
	l := NewMemoryLimiter()
	ctx := context.Background()

	if err := l.Allow(ctx, "generate_scenes:user1", 1, time.Hour); err != nil {
		t.Fatalf("first key: %v", err)
	}
	if err := l.Allow(ctx, "generate_scenes:user2", 1, time.Hour); err != nil {
		t.Errorf("other user should have its own quota: %v", err)
	}
	if err := l.Allow(ctx, "regenerate_scene:user1", 1, time.Hour); err != nil {
		t.Errorf("other action should have its own quota: %v", err)
	}
}

func TestMemoryLimiter_WindowSlides(t *testing.T) {
	current := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	l := NewMemoryLimiter()
	l.now = func() time.Time { return current }
	ctx := context.Background()

	if err := l.Allow(ctx, "k", 1, time.Hour); err != nil {
		t.Fatalf("first call: %v", err)
	}
	if err := l.Allow(ctx, "k", 1, time.Hour); err == nil {
		t.Fatal("second call inside window should be rejected")
	}

	// advance past the window: the old event must be pruned
	current = current.Add(time.Hour + time.Second)
	if err := l.Allow(ctx, "k", 1, time.Hour); err != nil {
		t.Errorf("call after window expiry should be allowed: %v", err)
	}
}
