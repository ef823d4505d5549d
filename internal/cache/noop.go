package cache

import (
	"context"
	"time"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
)

// NoopCache is used when no Redis address is configured; every read is a
// miss and writes go nowhere.
type NoopCache struct{}

// compile-time check: *NoopCache must satisfy port.Cache
var _ port.Cache = (*NoopCache)(nil)

func NewNoopCache() *NoopCache { return &NoopCache{} }

func (NoopCache) GetProjectDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	return nil, nil
}

func (NoopCache) GetEtagProjectDetails(ctx context.Context, id db.UUID) (string, error) {
	return "", nil
}

func (NoopCache) SetProjectDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time) {
}

func (NoopCache) SetEtagProjectDetails(ctx context.Context, id db.UUID, etag string, validUntil time.Time) {
}

func (NoopCache) DeleteProjectDetails(ctx context.Context, id db.UUID) error { return nil }

func (NoopCache) DeleteEtagProjectDetails(ctx context.Context, id db.UUID) error { return nil }
