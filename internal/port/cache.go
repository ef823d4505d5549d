package port

import (
	"context"
	"time"

	"github.com/reelforge/reels-ms-go/internal/db"
)

// Cache provides caching capabilities for project detail responses.
type Cache interface {
	GetProjectDetails(ctx context.Context, id db.UUID) ([]byte, error)
	GetEtagProjectDetails(ctx context.Context, id db.UUID) (string, error)
	SetProjectDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time)
	SetEtagProjectDetails(ctx context.Context, id db.UUID, etag string, validUntil time.Time)
	DeleteProjectDetails(ctx context.Context, id db.UUID) error
	DeleteEtagProjectDetails(ctx context.Context, id db.UUID) error
}
