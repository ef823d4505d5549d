package task

import (
	"context"
	"log"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
)

// NoopDispatcher is used when no Redis address is configured; enqueue calls
// are logged and dropped.
type NoopDispatcher struct{}

var _ port.TaskDispatcher = (*NoopDispatcher)(nil)

func NewNoopDispatcher() *NoopDispatcher { return &NoopDispatcher{} }

func (d *NoopDispatcher) EnqueueRenderPreview(ctx context.Context, id db.UUID) error {
	log.Printf("no task queue configured, dropping render-preview job for project #%s", id)
	return nil
}
