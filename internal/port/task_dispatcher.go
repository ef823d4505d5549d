package port

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/db"
)

// TaskDispatcher enqueues asynchronous render jobs. The render runs detached
// from the request lifecycle; callers observe it through the preview status.
type TaskDispatcher interface {
	EnqueueRenderPreview(ctx context.Context, projectID db.UUID) error
}
