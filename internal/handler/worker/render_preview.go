package worker

import (
	"context"
	"log"

	"github.com/google/uuid"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/task"
)

// RenderPreviewHandler handles a render-preview task. Render failures are
// already persisted on the project by the pipeline, so they are logged and
// swallowed here; retrying would just re-fail against the same inputs.
func RenderPreviewHandler(ctx context.Context, p task.RenderPreviewPayload, svc port.PreviewRenderer) error {
	id, err := uuid.Parse(p.ProjectID)
	if err != nil {
		log.Printf("❌  Invalid project ID %q: %v", p.ProjectID, err)
		return err
	}

	if err := svc.RenderPreview(ctx, db.UUID(id)); err != nil {
		log.Printf("❌  Failed to render preview for project #%s: %v", id, err)
		return nil
	}

	log.Printf("✅  Successfully rendered preview for project #%s", id)
	return nil
}
