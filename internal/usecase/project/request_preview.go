package project

import (
	"context"
	"fmt"
	"log"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type requestPreviewSrv struct {
	repo       port.ProjectRepository
	sceneRepo  port.SceneRepository
	dispatcher port.TaskDispatcher
}

// compile-time check: *requestPreviewSrv must satisfy port.PreviewRequester
var _ port.PreviewRequester = (*requestPreviewSrv)(nil)

// NewPreviewRequester constructs a PreviewRequester implementation.
func NewPreviewRequester(repo port.ProjectRepository, sceneRepo port.SceneRepository, dispatcher port.TaskDispatcher) port.PreviewRequester {
	return &requestPreviewSrv{repo: repo, sceneRepo: sceneRepo, dispatcher: dispatcher}
}

// RequestPreview enqueues an asynchronous render. A render already in flight
// is left alone; the caller polls the status endpoint either way.
func (s *requestPreviewSrv) RequestPreview(ctx context.Context, ownerID, projectID db.UUID) error {
	p, err := getOwnedProject(ctx, s.repo, ownerID, projectID)
	if err != nil {
		return err
	}

	if p.PreviewStatus == model.PreviewStatusProcessing {
		log.Printf("preview of project #%s already processing, not enqueueing again", projectID)
		return nil
	}

	count, err := s.sceneRepo.CountByProject(ctx, projectID)
	if err != nil {
		return err
	}
	if count == 0 {
		return NewValidationError("project #%s has no scenes to render", projectID)
	}

	if err := s.dispatcher.EnqueueRenderPreview(ctx, projectID); err != nil {
		return fmt.Errorf("enqueue render job: %w", err)
	}

	log.Printf("🚀 preview render enqueued for project #%s (%d scenes)", projectID, count)
	return nil
}
