package project

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type previewStatusSrv struct {
	repo port.ProjectRepository
}

// compile-time check: *previewStatusSrv must satisfy port.PreviewStatusGetter
var _ port.PreviewStatusGetter = (*previewStatusSrv)(nil)

// NewPreviewStatusGetter constructs a PreviewStatusGetter implementation.
func NewPreviewStatusGetter(repo port.ProjectRepository) port.PreviewStatusGetter {
	return &previewStatusSrv{repo: repo}
}

// PreviewStatus returns a snapshot of the render state machine. It reads
// whatever the worker last persisted and never blocks on the render itself.
func (s *previewStatusSrv) PreviewStatus(ctx context.Context, ownerID, projectID db.UUID) (*port.PreviewStatusOutput, error) {
	p, err := getOwnedProject(ctx, s.repo, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	return &port.PreviewStatusOutput{
		Status:     p.PreviewStatus,
		PreviewURI: p.PreviewURI,
		Progress:   p.PreviewProgress,
		Message:    p.PreviewMessage,
	}, nil
}
