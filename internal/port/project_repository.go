package port

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
)

// ProjectRepository defines persistence operations for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	GetByID(ctx context.Context, id db.UUID) (*model.Project, error)
	Delete(ctx context.Context, id db.UUID) error
	UpdateScenesCount(ctx context.Context, id db.UUID, count int) error

	// Preview state transitions. SetPreviewFailed deliberately leaves the
	// progress column at its last persisted value.
	SetPreviewProcessing(ctx context.Context, id db.UUID) error
	UpdatePreviewProgress(ctx context.Context, id db.UUID, progress int) error
	SetPreviewCompleted(ctx context.Context, id db.UUID, uri string) error
	SetPreviewFailed(ctx context.Context, id db.UUID, message string) error

	// External video provider bookkeeping.
	SetVideoOperation(ctx context.Context, id db.UUID, provider, operationID string) error
	SetVideoCompleted(ctx context.Context, id db.UUID, uri string) error
	ClearVideoOperation(ctx context.Context, id db.UUID) error
}
