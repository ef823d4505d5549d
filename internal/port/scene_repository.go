package port

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
)

// SceneRepository defines persistence operations for scenes. The renumbering
// operations are two-phase: rows are first staged into a disjoint numeric
// range, then settled to their final contiguous positions, so the per-project
// (project_id, scene_number) uniqueness constraint never trips mid-operation.
type SceneRepository interface {
	Create(ctx context.Context, scene *model.Scene) error
	CreateBatch(ctx context.Context, scenes []model.Scene) error
	Update(ctx context.Context, scene *model.Scene) error
	GetByID(ctx context.Context, id db.UUID) (*model.Scene, error)
	ListByProject(ctx context.Context, projectID db.UUID) ([]model.Scene, error)
	CountByProject(ctx context.Context, projectID db.UUID) (int, error)
	Delete(ctx context.Context, id db.UUID) error
	DeleteByProject(ctx context.Context, projectID db.UUID) error

	// ShiftNumbersUp makes room at position from by moving every scene with
	// scene_number >= from up by one.
	ShiftNumbersUp(ctx context.Context, projectID db.UUID, from int) error
	// CloseGap decrements scene_number for every scene numbered above the
	// given position, restoring contiguity after a delete.
	CloseGap(ctx context.Context, projectID db.UUID, above int) error
	// Renumber assigns scene_number 1..N following the order of the given ids.
	Renumber(ctx context.Context, projectID db.UUID, orderedIDs []db.UUID) error
}
