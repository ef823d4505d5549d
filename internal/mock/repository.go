package mock

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
)

// ProjectRepo implements port.ProjectRepository for tests.
type ProjectRepo struct {
	Project *model.Project

	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error

	CreateCalled bool
	UpdateCalled bool
	DeleteCalled bool

	ScenesCount       int
	ScenesCountCalled bool

	PreviewProcessingCalled bool
	PreviewProgressValues   []int
	PreviewCompletedURI     string
	PreviewCompletedCalled  bool
	PreviewFailedMessage    string
	PreviewFailedCalled     bool

	VideoProvider        string
	VideoOperationID     string
	SetVideoOpCalled     bool
	VideoCompletedURI    string
	VideoCompletedCalled bool
	ClearVideoOpCalled   bool

	SetPreviewProcessingErr  error
	UpdatePreviewProgressErr error
	SetPreviewCompletedErr   error
	SetPreviewFailedErr      error
}

func (r *ProjectRepo) Create(ctx context.Context, p *model.Project) error {
	r.CreateCalled = true
	if r.CreateErr == nil {
		r.Project = p
	}
	return r.CreateErr
}

func (r *ProjectRepo) Update(ctx context.Context, p *model.Project) error {
	r.UpdateCalled = true
	if r.UpdateErr == nil {
		r.Project = p
	}
	return r.UpdateErr
}

func (r *ProjectRepo) GetByID(ctx context.Context, id db.UUID) (*model.Project, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	return r.Project, nil
}

func (r *ProjectRepo) Delete(ctx context.Context, id db.UUID) error {
	r.DeleteCalled = true
	return r.DeleteErr
}

func (r *ProjectRepo) UpdateScenesCount(ctx context.Context, id db.UUID, count int) error {
	r.ScenesCountCalled = true
	r.ScenesCount = count
	return nil
}

func (r *ProjectRepo) SetPreviewProcessing(ctx context.Context, id db.UUID) error {
	r.PreviewProcessingCalled = true
	return r.SetPreviewProcessingErr
}

func (r *ProjectRepo) UpdatePreviewProgress(ctx context.Context, id db.UUID, progress int) error {
	r.PreviewProgressValues = append(r.PreviewProgressValues, progress)
	return r.UpdatePreviewProgressErr
}

func (r *ProjectRepo) SetPreviewCompleted(ctx context.Context, id db.UUID, uri string) error {
	r.PreviewCompletedCalled = true
	r.PreviewCompletedURI = uri
	return r.SetPreviewCompletedErr
}

func (r *ProjectRepo) SetPreviewFailed(ctx context.Context, id db.UUID, message string) error {
	r.PreviewFailedCalled = true
	r.PreviewFailedMessage = message
	return r.SetPreviewFailedErr
}

func (r *ProjectRepo) SetVideoOperation(ctx context.Context, id db.UUID, provider, operationID string) error {
	r.SetVideoOpCalled = true
	r.VideoProvider = provider
	r.VideoOperationID = operationID
	return nil
}

func (r *ProjectRepo) SetVideoCompleted(ctx context.Context, id db.UUID, uri string) error {
	r.VideoCompletedCalled = true
	r.VideoCompletedURI = uri
	return nil
}

func (r *ProjectRepo) ClearVideoOperation(ctx context.Context, id db.UUID) error {
	r.ClearVideoOpCalled = true
	return nil
}

// SceneRepo implements port.SceneRepository for tests. Scenes are kept in a
// slice ordered by SceneNumber so renumbering behaviour can be asserted.
type SceneRepo struct {
	Scenes []model.Scene

	GetOut *model.Scene
	GetErr error

	CreateErr error
	UpdateErr error
	DeleteErr error
	ListErr   error

	CreateCalled      bool
	CreateBatchCalled bool
	UpdateCalled      bool
	UpdatedScene      *model.Scene
	DeleteCalled      bool
	DeleteAllCalled   bool

	ShiftFrom      int
	ShiftCalled    bool
	ShiftErr       error
	CloseGapAbove  int
	CloseGapCalled bool
	CloseGapErr    error
	RenumberedIDs  []db.UUID
	RenumberCalled bool
	RenumberErr    error
}

func (r *SceneRepo) Create(ctx context.Context, s *model.Scene) error {
	r.CreateCalled = true
	if r.CreateErr == nil {
		r.Scenes = append(r.Scenes, *s)
	}
	return r.CreateErr
}

func (r *SceneRepo) CreateBatch(ctx context.Context, scenes []model.Scene) error {
	r.CreateBatchCalled = true
	if r.CreateErr == nil {
		r.Scenes = append(r.Scenes, scenes...)
	}
	return r.CreateErr
}

func (r *SceneRepo) Update(ctx context.Context, s *model.Scene) error {
	r.UpdateCalled = true
	r.UpdatedScene = s
	return r.UpdateErr
}

func (r *SceneRepo) GetByID(ctx context.Context, id db.UUID) (*model.Scene, error) {
	if r.GetErr != nil {
		return nil, r.GetErr
	}
	if r.GetOut != nil {
		return r.GetOut, nil
	}
	for i := range r.Scenes {
		if r.Scenes[i].ID == id {
			return &r.Scenes[i], nil
		}
	}
	return nil, r.GetErr
}

func (r *SceneRepo) ListByProject(ctx context.Context, projectID db.UUID) ([]model.Scene, error) {
	if r.ListErr != nil {
		return nil, r.ListErr
	}
	return r.Scenes, nil
}

func (r *SceneRepo) CountByProject(ctx context.Context, projectID db.UUID) (int, error) {
	return len(r.Scenes), nil
}

func (r *SceneRepo) Delete(ctx context.Context, id db.UUID) error {
	r.DeleteCalled = true
	if r.DeleteErr == nil {
		for i := range r.Scenes {
			if r.Scenes[i].ID == id {
				r.Scenes = append(r.Scenes[:i], r.Scenes[i+1:]...)
				break
			}
		}
	}
	return r.DeleteErr
}

func (r *SceneRepo) DeleteByProject(ctx context.Context, projectID db.UUID) error {
	r.DeleteAllCalled = true
	if r.DeleteErr == nil {
		r.Scenes = nil
	}
	return r.DeleteErr
}

func (r *SceneRepo) ShiftNumbersUp(ctx context.Context, projectID db.UUID, from int) error {
	r.ShiftCalled = true
	r.ShiftFrom = from
	if r.ShiftErr == nil {
		for i := range r.Scenes {
			if r.Scenes[i].SceneNumber >= from {
				r.Scenes[i].SceneNumber++
			}
		}
	}
	return r.ShiftErr
}

func (r *SceneRepo) CloseGap(ctx context.Context, projectID db.UUID, above int) error {
	r.CloseGapCalled = true
	r.CloseGapAbove = above
	if r.CloseGapErr == nil {
		for i := range r.Scenes {
			if r.Scenes[i].SceneNumber > above {
				r.Scenes[i].SceneNumber--
			}
		}
	}
	return r.CloseGapErr
}

func (r *SceneRepo) Renumber(ctx context.Context, projectID db.UUID, orderedIDs []db.UUID) error {
	r.RenumberCalled = true
	r.RenumberedIDs = orderedIDs
	if r.RenumberErr == nil {
		byID := make(map[db.UUID]model.Scene, len(r.Scenes))
		for _, s := range r.Scenes {
			byID[s.ID] = s
		}
		out := make([]model.Scene, 0, len(orderedIDs))
		for i, id := range orderedIDs {
			s := byID[id]
			s.SceneNumber = i + 1
			out = append(out, s)
		}
		r.Scenes = out
	}
	return r.RenumberErr
}

// UsageRecorder implements port.UsageRecorder for tests.
type UsageRecorder struct {
	Entries []*model.AIUsage
	Err     error
}

func (r *UsageRecorder) Record(ctx context.Context, u *model.AIUsage) error {
	if r.Err != nil {
		return r.Err
	}
	r.Entries = append(r.Entries, u)
	return nil
}
