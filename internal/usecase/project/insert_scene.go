package project

import (
	"context"
	"log"

	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type insertSceneSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	cache     port.Cache
	locker    port.ProjectLocker
}

// compile-time check: *insertSceneSrv must satisfy port.SceneInserter
var _ port.SceneInserter = (*insertSceneSrv)(nil)

// NewSceneInserter constructs a SceneInserter implementation.
func NewSceneInserter(repo port.ProjectRepository, sceneRepo port.SceneRepository, cache port.Cache, locker port.ProjectLocker) port.SceneInserter {
	return &insertSceneSrv{repo: repo, sceneRepo: sceneRepo, cache: cache, locker: locker}
}

// InsertScene adds one scene at the requested position, shifting followers up
// by one. Position zero (the "omitted" sentinel) or anything past the end
// appends; negative positions clamp to the start. The whole mutation runs
// under the project lock so numbering stays a contiguous 1..N.
func (s *insertSceneSrv) InsertScene(ctx context.Context, in port.InsertSceneInput) (*model.Scene, error) {
	s.locker.Lock(in.ProjectID)
	defer s.locker.Unlock(in.ProjectID)

	p, err := getOwnedProject(ctx, s.repo, in.OwnerID, in.ProjectID)
	if err != nil {
		return nil, err
	}

	count, err := s.sceneRepo.CountByProject(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	position := in.Position
	switch {
	case position == 0 || position > count:
		position = count + 1
	case position < 0:
		position = 1
	}

	scene, err := sceneFromInput(in.ProjectID, position, in.Scene)
	if err != nil {
		return nil, err
	}

	if position <= count {
		if err := s.sceneRepo.ShiftNumbersUp(ctx, in.ProjectID, position); err != nil {
			return nil, err
		}
	}
	if err := s.sceneRepo.Create(ctx, scene); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateScenesCount(ctx, in.ProjectID, count+1); err != nil {
		return nil, err
	}

	invalidateProjectCache(ctx, s.cache, p.ID)
	log.Printf("✅ scene #%s inserted at position %d in project #%s", scene.ID, position, p.ID)
	return scene, nil
}
