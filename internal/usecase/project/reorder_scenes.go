package project

import (
	"context"
	"log"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type reorderScenesSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	cache     port.Cache
	locker    port.ProjectLocker
}

// compile-time check: *reorderScenesSrv must satisfy port.SceneReorderer
var _ port.SceneReorderer = (*reorderScenesSrv)(nil)

// NewSceneReorderer constructs a SceneReorderer implementation.
func NewSceneReorderer(repo port.ProjectRepository, sceneRepo port.SceneRepository, cache port.Cache, locker port.ProjectLocker) port.SceneReorderer {
	return &reorderScenesSrv{repo: repo, sceneRepo: sceneRepo, cache: cache, locker: locker}
}

// ReorderScenes applies a full permutation of the project's scene ids. The
// given list must contain exactly the project's scene ids, no more, no less,
// no duplicates. An identity permutation returns without touching the
// database.
func (s *reorderScenesSrv) ReorderScenes(ctx context.Context, ownerID, projectID db.UUID, orderedIDs []db.UUID) ([]model.Scene, error) {
	s.locker.Lock(projectID)
	defer s.locker.Unlock(projectID)

	p, err := getOwnedProject(ctx, s.repo, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	scenes, err := s.sceneRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	if len(orderedIDs) != len(scenes) {
		return nil, NewValidationError("expected %d scene ids, got %d", len(scenes), len(orderedIDs))
	}
	current := make(map[db.UUID]int, len(scenes))
	for i, sc := range scenes {
		current[sc.ID] = i
	}
	seen := make(map[db.UUID]bool, len(orderedIDs))
	identity := true
	for i, id := range orderedIDs {
		pos, ok := current[id]
		if !ok {
			return nil, NewValidationError("scene #%s does not belong to project #%s", id, projectID)
		}
		if seen[id] {
			return nil, NewValidationError("scene #%s appears more than once", id)
		}
		seen[id] = true
		if pos != i {
			identity = false
		}
	}

	if identity {
		log.Printf("reorder of project #%s is a no-op, skipping", projectID)
		return scenes, nil
	}

	if err := s.sceneRepo.Renumber(ctx, projectID, orderedIDs); err != nil {
		return nil, err
	}

	reordered, err := s.sceneRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	invalidateProjectCache(ctx, s.cache, p.ID)
	log.Printf("✅ %d scenes of project #%s reordered", len(reordered), projectID)
	return reordered, nil
}
