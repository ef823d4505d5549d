package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type deleteSceneSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	cache     port.Cache
	locker    port.ProjectLocker
}

// compile-time check: *deleteSceneSrv must satisfy port.SceneDeleter
var _ port.SceneDeleter = (*deleteSceneSrv)(nil)

// NewSceneDeleter constructs a SceneDeleter implementation.
func NewSceneDeleter(repo port.ProjectRepository, sceneRepo port.SceneRepository, cache port.Cache, locker port.ProjectLocker) port.SceneDeleter {
	return &deleteSceneSrv{repo: repo, sceneRepo: sceneRepo, cache: cache, locker: locker}
}

// DeleteScene removes one scene and closes the numbering gap behind it.
func (s *deleteSceneSrv) DeleteScene(ctx context.Context, ownerID, projectID, sceneID db.UUID) error {
	s.locker.Lock(projectID)
	defer s.locker.Unlock(projectID)

	p, err := getOwnedProject(ctx, s.repo, ownerID, projectID)
	if err != nil {
		return err
	}

	scene, err := s.sceneRepo.GetByID(ctx, sceneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: scene #%s", ErrNotFound, sceneID)
		}
		return err
	}
	if scene.ProjectID != projectID {
		return fmt.Errorf("%w: scene #%s", ErrNotFound, sceneID)
	}

	if err := s.sceneRepo.Delete(ctx, sceneID); err != nil {
		return err
	}
	if err := s.sceneRepo.CloseGap(ctx, projectID, scene.SceneNumber); err != nil {
		return err
	}

	count, err := s.sceneRepo.CountByProject(ctx, projectID)
	if err != nil {
		return err
	}
	if err := s.repo.UpdateScenesCount(ctx, projectID, count); err != nil {
		return err
	}

	invalidateProjectCache(ctx, s.cache, p.ID)
	log.Printf("✅ scene #%s deleted from project #%s", sceneID, projectID)
	return nil
}
