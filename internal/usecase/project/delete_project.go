package project

import (
	"context"
	"log"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type deleteProjectSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	cache     port.Cache
	strg      port.Storage
	bucket    string
}

// compile-time check: *deleteProjectSrv must satisfy port.ProjectDeleter
var _ port.ProjectDeleter = (*deleteProjectSrv)(nil)

// NewProjectDeleter constructs a ProjectDeleter implementation.
func NewProjectDeleter(repo port.ProjectRepository, sceneRepo port.SceneRepository, cache port.Cache, strg port.Storage, bucket string) port.ProjectDeleter {
	return &deleteProjectSrv{repo: repo, sceneRepo: sceneRepo, cache: cache, strg: strg, bucket: bucket}
}

// DeleteProject removes the project, its scenes and its stored preview.
// Scene rows also fall to the FK cascade; the explicit delete keeps the
// behaviour independent of schema details.
func (s *deleteProjectSrv) DeleteProject(ctx context.Context, ownerID, id db.UUID) error {
	p, err := getOwnedProject(ctx, s.repo, ownerID, id)
	if err != nil {
		return err
	}

	if p.PreviewURI != nil {
		key := previewObjectKey(id)
		if err := s.strg.RemoveFile(ctx, s.bucket, key); err != nil {
			log.Printf("failed to remove preview %q of project #%s: %v", key, id, err)
		}
	}

	if err := s.sceneRepo.DeleteByProject(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	invalidateProjectCache(ctx, s.cache, id)
	log.Printf("✅ project #%s deleted", id)
	return nil
}

// previewObjectKey is the canonical storage key of a project's rendered
// preview.
func previewObjectKey(projectID db.UUID) string {
	return "previews/" + projectID.String() + ".mp4"
}
