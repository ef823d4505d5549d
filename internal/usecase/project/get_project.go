package project

import (
	"context"
	"time"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
)

// detailsTTL bounds how long a cached project details payload stays valid.
const detailsTTL = 5 * time.Minute

type getProjectSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
}

// compile-time check: *getProjectSrv must satisfy port.ProjectGetter
var _ port.ProjectGetter = (*getProjectSrv)(nil)

// NewProjectGetter constructs a ProjectGetter implementation.
func NewProjectGetter(repo port.ProjectRepository, sceneRepo port.SceneRepository) port.ProjectGetter {
	return &getProjectSrv{repo: repo, sceneRepo: sceneRepo}
}

func (s *getProjectSrv) GetProject(ctx context.Context, ownerID, id db.UUID) (*port.GetProjectOutput, error) {
	p, err := getOwnedProject(ctx, s.repo, ownerID, id)
	if err != nil {
		return nil, err
	}

	scenes, err := s.sceneRepo.ListByProject(ctx, id)
	if err != nil {
		return nil, err
	}

	return &port.GetProjectOutput{
		ValidUntil: time.Now().Add(detailsTTL),
		ProjectOutput: port.ProjectOutput{
			Project: p,
			Scenes:  scenes,
			Stats:   computeStats(scenes),
		},
	}, nil
}
