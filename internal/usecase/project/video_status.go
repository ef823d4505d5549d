package project

import (
	"context"
	"log"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type videoStatusSrv struct {
	repo  port.ProjectRepository
	gen   port.VideoGenerator
	cache port.Cache
}

// compile-time check: *videoStatusSrv must satisfy port.VideoStatusGetter
var _ port.VideoStatusGetter = (*videoStatusSrv)(nil)

// NewVideoStatusGetter constructs a VideoStatusGetter implementation.
func NewVideoStatusGetter(repo port.ProjectRepository, gen port.VideoGenerator, cache port.Cache) port.VideoStatusGetter {
	return &videoStatusSrv{repo: repo, gen: gen, cache: cache}
}

// VideoStatus resolves the outstanding provider operation, if any, and
// persists its outcome. A finished video answers from the database without
// touching the provider.
func (s *videoStatusSrv) VideoStatus(ctx context.Context, ownerID, projectID db.UUID) (*port.VideoStatusOutput, error) {
	p, err := getOwnedProject(ctx, s.repo, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	if p.VideoURI != nil {
		return &port.VideoStatusOutput{Status: model.ProjectStatusCompleted, VideoURI: p.VideoURI}, nil
	}
	if p.VideoOperationID == nil {
		return &port.VideoStatusOutput{Status: p.Status}, nil
	}

	op, err := s.gen.PollOperation(ctx, *p.VideoOperationID)
	if err != nil {
		return nil, err
	}
	if !op.Done {
		return &port.VideoStatusOutput{Status: model.ProjectStatusInProgress}, nil
	}

	if op.Err != "" {
		log.Printf("❌ video generation for project #%s failed at provider: %s", projectID, op.Err)
		if err := s.repo.ClearVideoOperation(ctx, projectID); err != nil {
			return nil, err
		}
		invalidateProjectCache(ctx, s.cache, p.ID)
		msg := op.Err
		return &port.VideoStatusOutput{Status: model.ProjectStatusDraft, Message: &msg}, nil
	}

	if err := s.repo.SetVideoCompleted(ctx, projectID, op.URI); err != nil {
		return nil, err
	}
	invalidateProjectCache(ctx, s.cache, p.ID)
	log.Printf("✅ video generation for project #%s completed: %s", projectID, op.URI)
	uri := op.URI
	return &port.VideoStatusOutput{Status: model.ProjectStatusCompleted, VideoURI: &uri}, nil
}
