package project

import (
	"context"
	"log"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type requestVideoSrv struct {
	repo  port.ProjectRepository
	gen   port.VideoGenerator
	cache port.Cache
}

// compile-time check: *requestVideoSrv must satisfy port.VideoRequester
var _ port.VideoRequester = (*requestVideoSrv)(nil)

// NewVideoRequester constructs a VideoRequester implementation.
func NewVideoRequester(repo port.ProjectRepository, gen port.VideoGenerator, cache port.Cache) port.VideoRequester {
	return &requestVideoSrv{repo: repo, gen: gen, cache: cache}
}

// RequestVideo starts full-video generation at the external provider. A
// completed video or an outstanding operation short-circuits, so repeated
// calls never start duplicate provider jobs.
func (s *requestVideoSrv) RequestVideo(ctx context.Context, ownerID, projectID db.UUID) (*port.VideoStatusOutput, error) {
	p, err := getOwnedProject(ctx, s.repo, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	if p.VideoURI != nil {
		return &port.VideoStatusOutput{Status: model.ProjectStatusCompleted, VideoURI: p.VideoURI}, nil
	}
	if p.VideoOperationID != nil {
		log.Printf("video generation for project #%s already in flight (operation %s)", projectID, *p.VideoOperationID)
		return &port.VideoStatusOutput{Status: model.ProjectStatusInProgress}, nil
	}

	script := ""
	if p.RefinedScript != nil {
		script = *p.RefinedScript
	} else if p.Script != nil {
		script = *p.Script
	}

	opID, err := s.gen.StartJob(ctx, port.StartVideoJobInput{
		ProjectID: p.ID.String(),
		Topic:     p.Topic,
		Style:     p.Style,
		Script:    script,
	})
	if err != nil {
		return nil, err
	}

	if err := s.repo.SetVideoOperation(ctx, projectID, s.gen.Provider(), opID); err != nil {
		return nil, err
	}

	invalidateProjectCache(ctx, s.cache, p.ID)
	log.Printf("🚀 video generation started for project #%s at provider %q (operation %s)", projectID, s.gen.Provider(), opID)
	return &port.VideoStatusOutput{Status: model.ProjectStatusInProgress}, nil
}
