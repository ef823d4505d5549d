package project

import (
	"context"
	"log"
	"strings"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type generateScenesSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	gen       port.SceneGenerator
	limiter   port.RateLimiter
	usage     port.UsageRecorder
}

// compile-time check: *generateScenesSrv must satisfy port.ScenesGenerator
var _ port.ScenesGenerator = (*generateScenesSrv)(nil)

// NewScenesGenerator constructs a ScenesGenerator implementation.
func NewScenesGenerator(repo port.ProjectRepository, sceneRepo port.SceneRepository, gen port.SceneGenerator, limiter port.RateLimiter, usage port.UsageRecorder) port.ScenesGenerator {
	return &generateScenesSrv{repo: repo, sceneRepo: sceneRepo, gen: gen, limiter: limiter, usage: usage}
}

// GenerateScenes runs standalone scene generation from a topic or script,
// optionally persisting the result as a fresh project.
func (s *generateScenesSrv) GenerateScenes(ctx context.Context, in port.GenerateScenesStandaloneInput) (*port.GenerateScenesStandaloneOutput, error) {
	topic := strings.TrimSpace(in.Topic)
	script := strings.TrimSpace(in.Script)
	if topic == "" && script == "" {
		return nil, NewValidationError("one of topic or script is required")
	}

	if err := s.limiter.Allow(ctx, rateKey(ActionGenerateScenes, in.OwnerID), GenerateScenesLimit, RateWindow); err != nil {
		return nil, err
	}

	out, err := s.gen.GenerateScenes(ctx, port.GenerateScenesInput{
		Topic:      topic,
		Script:     script,
		Style:      in.Style,
		SceneCount: in.SceneCount,
	})
	if err != nil {
		return nil, err
	}
	recordUsage(ctx, s.usage, in.OwnerID, ActionGenerateScenes, out.Usage, model.UsageMetadata{
		"scene_count": len(out.Scenes),
		"standalone":  true,
	})

	result := &port.GenerateScenesStandaloneOutput{Scenes: out.Scenes}
	if !in.CreateProject {
		return result, nil
	}

	title := strings.TrimSpace(in.Title)
	if title == "" {
		title = deriveTopic(topic, script, nil)
	}
	p := &model.Project{
		ID:            db.NewUUID(),
		OwnerID:       in.OwnerID,
		Title:         title,
		Topic:         deriveTopic(topic, script, nil),
		Style:         in.Style,
		Status:        model.ProjectStatusDraft,
		PreviewStatus: model.PreviewStatusPending,
		ScenesCount:   len(out.Scenes),
	}
	if script != "" {
		p.Script = &script
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}

	scenes := make([]model.Scene, 0, len(out.Scenes))
	for _, d := range out.Scenes {
		scenes = append(scenes, sceneFromDraft(p.ID, d))
	}
	if err := s.sceneRepo.CreateBatch(ctx, scenes); err != nil {
		return nil, err
	}

	log.Printf("✅ generated %d scenes into new project #%s", len(scenes), p.ID)
	result.ProjectID = &p.ID
	return result, nil
}
