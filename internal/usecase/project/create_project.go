package project

import (
	"context"
	"log"
	"strings"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type createProjectSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	gen       port.SceneGenerator
	limiter   port.RateLimiter
	usage     port.UsageRecorder
}

// compile-time check: *createProjectSrv must satisfy port.ProjectCreator
var _ port.ProjectCreator = (*createProjectSrv)(nil)

// NewProjectCreator constructs a ProjectCreator implementation.
func NewProjectCreator(repo port.ProjectRepository, sceneRepo port.SceneRepository, gen port.SceneGenerator, limiter port.RateLimiter, usage port.UsageRecorder) port.ProjectCreator {
	return &createProjectSrv{repo: repo, sceneRepo: sceneRepo, gen: gen, limiter: limiter, usage: usage}
}

// CreateProject persists a new project and its initial scenes. Explicit
// scenes take precedence over generation; when generation is requested the
// script is refined first and both model calls are audited separately.
func (s *createProjectSrv) CreateProject(ctx context.Context, in port.CreateProjectInput) (*port.ProjectOutput, error) {
	log.Printf("creating project %q for user #%s...", in.Title, in.OwnerID)

	if strings.TrimSpace(in.Title) == "" {
		return nil, NewValidationError("title is required")
	}
	topic := deriveTopic(in.Topic, in.Script, in.Scenes)
	if topic == "" {
		return nil, NewValidationError("one of topic, script or scenes is required")
	}

	p := &model.Project{
		ID:            db.NewUUID(),
		OwnerID:       in.OwnerID,
		Title:         strings.TrimSpace(in.Title),
		Topic:         topic,
		Style:         in.Style,
		Status:        model.ProjectStatusDraft,
		PreviewStatus: model.PreviewStatusPending,
	}
	if script := strings.TrimSpace(in.Script); script != "" {
		p.Script = &script
	}

	var scenes []model.Scene
	switch {
	case len(in.Scenes) > 0:
		for i, si := range in.Scenes {
			sc, err := sceneFromInput(p.ID, i+1, si)
			if err != nil {
				return nil, err
			}
			scenes = append(scenes, *sc)
		}
	case in.GenerateScenes:
		drafts, err := s.generateInitialScenes(ctx, in, p)
		if err != nil {
			return nil, err
		}
		for _, d := range drafts {
			scenes = append(scenes, sceneFromDraft(p.ID, d))
		}
	}

	p.ScenesCount = len(scenes)
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	if len(scenes) > 0 {
		if err := s.sceneRepo.CreateBatch(ctx, scenes); err != nil {
			return nil, err
		}
	}

	log.Printf("✅ project #%s created with %d scenes", p.ID, len(scenes))
	return &port.ProjectOutput{Project: p, Scenes: scenes, Stats: computeStats(scenes)}, nil
}

func (s *createProjectSrv) generateInitialScenes(ctx context.Context, in port.CreateProjectInput, p *model.Project) ([]port.DraftScene, error) {
	script := strings.TrimSpace(in.Script)
	if script == "" {
		return nil, NewValidationError("a script is required to generate scenes")
	}

	if err := s.limiter.Allow(ctx, rateKey(ActionGenerateScenes, in.OwnerID), GenerateScenesLimit, RateWindow); err != nil {
		return nil, err
	}

	refined, err := s.gen.RefineScript(ctx, p.Topic, script)
	if err != nil {
		return nil, err
	}
	recordUsage(ctx, s.usage, in.OwnerID, ActionRefineScript, refined.Usage, model.UsageMetadata{
		"project_id":    p.ID.String(),
		"script_length": len(script),
	})
	p.RefinedScript = &refined.Script
	script = refined.Script

	out, err := s.gen.GenerateScenes(ctx, port.GenerateScenesInput{
		Topic:      p.Topic,
		Script:     script,
		Style:      in.Style,
		SceneCount: in.SceneCount,
	})
	if err != nil {
		return nil, err
	}
	recordUsage(ctx, s.usage, in.OwnerID, ActionGenerateScenes, out.Usage, model.UsageMetadata{
		"project_id":  p.ID.String(),
		"scene_count": len(out.Scenes),
	})
	return out.Scenes, nil
}
