package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type regenerateSceneSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	gen       port.SceneGenerator
	limiter   port.RateLimiter
	usage     port.UsageRecorder
	cache     port.Cache
}

// compile-time check: *regenerateSceneSrv must satisfy port.SceneRegenerator
var _ port.SceneRegenerator = (*regenerateSceneSrv)(nil)

// NewSceneRegenerator constructs a SceneRegenerator implementation.
func NewSceneRegenerator(repo port.ProjectRepository, sceneRepo port.SceneRepository, gen port.SceneGenerator, limiter port.RateLimiter, usage port.UsageRecorder, cache port.Cache) port.SceneRegenerator {
	return &regenerateSceneSrv{repo: repo, sceneRepo: sceneRepo, gen: gen, limiter: limiter, usage: usage, cache: cache}
}

// RegenerateScene rewrites exactly one scene in place, feeding the model the
// neighbouring scenes for continuity. Position, media attachment and timing
// plan survive; text fields come from the new draft.
func (s *regenerateSceneSrv) RegenerateScene(ctx context.Context, in port.RegenerateSceneRequest) (*model.Scene, error) {
	p, err := getOwnedProject(ctx, s.repo, in.OwnerID, in.ProjectID)
	if err != nil {
		return nil, err
	}

	scene, err := s.sceneRepo.GetByID(ctx, in.SceneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: scene #%s", ErrNotFound, in.SceneID)
		}
		return nil, err
	}
	if scene.ProjectID != in.ProjectID {
		return nil, fmt.Errorf("%w: scene #%s", ErrNotFound, in.SceneID)
	}

	if err := s.limiter.Allow(ctx, rateKey(ActionRegenerateScene, in.OwnerID), RegenerateSceneLimit, RateWindow); err != nil {
		return nil, err
	}

	scenes, err := s.sceneRepo.ListByProject(ctx, in.ProjectID)
	if err != nil {
		return nil, err
	}

	script := ""
	if p.RefinedScript != nil {
		script = *p.RefinedScript
	} else if p.Script != nil {
		script = *p.Script
	}

	out, err := s.gen.RegenerateScene(ctx, port.RegenerateSceneInput{
		Topic:        p.Topic,
		SceneNumber:  scene.SceneNumber,
		Context:      neighbourContext(scenes, scene.SceneNumber),
		Instructions: in.Instructions,
		Script:       script,
		Style:        p.Style,
	})
	if err != nil {
		return nil, err
	}
	recordUsage(ctx, s.usage, in.OwnerID, ActionRegenerateScene, out.Usage, model.UsageMetadata{
		"project_id":   p.ID.String(),
		"scene_id":     scene.ID.String(),
		"scene_number": scene.SceneNumber,
	})

	d := out.Scene
	scene.Description = d.Description
	scene.Narration = d.Narration
	scene.Duration = d.Duration
	if d.CaptionText != "" {
		scene.CaptionText = &d.CaptionText
	}
	if d.ImagePrompt != "" {
		scene.ImagePrompt = &d.ImagePrompt
	}
	if d.BRollPrompt != "" {
		scene.BRollPrompt = &d.BRollPrompt
	}
	// new narration invalidates previously synthesized audio
	scene.AudioURI = nil

	if err := s.sceneRepo.Update(ctx, scene); err != nil {
		return nil, err
	}

	invalidateProjectCache(ctx, s.cache, p.ID)
	log.Printf("✅ scene #%s of project #%s regenerated", scene.ID, p.ID)
	return scene, nil
}

// neighbourContext renders the scenes directly before and after the target
// so the rewrite stays coherent with its surroundings.
func neighbourContext(scenes []model.Scene, number int) string {
	var b strings.Builder
	for _, sc := range scenes {
		if sc.SceneNumber == number-1 || sc.SceneNumber == number+1 {
			fmt.Fprintf(&b, "Scene %d: %s", sc.SceneNumber, sc.Description)
			if sc.Narration != "" {
				fmt.Fprintf(&b, " (narration: %s)", sc.Narration)
			}
			b.WriteString("\n")
		}
	}
	return strings.TrimSpace(b.String())
}
