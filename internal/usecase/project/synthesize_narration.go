package project

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type synthesizeNarrationSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	voice     port.VoiceSynthesiser
	limiter   port.RateLimiter
	usage     port.UsageRecorder
	cache     port.Cache
	voiceID   string
	modelID   string
}

// compile-time check: *synthesizeNarrationSrv must satisfy port.NarrationSynthesiser
var _ port.NarrationSynthesiser = (*synthesizeNarrationSrv)(nil)

// NewNarrationSynthesiser constructs a NarrationSynthesiser implementation.
func NewNarrationSynthesiser(repo port.ProjectRepository, sceneRepo port.SceneRepository, voice port.VoiceSynthesiser, limiter port.RateLimiter, usage port.UsageRecorder, cache port.Cache, voiceID, modelID string) port.NarrationSynthesiser {
	return &synthesizeNarrationSrv{
		repo: repo, sceneRepo: sceneRepo, voice: voice,
		limiter: limiter, usage: usage, cache: cache,
		voiceID: voiceID, modelID: modelID,
	}
}

// SynthesizeNarration voices a scene's narration text and stores the result
// as a self-contained data URI on the scene, so renders need no extra
// round-trip to fetch audio.
func (s *synthesizeNarrationSrv) SynthesizeNarration(ctx context.Context, ownerID, projectID, sceneID db.UUID) (*model.Scene, error) {
	p, err := getOwnedProject(ctx, s.repo, ownerID, projectID)
	if err != nil {
		return nil, err
	}

	scene, err := s.sceneRepo.GetByID(ctx, sceneID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: scene #%s", ErrNotFound, sceneID)
		}
		return nil, err
	}
	if scene.ProjectID != projectID {
		return nil, fmt.Errorf("%w: scene #%s", ErrNotFound, sceneID)
	}

	text := strings.TrimSpace(scene.Narration)
	if text == "" {
		return nil, NewValidationError("scene #%s has no narration to synthesize", sceneID)
	}

	if err := s.limiter.Allow(ctx, rateKey(ActionSynthesizeNarration, ownerID), SynthesizeNarrationLimit, RateWindow); err != nil {
		return nil, err
	}

	audio, mime, err := s.voice.Synthesize(ctx, text, s.voiceID, s.modelID)
	if err != nil {
		return nil, err
	}
	recordUsage(ctx, s.usage, ownerID, ActionSynthesizeNarration, port.TokenUsage{Model: s.modelID}, model.UsageMetadata{
		"project_id":  p.ID.String(),
		"scene_id":    scene.ID.String(),
		"chars":       len(text),
		"audio_bytes": len(audio),
	})

	dataURI := fmt.Sprintf("data:%s;base64,%s", mime, base64.StdEncoding.EncodeToString(audio))
	scene.AudioURI = &dataURI

	if err := s.sceneRepo.Update(ctx, scene); err != nil {
		return nil, err
	}

	invalidateProjectCache(ctx, s.cache, p.ID)
	log.Printf("✅ narration synthesized for scene #%s of project #%s (%d bytes)", scene.ID, p.ID, len(audio))
	return scene, nil
}
