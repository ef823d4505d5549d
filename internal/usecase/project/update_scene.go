package project

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	"log"
	"strings"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"

	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type updateSceneSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	cache     port.Cache
}

// compile-time check: *updateSceneSrv must satisfy port.SceneUpdater
var _ port.SceneUpdater = (*updateSceneSrv)(nil)

// NewSceneUpdater constructs a SceneUpdater implementation.
func NewSceneUpdater(repo port.ProjectRepository, sceneRepo port.SceneRepository, cache port.Cache) port.SceneUpdater {
	return &updateSceneSrv{repo: repo, sceneRepo: sceneRepo, cache: cache}
}

// UpdateScene patches the given fields of one scene. Nil fields stay
// untouched; position changes go through reorder, never through here.
func (s *updateSceneSrv) UpdateScene(ctx context.Context, in port.UpdateSceneInput) (*model.Scene, error) {
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

	if in.Description != nil {
		if strings.TrimSpace(*in.Description) == "" {
			return nil, NewValidationError("description cannot be empty")
		}
		scene.Description = *in.Description
	}
	if in.Narration != nil {
		scene.Narration = *in.Narration
		// stale synthesized audio no longer matches the text
		scene.AudioURI = nil
	}
	if in.CaptionText != nil {
		scene.CaptionText = in.CaptionText
	}
	if in.TimingPlan != nil {
		scene.TimingPlan = in.TimingPlan
	}
	if in.ImagePrompt != nil {
		scene.ImagePrompt = in.ImagePrompt
	}
	if in.BRollPrompt != nil {
		scene.BRollPrompt = in.BRollPrompt
	}
	if in.Duration != nil {
		if *in.Duration < model.MinSceneDuration || *in.Duration > model.MaxSceneDuration {
			return nil, NewValidationError("scene duration %.1f out of bounds [%.0f, %.0f]",
				*in.Duration, model.MinSceneDuration, model.MaxSceneDuration)
		}
		scene.Duration = *in.Duration
	}
	if in.MediaType != nil {
		if *in.MediaType != model.MediaTypeImage && *in.MediaType != model.MediaTypeVideo {
			return nil, NewValidationError("unknown media type %q", *in.MediaType)
		}
		scene.MediaType = in.MediaType
	}
	if in.MediaURI != nil {
		if err := validateMediaURI(*in.MediaURI); err != nil {
			return nil, err
		}
		scene.MediaURI = in.MediaURI
	}
	if in.MediaTrimStart != nil {
		scene.MediaTrimStart = in.MediaTrimStart
	}
	if in.MediaTrimEnd != nil {
		scene.MediaTrimEnd = in.MediaTrimEnd
	}
	if scene.MediaTrimStart != nil && scene.MediaTrimEnd != nil && *scene.MediaTrimEnd <= *scene.MediaTrimStart {
		return nil, NewValidationError("media trim end must be after trim start")
	}
	if in.MediaAnimation != nil {
		scene.MediaAnimation = in.MediaAnimation
	}

	if err := s.sceneRepo.Update(ctx, scene); err != nil {
		return nil, err
	}

	invalidateProjectCache(ctx, s.cache, p.ID)
	log.Printf("✅ scene #%s of project #%s updated", scene.ID, p.ID)
	return scene, nil
}

// validateMediaURI accepts http(s) references as-is and probes inline image
// data URIs so a corrupt upload fails here rather than mid-render.
func validateMediaURI(uri string) error {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return nil
	}
	if !strings.HasPrefix(uri, "data:") {
		return NewValidationError("media uri must be http(s) or a data uri")
	}
	if !strings.HasPrefix(uri, "data:image/") {
		// video data URIs are passed through, ffmpeg validates them later
		return nil
	}

	idx := strings.Index(uri, ";base64,")
	if idx < 0 {
		return NewValidationError("image data uri must be base64 encoded")
	}
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len(";base64,"):])
	if err != nil {
		return NewValidationError("image data uri is not valid base64: %v", err)
	}
	if _, _, err := image.DecodeConfig(bytes.NewReader(raw)); err != nil {
		return NewValidationError("image data uri is not a decodable image: %v", err)
	}
	return nil
}
