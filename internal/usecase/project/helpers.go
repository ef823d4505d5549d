package project

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

// getOwnedProject fetches a project and enforces ownership. A project owned
// by someone else reads as missing so ids cannot be probed.
func getOwnedProject(ctx context.Context, repo port.ProjectRepository, ownerID, id db.UUID) (*model.Project, error) {
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: project #%s", ErrNotFound, id)
		}
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, fmt.Errorf("%w: project #%s", ErrNotFound, id)
	}
	return p, nil
}

func computeStats(scenes []model.Scene) port.SceneStats {
	stats := port.SceneStats{ScenesCount: len(scenes)}
	for _, s := range scenes {
		stats.TotalDuration += s.Duration
	}
	if stats.ScenesCount > 0 {
		stats.AverageSceneDuration = stats.TotalDuration / float64(stats.ScenesCount)
	}
	return stats
}

// sceneFromInput builds a persistable scene from caller input. Duration zero
// means "use the default"; out-of-bounds values are the caller's mistake.
// Narration falls back to the description so every scene stays voiceable.
func sceneFromInput(projectID db.UUID, number int, in port.SceneInput) (*model.Scene, error) {
	narration := in.Narration
	if strings.TrimSpace(narration) == "" {
		narration = in.Description
	}
	duration := in.Duration
	if duration == 0 {
		duration = 5.0
	}
	if duration < model.MinSceneDuration || duration > model.MaxSceneDuration {
		return nil, NewValidationError("scene duration %.1f out of bounds [%.0f, %.0f]",
			duration, model.MinSceneDuration, model.MaxSceneDuration)
	}
	if in.MediaTrimStart != nil && in.MediaTrimEnd != nil && *in.MediaTrimEnd <= *in.MediaTrimStart {
		return nil, NewValidationError("media trim end must be after trim start")
	}

	return &model.Scene{
		ID:             db.NewUUID(),
		ProjectID:      projectID,
		SceneNumber:    number,
		Description:    in.Description,
		Narration:      narration,
		CaptionText:    in.CaptionText,
		TimingPlan:     in.TimingPlan,
		ImagePrompt:    in.ImagePrompt,
		BRollPrompt:    in.BRollPrompt,
		Duration:       duration,
		MediaType:      in.MediaType,
		MediaURI:       in.MediaURI,
		MediaTrimStart: in.MediaTrimStart,
		MediaTrimEnd:   in.MediaTrimEnd,
		MediaAnimation: in.MediaAnimation,
	}, nil
}

// sceneFromDraft converts an AI draft into a persistable scene.
func sceneFromDraft(projectID db.UUID, d port.DraftScene) model.Scene {
	s := model.Scene{
		ID:          db.NewUUID(),
		ProjectID:   projectID,
		SceneNumber: d.SceneNumber,
		Description: d.Description,
		Narration:   d.Narration,
		Duration:    d.Duration,
	}
	if d.CaptionText != "" {
		s.CaptionText = &d.CaptionText
	}
	if d.ImagePrompt != "" {
		s.ImagePrompt = &d.ImagePrompt
	}
	if d.BRollPrompt != "" {
		s.BRollPrompt = &d.BRollPrompt
	}
	return s
}

// recordUsage is fire-and-forget: a lost audit row is never worth failing
// the user's request.
func recordUsage(ctx context.Context, recorder port.UsageRecorder, userID db.UUID, action string, usage port.TokenUsage, meta model.UsageMetadata) {
	if recorder == nil {
		return
	}
	entry := &model.AIUsage{
		ID:               db.NewUUID(),
		UserID:           userID,
		Action:           action,
		Model:            usage.Model,
		PromptTokens:     usage.PromptTokens,
		CompletionTokens: usage.CompletionTokens,
		TotalTokens:      usage.TotalTokens,
		Metadata:         meta,
	}
	if err := recorder.Record(ctx, entry); err != nil {
		log.Printf("failed recording AI usage for user #%s, action %q: %v", userID, action, err)
	}
}

// invalidateProjectCache drops the cached details and etag; failures are
// logged, the database remains the source of truth.
func invalidateProjectCache(ctx context.Context, cache port.Cache, id db.UUID) {
	if cache == nil {
		return
	}
	if err := cache.DeleteProjectDetails(ctx, id); err != nil {
		log.Printf("failed deleting cache for project #%s: %v", id, err)
	}
	if err := cache.DeleteEtagProjectDetails(ctx, id); err != nil {
		log.Printf("failed deleting etag cache for project #%s: %v", id, err)
	}
}

// deriveTopic picks the project topic when the caller gave none: the start
// of the script, then the first scene description.
func deriveTopic(topic, script string, scenes []port.SceneInput) string {
	if strings.TrimSpace(topic) != "" {
		return strings.TrimSpace(topic)
	}
	if s := strings.TrimSpace(script); s != "" {
		return truncateRunes(s, 120)
	}
	if len(scenes) > 0 {
		return truncateRunes(strings.TrimSpace(scenes[0].Description), 120)
	}
	return ""
}

func truncateRunes(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
