package port

import (
	"context"
	"time"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
)

// SceneStats are read aggregates over a project's scenes.
type SceneStats struct {
	ScenesCount          int     `json:"scenes_count"`
	TotalDuration        float64 `json:"total_duration"`
	AverageSceneDuration float64 `json:"average_scene_duration"`
}

// SceneInput is a caller-provided scene at project creation or insertion.
type SceneInput struct {
	Description    string   `json:"description" validate:"required,max=2000"`
	Narration      string   `json:"narration,omitempty" validate:"max=2000"`
	CaptionText    *string  `json:"caption_text,omitempty"`
	TimingPlan     *string  `json:"timing_plan,omitempty"`
	ImagePrompt    *string  `json:"image_prompt,omitempty"`
	BRollPrompt    *string  `json:"b_roll_prompt,omitempty"`
	Duration       float64  `json:"duration,omitempty"`
	MediaType      *string  `json:"media_type,omitempty" validate:"omitempty,oneof=image video"`
	MediaURI       *string  `json:"media_uri,omitempty"`
	MediaTrimStart *float64 `json:"media_trim_start,omitempty"`
	MediaTrimEnd   *float64 `json:"media_trim_end,omitempty"`
	MediaAnimation *string  `json:"media_animation,omitempty"`
}

// ProjectCreator orchestrates project creation, optionally generating scenes.
type ProjectCreator interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (*ProjectOutput, error)
}
type CreateProjectInput struct {
	OwnerID        db.UUID
	Title          string
	Topic          string
	Script         string
	Style          string
	GenerateScenes bool
	SceneCount     int
	Scenes         []SceneInput
}
type ProjectOutput struct {
	Project *model.Project `json:"project"`
	Scenes  []model.Scene  `json:"scenes"`
	Stats   SceneStats     `json:"stats"`
}

// ProjectGetter retrieves a project with its scenes and aggregates.
type ProjectGetter interface {
	GetProject(ctx context.Context, ownerID, id db.UUID) (*GetProjectOutput, error)
}
type GetProjectOutput struct {
	ValidUntil time.Time `json:"valid_until"`
	ProjectOutput
}

// ProjectDeleter deletes a project, its scenes and its stored preview.
type ProjectDeleter interface {
	DeleteProject(ctx context.Context, ownerID, id db.UUID) error
}

// ScenesGenerator runs standalone scene generation, optionally creating a
// project to hold the result.
type ScenesGenerator interface {
	GenerateScenes(ctx context.Context, in GenerateScenesStandaloneInput) (*GenerateScenesStandaloneOutput, error)
}
type GenerateScenesStandaloneInput struct {
	OwnerID       db.UUID
	Topic         string
	Script        string
	Style         string
	SceneCount    int
	CreateProject bool
	Title         string
}
type GenerateScenesStandaloneOutput struct {
	ProjectID *db.UUID     `json:"project_id,omitempty"`
	Scenes    []DraftScene `json:"scenes"`
}

// SceneInserter inserts one scene at an optional position, renumbering
// followers.
type SceneInserter interface {
	InsertScene(ctx context.Context, in InsertSceneInput) (*model.Scene, error)
}
type InsertSceneInput struct {
	OwnerID   db.UUID
	ProjectID db.UUID
	Position  int // 0 means append
	Scene     SceneInput
}

// SceneUpdater patches scene fields.
type SceneUpdater interface {
	UpdateScene(ctx context.Context, in UpdateSceneInput) (*model.Scene, error)
}
type UpdateSceneInput struct {
	OwnerID        db.UUID
	ProjectID      db.UUID
	SceneID        db.UUID
	Description    *string
	Narration      *string
	CaptionText    *string
	TimingPlan     *string
	ImagePrompt    *string
	BRollPrompt    *string
	Duration       *float64
	MediaType      *string
	MediaURI       *string
	MediaTrimStart *float64
	MediaTrimEnd   *float64
	MediaAnimation *string
}

// SceneDeleter removes one scene and closes the numbering gap.
type SceneDeleter interface {
	DeleteScene(ctx context.Context, ownerID, projectID, sceneID db.UUID) error
}

// SceneReorderer applies a full permutation of the project's scene ids.
type SceneReorderer interface {
	ReorderScenes(ctx context.Context, ownerID, projectID db.UUID, orderedIDs []db.UUID) ([]model.Scene, error)
}

// SceneRegenerator regenerates exactly one scene with neighbour context.
type SceneRegenerator interface {
	RegenerateScene(ctx context.Context, in RegenerateSceneRequest) (*model.Scene, error)
}
type RegenerateSceneRequest struct {
	OwnerID      db.UUID
	ProjectID    db.UUID
	SceneID      db.UUID
	Instructions string
}

// NarrationSynthesiser voices a scene's narration and stores it as a data URI.
type NarrationSynthesiser interface {
	SynthesizeNarration(ctx context.Context, ownerID, projectID, sceneID db.UUID) (*model.Scene, error)
}

// PreviewRequester starts an asynchronous preview render.
type PreviewRequester interface {
	RequestPreview(ctx context.Context, ownerID, projectID db.UUID) error
}

// PreviewStatusGetter reads the current render state machine snapshot.
// It never blocks and never mutates.
type PreviewStatusGetter interface {
	PreviewStatus(ctx context.Context, ownerID, projectID db.UUID) (*PreviewStatusOutput, error)
}
type PreviewStatusOutput struct {
	Status     string  `json:"status"`
	PreviewURI *string `json:"preview_uri,omitempty"`
	Progress   int     `json:"progress"`
	Message    *string `json:"message,omitempty"`
}

// VideoRequester starts (or short-circuits) external video generation.
type VideoRequester interface {
	RequestVideo(ctx context.Context, ownerID, projectID db.UUID) (*VideoStatusOutput, error)
}

// VideoStatusGetter resolves the outstanding provider operation, if any.
type VideoStatusGetter interface {
	VideoStatus(ctx context.Context, ownerID, projectID db.UUID) (*VideoStatusOutput, error)
}
type VideoStatusOutput struct {
	Status   string  `json:"status"`
	VideoURI *string `json:"video_uri,omitempty"`
	Message  *string `json:"message,omitempty"`
}

// PreviewRenderer is the asynchronous render pipeline entry point.
type PreviewRenderer interface {
	RenderPreview(ctx context.Context, projectID db.UUID) error
}
