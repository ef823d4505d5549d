package model

import (
	"time"

	"github.com/reelforge/reels-ms-go/internal/db"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

// Scene duration bounds in seconds for manual input; AI generated scenes are
// clamped tighter by the gateway.
const (
	MinSceneDuration = 1.0
	MaxSceneDuration = 6.0
)

// Scene is one ordered unit of a video project. SceneNumber values within a
// project are a contiguous permutation of 1..N at rest; every structural
// mutation restores that invariant before returning.
type Scene struct {
	ID          db.UUID `json:"id"`
	ProjectID   db.UUID `json:"project_id"`
	SceneNumber int     `json:"scene_number"`
	Description string  `json:"description"`
	Narration   string  `json:"narration"`
	CaptionText *string `json:"caption_text,omitempty"`
	TimingPlan  *string `json:"timing_plan,omitempty"`
	ImagePrompt *string `json:"image_prompt,omitempty"`
	BRollPrompt *string `json:"b_roll_prompt,omitempty"`
	Duration    float64 `json:"duration"`

	MediaType      *string  `json:"media_type,omitempty"`
	MediaURI       *string  `json:"media_uri,omitempty"`
	MediaTrimStart *float64 `json:"media_trim_start,omitempty"`
	MediaTrimEnd   *float64 `json:"media_trim_end,omitempty"`
	MediaAnimation *string  `json:"media_animation,omitempty"`

	// AudioURI holds synthesized narration as a self-contained data URI.
	AudioURI *string `json:"audio_uri,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
