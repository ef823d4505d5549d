package model

import (
	"time"

	"github.com/reelforge/reels-ms-go/internal/db"
)

const (
	ProjectStatusDraft      = "draft"
	ProjectStatusInProgress = "in-progress"
	ProjectStatusCompleted  = "completed"
)

// Preview state machine: pending is the implicit initial state, processing is
// entered when a render job picks the project up, and completed/failed are
// terminal per invocation. A new render request may restart the machine.
const (
	PreviewStatusPending    = "pending"
	PreviewStatusProcessing = "processing"
	PreviewStatusCompleted  = "completed"
	PreviewStatusFailed     = "failed"
)

type Project struct {
	ID            db.UUID `json:"id"`
	OwnerID       db.UUID `json:"owner_id"`
	Title         string  `json:"title"`
	Topic         string  `json:"topic"`
	Script        *string `json:"script,omitempty"`
	RefinedScript *string `json:"refined_script,omitempty"`
	Style         string  `json:"style"`
	Status        string  `json:"status"`

	// External video provider fields. A non-nil VideoURI means the provider
	// job completed; a non-nil VideoOperationID means one is outstanding.
	VideoURI         *string `json:"video_uri,omitempty"`
	VideoProvider    *string `json:"video_provider,omitempty"`
	VideoOperationID *string `json:"video_operation_id,omitempty"`

	PreviewURI      *string `json:"preview_uri,omitempty"`
	PreviewStatus   string  `json:"preview_status"`
	PreviewProgress int     `json:"preview_progress"`
	PreviewMessage  *string `json:"preview_message,omitempty"`

	ScenesCount int       `json:"scenes_count"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
