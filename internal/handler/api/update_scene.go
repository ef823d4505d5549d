package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type UpdateSceneRequest struct {
	Description    *string  `json:"description,omitempty"`
	Narration      *string  `json:"narration,omitempty"`
	CaptionText    *string  `json:"caption_text,omitempty"`
	TimingPlan     *string  `json:"timing_plan,omitempty"`
	ImagePrompt    *string  `json:"image_prompt,omitempty"`
	BRollPrompt    *string  `json:"b_roll_prompt,omitempty"`
	Duration       *float64 `json:"duration,omitempty"`
	MediaType      *string  `json:"media_type,omitempty"`
	MediaURI       *string  `json:"media_uri,omitempty"`
	MediaTrimStart *float64 `json:"media_trim_start,omitempty"`
	MediaTrimEnd   *float64 `json:"media_trim_end,omitempty"`
	MediaAnimation *string  `json:"media_animation,omitempty"`
}

func UpdateSceneHandler(svc port.SceneUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		projectID, ok := api_context.ProjectIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "project ID is required", nil)
			return
		}
		sceneID, ok := api_context.SceneIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "scene ID is required", nil)
			return
		}

		var req UpdateSceneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		scene, err := svc.UpdateScene(r.Context(), port.UpdateSceneInput{
			OwnerID:        ownerID,
			ProjectID:      projectID,
			SceneID:        sceneID,
			Description:    req.Description,
			Narration:      req.Narration,
			CaptionText:    req.CaptionText,
			TimingPlan:     req.TimingPlan,
			ImagePrompt:    req.ImagePrompt,
			BRollPrompt:    req.BRollPrompt,
			Duration:       req.Duration,
			MediaType:      req.MediaType,
			MediaURI:       req.MediaURI,
			MediaTrimStart: req.MediaTrimStart,
			MediaTrimEnd:   req.MediaTrimEnd,
			MediaAnimation: req.MediaAnimation,
		})
		if err != nil {
			WriteUsecaseError(w, "could not update scene", err)
			return
		}

		RespondJSON(w, http.StatusOK, scene)
		log.Printf("✅  Successfully updated scene #%s of project #%s", sceneID, projectID)
	}
}
