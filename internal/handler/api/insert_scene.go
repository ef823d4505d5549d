package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/validation"
)

// Position zero (or omitted) appends; out-of-range values clamp downstream.
type InsertSceneRequest struct {
	Position int             `json:"position,omitempty"`
	Scene    port.SceneInput `json:"scene" validate:"required"`
}

func InsertSceneHandler(svc port.SceneInserter) http.HandlerFunc {
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

		var req InsertSceneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		scene, err := svc.InsertScene(r.Context(), port.InsertSceneInput{
			OwnerID:   ownerID,
			ProjectID: projectID,
			Position:  req.Position,
			Scene:     req.Scene,
		})
		if err != nil {
			WriteUsecaseError(w, "could not insert scene", err)
			return
		}

		RespondJSON(w, http.StatusCreated, scene)
		log.Printf("✅  Successfully inserted scene #%s into project #%s", scene.ID, projectID)
	}
}
