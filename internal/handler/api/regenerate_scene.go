package api

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type RegenerateSceneRequest struct {
	Instructions string `json:"instructions,omitempty"`
}

func RegenerateSceneHandler(svc port.SceneRegenerator) http.HandlerFunc {
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

		// body is optional, instructions default to empty
		var req RegenerateSceneRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		scene, err := svc.RegenerateScene(r.Context(), port.RegenerateSceneRequest{
			OwnerID:      ownerID,
			ProjectID:    projectID,
			SceneID:      sceneID,
			Instructions: req.Instructions,
		})
		if err != nil {
			WriteUsecaseError(w, "could not regenerate scene", err)
			return
		}

		RespondJSON(w, http.StatusOK, scene)
		log.Printf("✅  Successfully regenerated scene #%s of project #%s", sceneID, projectID)
	}
}
