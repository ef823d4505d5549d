package api

import (
	"encoding/json"
	"log"
	"net/http"

	guuid "github.com/google/uuid"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type ReorderScenesRequest struct {
	SceneIDs []string `json:"scene_ids"`
}

func ReorderScenesHandler(svc port.SceneReorderer) http.HandlerFunc {
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

		var req ReorderScenesRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		orderedIDs := make([]db.UUID, 0, len(req.SceneIDs))
		for _, raw := range req.SceneIDs {
			parsed, err := guuid.Parse(raw)
			if err != nil {
				WriteError(w, http.StatusBadRequest, "scene ID "+raw+" is not a valid UUID", nil)
				return
			}
			orderedIDs = append(orderedIDs, db.UUID(parsed))
		}

		scenes, err := svc.ReorderScenes(r.Context(), ownerID, projectID, orderedIDs)
		if err != nil {
			WriteUsecaseError(w, "could not reorder scenes", err)
			return
		}

		RespondJSON(w, http.StatusOK, scenes)
		log.Printf("✅  Successfully reordered %d scenes of project #%s", len(scenes), projectID)
	}
}
