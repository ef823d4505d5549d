package api

import (
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
)

func DeleteSceneHandler(svc port.SceneDeleter) http.HandlerFunc {
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

		if err := svc.DeleteScene(r.Context(), ownerID, projectID, sceneID); err != nil {
			WriteUsecaseError(w, "could not delete scene", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully deleted scene #%s from project #%s", sceneID, projectID)
	}
}
