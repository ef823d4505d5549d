package api

import (
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
)

func SynthesizeNarrationHandler(svc port.NarrationSynthesiser) http.HandlerFunc {
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

		scene, err := svc.SynthesizeNarration(r.Context(), ownerID, projectID, sceneID)
		if err != nil {
			WriteUsecaseError(w, "could not synthesize narration", err)
			return
		}

		RespondJSON(w, http.StatusOK, scene)
		log.Printf("✅  Successfully synthesized narration for scene #%s of project #%s", sceneID, projectID)
	}
}
