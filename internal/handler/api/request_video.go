package api

import (
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
)

func RequestVideoHandler(svc port.VideoRequester) http.HandlerFunc {
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

		out, err := svc.RequestVideo(r.Context(), ownerID, projectID)
		if err != nil {
			WriteUsecaseError(w, "could not start video generation", err)
			return
		}

		RespondJSON(w, http.StatusAccepted, out)
		log.Printf("✅  Video generation requested for project #%s", projectID)
	}
}
