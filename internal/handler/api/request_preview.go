package api

import (
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
)

func RequestPreviewHandler(svc port.PreviewRequester) http.HandlerFunc {
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

		if err := svc.RequestPreview(r.Context(), ownerID, projectID); err != nil {
			WriteUsecaseError(w, "could not request preview", err)
			return
		}

		w.WriteHeader(http.StatusAccepted)
		log.Printf("✅  Preview render accepted for project #%s", projectID)
	}
}
