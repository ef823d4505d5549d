package api

import (
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
)

func PreviewStatusHandler(svc port.PreviewStatusGetter) http.HandlerFunc {
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

		out, err := svc.PreviewStatus(r.Context(), ownerID, projectID)
		if err != nil {
			WriteUsecaseError(w, "could not get preview status", err)
			return
		}

		// status changes fast while rendering, never cache it
		w.Header().Set("Cache-Control", "no-store, max-age=0, must-revalidate")
		RespondJSON(w, http.StatusOK, out)
	}
}
