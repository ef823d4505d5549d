package api

import (
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
)

func DeleteProjectHandler(svc port.ProjectDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		id, ok := api_context.ProjectIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "project ID is required", nil)
			return
		}

		if err := svc.DeleteProject(r.Context(), ownerID, id); err != nil {
			WriteUsecaseError(w, "could not delete project", err)
			return
		}

		w.WriteHeader(http.StatusNoContent)
		log.Printf("✅  Successfully deleted project #%s", id)
	}
}
