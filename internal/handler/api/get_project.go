package api

import (
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
)

func GetProjectHandler(renderer port.HTTPRenderer, svc port.ProjectGetter) http.HandlerFunc {
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

		raw, etag, err := renderer.RenderGetProject(r.Context(), svc, ownerID, id)
		if err != nil {
			WriteUsecaseError(w, "could not get project details", err)
			return
		}

		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "private, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached project #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for project #%s", id)
	}
}
