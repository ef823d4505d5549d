package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/validation"
)

type GenerateScenesRequest struct {
	Topic         string `json:"topic,omitempty" validate:"max=500"`
	Script        string `json:"script,omitempty" validate:"max=20000"`
	Style         string `json:"style,omitempty" validate:"max=50"`
	SceneCount    int    `json:"scene_count,omitempty" validate:"gte=0,lte=20"`
	CreateProject bool   `json:"create_project,omitempty"`
	Title         string `json:"title,omitempty" validate:"max=200"`
}

func GenerateScenesHandler(svc port.ScenesGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		var req GenerateScenesRequest
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

		out, err := svc.GenerateScenes(r.Context(), port.GenerateScenesStandaloneInput{
			OwnerID:       ownerID,
			Topic:         req.Topic,
			Script:        req.Script,
			Style:         req.Style,
			SceneCount:    req.SceneCount,
			CreateProject: req.CreateProject,
			Title:         req.Title,
		})
		if err != nil {
			WriteUsecaseError(w, "could not generate scenes", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully generated %d scenes for user #%s", len(out.Scenes), ownerID)
	}
}
