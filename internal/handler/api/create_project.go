package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/validation"
)

type CreateProjectRequest struct {
	Title          string            `json:"title" validate:"required,max=200"`
	Topic          string            `json:"topic,omitempty" validate:"max=500"`
	Script         string            `json:"script,omitempty" validate:"max=20000"`
	Style          string            `json:"style,omitempty" validate:"max=50"`
	GenerateScenes bool              `json:"generate_scenes,omitempty"`
	SceneCount     int               `json:"scene_count,omitempty" validate:"gte=0,lte=20"`
	Scenes         []port.SceneInput `json:"scenes,omitempty" validate:"dive"`
}

func CreateProjectHandler(svc port.ProjectCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ownerID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		var req CreateProjectRequest
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

		out, err := svc.CreateProject(r.Context(), port.CreateProjectInput{
			OwnerID:        ownerID,
			Title:          req.Title,
			Topic:          req.Topic,
			Script:         req.Script,
			Style:          req.Style,
			GenerateScenes: req.GenerateScenes,
			SceneCount:     req.SceneCount,
			Scenes:         req.Scenes,
		})
		if err != nil {
			WriteUsecaseError(w, "could not create project", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		log.Printf("✅  Successfully created project #%s", out.Project.ID)
	}
}
