package task

import (
	"encoding/json"
	"fmt"

	"github.com/hibiken/asynq"
)

const TypeRenderPreview = "preview:render"

type RenderPreviewPayload struct {
	ProjectID string `json:"project_id"`
}

// NewRenderPreviewTask creates an Asynq task for rendering a project preview.
func NewRenderPreviewTask(projectID string) (*asynq.Task, error) {
	p := RenderPreviewPayload{ProjectID: projectID}
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("could not marshal render-preview payload: %w", err)
	}
	return asynq.NewTask(TypeRenderPreview, data), nil
}

// ParseRenderPreviewPayload parses the task payload to RenderPreviewPayload.
func ParseRenderPreviewPayload(t *asynq.Task) (RenderPreviewPayload, error) {
	var p RenderPreviewPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return RenderPreviewPayload{}, fmt.Errorf("could not unmarshal payload: %w", err)
	}
	return p, nil
}
