package mock

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

// ProjectCreator implements port.ProjectCreator for tests.
type ProjectCreator struct {
	Out    *port.ProjectOutput
	Err    error
	Called bool
	LastIn port.CreateProjectInput
}

func (m *ProjectCreator) CreateProject(ctx context.Context, in port.CreateProjectInput) (*port.ProjectOutput, error) {
	m.Called = true
	m.LastIn = in
	return m.Out, m.Err
}

// ProjectGetter implements port.ProjectGetter for tests.
type ProjectGetter struct {
	Out    *port.GetProjectOutput
	Err    error
	Called bool
}

func (m *ProjectGetter) GetProject(ctx context.Context, ownerID, id db.UUID) (*port.GetProjectOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// ProjectDeleter implements port.ProjectDeleter for tests.
type ProjectDeleter struct {
	Err    error
	Called bool
}

func (m *ProjectDeleter) DeleteProject(ctx context.Context, ownerID, id db.UUID) error {
	m.Called = true
	return m.Err
}

// ScenesGenerator implements port.ScenesGenerator for tests.
type ScenesGenerator struct {
	Out    *port.GenerateScenesStandaloneOutput
	Err    error
	Called bool
	LastIn port.GenerateScenesStandaloneInput
}

func (m *ScenesGenerator) GenerateScenes(ctx context.Context, in port.GenerateScenesStandaloneInput) (*port.GenerateScenesStandaloneOutput, error) {
	m.Called = true
	m.LastIn = in
	return m.Out, m.Err
}

// SceneInserter implements port.SceneInserter for tests.
type SceneInserter struct {
	Out    *model.Scene
	Err    error
	Called bool
	LastIn port.InsertSceneInput
}

func (m *SceneInserter) InsertScene(ctx context.Context, in port.InsertSceneInput) (*model.Scene, error) {
	m.Called = true
	m.LastIn = in
	return m.Out, m.Err
}

// SceneUpdater implements port.SceneUpdater for tests.
type SceneUpdater struct {
	Out    *model.Scene
	Err    error
	Called bool
	LastIn port.UpdateSceneInput
}

func (m *SceneUpdater) UpdateScene(ctx context.Context, in port.UpdateSceneInput) (*model.Scene, error) {
	m.Called = true
	m.LastIn = in
	return m.Out, m.Err
}

// SceneDeleter implements port.SceneDeleter for tests.
type SceneDeleter struct {
	Err    error
	Called bool
}

func (m *SceneDeleter) DeleteScene(ctx context.Context, ownerID, projectID, sceneID db.UUID) error {
	m.Called = true
	return m.Err
}

// SceneReorderer implements port.SceneReorderer for tests.
type SceneReorderer struct {
	Out     []model.Scene
	Err     error
	Called  bool
	LastIDs []db.UUID
}

func (m *SceneReorderer) ReorderScenes(ctx context.Context, ownerID, projectID db.UUID, orderedIDs []db.UUID) ([]model.Scene, error) {
	m.Called = true
	m.LastIDs = orderedIDs
	return m.Out, m.Err
}

// SceneRegenerator implements port.SceneRegenerator for tests.
type SceneRegenerator struct {
	Out    *model.Scene
	Err    error
	Called bool
}

func (m *SceneRegenerator) RegenerateScene(ctx context.Context, in port.RegenerateSceneRequest) (*model.Scene, error) {
	m.Called = true
	return m.Out, m.Err
}

// NarrationSynthesiser implements port.NarrationSynthesiser for tests.
type NarrationSynthesiser struct {
	Out    *model.Scene
	Err    error
	Called bool
}

func (m *NarrationSynthesiser) SynthesizeNarration(ctx context.Context, ownerID, projectID, sceneID db.UUID) (*model.Scene, error) {
	m.Called = true
	return m.Out, m.Err
}

// PreviewRequester implements port.PreviewRequester for tests.
type PreviewRequester struct {
	Err    error
	Called bool
}

func (m *PreviewRequester) RequestPreview(ctx context.Context, ownerID, projectID db.UUID) error {
	m.Called = true
	return m.Err
}

// PreviewStatusGetter implements port.PreviewStatusGetter for tests.
type PreviewStatusGetter struct {
	Out    *port.PreviewStatusOutput
	Err    error
	Called bool
}

func (m *PreviewStatusGetter) PreviewStatus(ctx context.Context, ownerID, projectID db.UUID) (*port.PreviewStatusOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// VideoRequester implements port.VideoRequester for tests.
type VideoRequester struct {
	Out    *port.VideoStatusOutput
	Err    error
	Called bool
}

func (m *VideoRequester) RequestVideo(ctx context.Context, ownerID, projectID db.UUID) (*port.VideoStatusOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// VideoStatusGetter implements port.VideoStatusGetter for tests.
type VideoStatusGetter struct {
	Out    *port.VideoStatusOutput
	Err    error
	Called bool
}

func (m *VideoStatusGetter) VideoStatus(ctx context.Context, ownerID, projectID db.UUID) (*port.VideoStatusOutput, error) {
	m.Called = true
	return m.Out, m.Err
}

// PreviewRenderer implements port.PreviewRenderer for tests.
type PreviewRenderer struct {
	Err    error
	Called bool
	LastID db.UUID
}

func (m *PreviewRenderer) RenderPreview(ctx context.Context, projectID db.UUID) error {
	m.Called = true
	m.LastID = projectID
	return m.Err
}

// HTTPRenderer implements port.HTTPRenderer for tests.
type HTTPRenderer struct {
	Raw    []byte
	Etag   string
	Err    error
	Called bool
}

func (m *HTTPRenderer) RenderGetProject(ctx context.Context, getter port.ProjectGetter, ownerID, id db.UUID) ([]byte, string, error) {
	m.Called = true
	return m.Raw, m.Etag, m.Err
}
