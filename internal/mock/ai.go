package mock

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/port"
)

// TextGenerator implements port.TextGenerator for tests.
type TextGenerator struct {
	Out    port.CompletionResult
	Err    error
	Called bool
	LastIn port.CompletionRequest
}

func (g *TextGenerator) Complete(ctx context.Context, req port.CompletionRequest) (port.CompletionResult, error) {
	g.Called = true
	g.LastIn = req
	return g.Out, g.Err
}

// SceneGenerator implements port.SceneGenerator for tests.
type SceneGenerator struct {
	GenerateOut    port.GenerateScenesOutput
	GenerateErr    error
	GenerateCalled bool
	GenerateIn     port.GenerateScenesInput

	RegenerateOut    port.RegenerateSceneOutput
	RegenerateErr    error
	RegenerateCalled bool
	RegenerateIn     port.RegenerateSceneInput

	RefineOut    port.RefineScriptOutput
	RefineErr    error
	RefineCalled bool
}

func (g *SceneGenerator) GenerateScenes(ctx context.Context, in port.GenerateScenesInput) (port.GenerateScenesOutput, error) {
	g.GenerateCalled = true
	g.GenerateIn = in
	return g.GenerateOut, g.GenerateErr
}

func (g *SceneGenerator) RegenerateScene(ctx context.Context, in port.RegenerateSceneInput) (port.RegenerateSceneOutput, error) {
	g.RegenerateCalled = true
	g.RegenerateIn = in
	return g.RegenerateOut, g.RegenerateErr
}

func (g *SceneGenerator) RefineScript(ctx context.Context, topic, script string) (port.RefineScriptOutput, error) {
	g.RefineCalled = true
	return g.RefineOut, g.RefineErr
}

// VoiceSynthesiser implements port.VoiceSynthesiser for tests.
type VoiceSynthesiser struct {
	Audio  []byte
	Mime   string
	Err    error
	Called bool
	Text   string
}

func (v *VoiceSynthesiser) Synthesize(ctx context.Context, text, voiceID, modelID string) ([]byte, string, error) {
	v.Called = true
	v.Text = text
	if v.Err != nil {
		return nil, "", v.Err
	}
	mime := v.Mime
	if mime == "" {
		mime = "audio/mpeg"
	}
	return v.Audio, mime, nil
}

// VideoGenerator implements port.VideoGenerator for tests.
type VideoGenerator struct {
	OperationID string
	StartErr    error
	StartCalled bool

	PollOut    port.VideoOperation
	PollErr    error
	PollCalled bool
}

func (g *VideoGenerator) StartJob(ctx context.Context, in port.StartVideoJobInput) (string, error) {
	g.StartCalled = true
	return g.OperationID, g.StartErr
}

func (g *VideoGenerator) PollOperation(ctx context.Context, operationID string) (port.VideoOperation, error) {
	g.PollCalled = true
	return g.PollOut, g.PollErr
}

func (g *VideoGenerator) Provider() string { return "mockprovider" }
