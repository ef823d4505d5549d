package port

import "context"

// TokenUsage reports consumption for one model call.
type TokenUsage struct {
	PromptTokens     int    `json:"prompt_tokens"`
	CompletionTokens int    `json:"completion_tokens"`
	TotalTokens      int    `json:"total_tokens"`
	Model            string `json:"model"`
}

// CompletionRequest describes one text-generation call.
type CompletionRequest struct {
	System      string
	Prompt      string
	JSONMode    bool
	Temperature float64
	MaxTokens   int
}

// CompletionResult is the raw model output plus usage counters.
type CompletionResult struct {
	Text  string
	Usage TokenUsage
}

// TextGenerator wraps the underlying language model.
type TextGenerator interface {
	Complete(ctx context.Context, req CompletionRequest) (CompletionResult, error)
}

// DraftScene is a normalized scene produced by the AI gateway, not yet
// persisted. SceneNumber follows model output order, never model-proposed
// numbers.
type DraftScene struct {
	SceneNumber int     `json:"scene_number"`
	Description string  `json:"description"`
	Narration   string  `json:"narration"`
	CaptionText string  `json:"caption_text,omitempty"`
	ImagePrompt string  `json:"image_prompt,omitempty"`
	BRollPrompt string  `json:"b_roll_prompt,omitempty"`
	Duration    float64 `json:"duration"`
}

type GenerateScenesInput struct {
	Topic      string
	Script     string
	Style      string
	SceneCount int
}

type GenerateScenesOutput struct {
	Scenes []DraftScene
	Usage  TokenUsage
}

type RegenerateSceneInput struct {
	Topic        string
	SceneNumber  int
	Context      string
	Instructions string
	Script       string
	Style        string
}

type RegenerateSceneOutput struct {
	Scene DraftScene
	Usage TokenUsage
}

type RefineScriptOutput struct {
	Script string
	Usage  TokenUsage
}

// SceneGenerator turns a topic or script into normalized scenes, regenerates
// a single scene with neighbour context, or refines a raw script into
// narration-ready text. Implementations never persist usage; that is the
// caller's job.
type SceneGenerator interface {
	GenerateScenes(ctx context.Context, in GenerateScenesInput) (GenerateScenesOutput, error)
	RegenerateScene(ctx context.Context, in RegenerateSceneInput) (RegenerateSceneOutput, error)
	RefineScript(ctx context.Context, topic, script string) (RefineScriptOutput, error)
}
