package ai

import (
	"context"
	"fmt"
	"strings"

	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

// Gateway turns the raw text generator into domain operations: scene
// generation, single-scene regeneration and script refinement. All model
// output goes through tolerant decoding and normalization; nothing a model
// emits reaches the rest of the system unclamped.
type Gateway struct {
	gen port.TextGenerator
}

// compile-time check: *Gateway must satisfy port.SceneGenerator
var _ port.SceneGenerator = (*Gateway)(nil)

func NewGateway(gen port.TextGenerator) *Gateway {
	return &Gateway{gen: gen}
}

const (
	minSceneCount     = 1
	maxSceneCount     = 20
	defaultSceneCount = 6
)

// styleGuidance maps a project style to prompt wording. Unknown styles fall
// back to the neutral entry rather than failing the request.
var styleGuidance = map[string]string{
	"cinematic":   "Use dramatic, film-like visual descriptions with strong lighting cues.",
	"documentary": "Use factual, observational descriptions in a neutral register.",
	"energetic":   "Use fast-paced, punchy language with dynamic action in every scene.",
	"minimalist":  "Use sparse, clean descriptions focused on a single subject per scene.",
	"playful":     "Use light, humorous language with bright, friendly imagery.",
}

const defaultGuidance = "Use clear, engaging descriptions suited to short-form vertical video."

func guidanceFor(style string) string {
	if g, ok := styleGuidance[strings.ToLower(strings.TrimSpace(style))]; ok {
		return g
	}
	return defaultGuidance
}

const generateSystemPrompt = `You are a short-form video script writer. You output only valid JSON, no markdown, no commentary. Respond with an object of the form {"scenes": [{"scene_number": 1, "description": "...", "narration": "...", "caption_text": "...", "image_prompt": "...", "b_roll_prompt": "...", "duration": 5}]}. Durations are seconds between 1 and 5.`

func (g *Gateway) GenerateScenes(ctx context.Context, in port.GenerateScenesInput) (port.GenerateScenesOutput, error) {
	count := in.SceneCount
	if count == 0 {
		count = defaultSceneCount
	}
	if count < minSceneCount {
		count = minSceneCount
	}
	if count > maxSceneCount {
		count = maxSceneCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Write exactly %d scenes for a short vertical video.\n", count)
	if in.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", in.Topic)
	}
	if in.Script != "" {
		fmt.Fprintf(&b, "Base the scenes on this script, splitting it across scenes in order:\n%s\n", in.Script)
	}
	fmt.Fprintf(&b, "Style: %s\n", guidanceFor(in.Style))
	b.WriteString("Every scene needs a visual description, spoken narration, an on-screen caption, an image generation prompt and a b-roll search prompt.")

	res, err := g.gen.Complete(ctx, port.CompletionRequest{
		System:      generateSystemPrompt,
		Prompt:      b.String(),
		JSONMode:    true,
		Temperature: 0.8,
		MaxTokens:   4096,
	})
	if err != nil {
		return port.GenerateScenesOutput{}, err
	}

	raws, err := decodeScenes(res.Text)
	if err != nil {
		return port.GenerateScenesOutput{}, err
	}
	// the model may over-deliver; keep the first count scenes, then normalize
	// so numbering stays contiguous
	if len(raws) > count {
		raws = raws[:count]
	}
	drafts := normalizeScenes(raws)
	if len(drafts) == 0 {
		return port.GenerateScenesOutput{}, fmt.Errorf("%w: model produced no usable scenes", project.ErrGeneration)
	}

	return port.GenerateScenesOutput{Scenes: drafts, Usage: res.Usage}, nil
}

const regenerateSystemPrompt = `You are a short-form video script writer revising one scene of an existing video. You output only valid JSON, no markdown, no commentary. Respond with a single object of the form {"description": "...", "narration": "...", "caption_text": "...", "image_prompt": "...", "b_roll_prompt": "...", "duration": 5}. Durations are seconds between 1 and 5.`

func (g *Gateway) RegenerateScene(ctx context.Context, in port.RegenerateSceneInput) (port.RegenerateSceneOutput, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "Rewrite scene %d of a short vertical video.\n", in.SceneNumber)
	if in.Topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", in.Topic)
	}
	if in.Context != "" {
		fmt.Fprintf(&b, "Surrounding scenes for continuity:\n%s\n", in.Context)
	}
	if in.Script != "" {
		fmt.Fprintf(&b, "Overall script:\n%s\n", in.Script)
	}
	if in.Instructions != "" {
		fmt.Fprintf(&b, "Revision instructions: %s\n", in.Instructions)
	}
	fmt.Fprintf(&b, "Style: %s", guidanceFor(in.Style))

	res, err := g.gen.Complete(ctx, port.CompletionRequest{
		System:      regenerateSystemPrompt,
		Prompt:      b.String(),
		JSONMode:    true,
		Temperature: 0.8,
		MaxTokens:   1024,
	})
	if err != nil {
		return port.RegenerateSceneOutput{}, err
	}

	raws, err := decodeScenes(res.Text)
	if err != nil {
		return port.RegenerateSceneOutput{}, err
	}
	drafts := normalizeScenes(raws[:1])
	if len(drafts) == 0 {
		return port.RegenerateSceneOutput{}, fmt.Errorf("%w: model produced no usable scene", project.ErrGeneration)
	}

	scene := drafts[0]
	// the caller decides the position, never the model
	scene.SceneNumber = in.SceneNumber
	return port.RegenerateSceneOutput{Scene: scene, Usage: res.Usage}, nil
}

const refineSystemPrompt = `You are a script editor for short-form vertical video. Rewrite the given script into tight, spoken-word narration that reads naturally aloud. Keep the original meaning and order. Output only the refined script text, nothing else.`

func (g *Gateway) RefineScript(ctx context.Context, topic, script string) (port.RefineScriptOutput, error) {
	var b strings.Builder
	if topic != "" {
		fmt.Fprintf(&b, "Topic: %s\n", topic)
	}
	fmt.Fprintf(&b, "Script to refine:\n%s", script)

	res, err := g.gen.Complete(ctx, port.CompletionRequest{
		System:      refineSystemPrompt,
		Prompt:      b.String(),
		Temperature: 0.6,
		MaxTokens:   2048,
	})
	if err != nil {
		return port.RefineScriptOutput{}, err
	}

	refined := strings.TrimSpace(res.Text)
	if refined == "" {
		return port.RefineScriptOutput{}, fmt.Errorf("%w: model returned an empty refined script", project.ErrGeneration)
	}
	return port.RefineScriptOutput{Script: refined, Usage: res.Usage}, nil
}
