package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/reelforge/reels-ms-go/internal/mock"
	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

func scenesJSON(n int) string {
	var b strings.Builder
	b.WriteString(`{"scenes": [`)
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(",")
		}
		fmt.Fprintf(&b, `{"description": "scene %d", "narration": "line %d", "duration": 4}`, i+1, i+1)
	}
	b.WriteString("]}")
	return b.String()
}

func TestGenerateScenes_RequestsJSONMode(t *testing.T) {
	gen := &mock.TextGenerator{Out: port.CompletionResult{Text: scenesJSON(3)}}
	g := NewGateway(gen)

	out, err := g.GenerateScenes(context.Background(), port.GenerateScenesInput{Topic: "coffee", SceneCount: 3})
	if err != nil {
		t.Fatalf("GenerateScenes: %v", err)
	}
	if !gen.LastIn.JSONMode {
		t.Error("generation should request JSON mode")
	}
	if !strings.Contains(gen.LastIn.Prompt, "exactly 3 scenes") {
		t.Errorf("prompt should pin the scene count, got %q", gen.LastIn.Prompt)
	}
	if len(out.Scenes) != 3 {
		t.Errorf("got %d scenes; want 3", len(out.Scenes))
	}
}

func TestGenerateScenes_CountClamping(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "exactly 6 scenes"},
		{-4, "exactly 1 scenes"},
		{50, "exactly 20 scenes"},
	}
	for _, tc := range tests {
		gen := &mock.TextGenerator{Out: port.CompletionResult{Text: scenesJSON(1)}}
		g := NewGateway(gen)
		if _, err := g.GenerateScenes(context.Background(), port.GenerateScenesInput{Topic: "x", SceneCount: tc.in}); err != nil {
			t.Fatalf("GenerateScenes(count=%d): %v", tc.in, err)
		}
		if !strings.Contains(gen.LastIn.Prompt, tc.want) {
			t.Errorf("count %d: prompt %q should contain %q", tc.in, gen.LastIn.Prompt, tc.want)
		}
	}
}

func TestGenerateScenes_TrimsOverDelivery(t *testing.T) {
	// model returns 8 scenes even though 4 were asked for
	gen := &mock.TextGenerator{Out: port.CompletionResult{Text: scenesJSON(8)}}
	g := NewGateway(gen)

	out, err := g.GenerateScenes(context.Background(), port.GenerateScenesInput{Topic: "x", SceneCount: 4})
	if err != nil {
		t.Fatalf("GenerateScenes: %v", err)
	}
	if len(out.Scenes) != 4 {
		t.Fatalf("got %d scenes; want 4", len(out.Scenes))
	}
	for i, s := range out.Scenes {
		if s.SceneNumber != i+1 {
			t.Errorf("scene %d numbered %d; want %d", i, s.SceneNumber, i+1)
		}
	}
}

func TestGenerateScenes_GeneratorError(t *testing.T) {
	gen := &mock.TextGenerator{Err: fmt.Errorf("%w: upstream 500", project.ErrGeneration)}
	g := NewGateway(gen)

	_, err := g.GenerateScenes(context.Background(), port.GenerateScenesInput{Topic: "x"})
	if !errors.Is(err, project.ErrGeneration) {
		t.Errorf("error should wrap ErrGeneration, got %v", err)
	}
}

func TestGenerateScenes_NoUsableScenes(t *testing.T) {
	gen := &mock.TextGenerator{Out: port.CompletionResult{Text: `{"scenes": [{"duration": 5}]}`}}
	g := NewGateway(gen)

	_, err := g.GenerateScenes(context.Background(), port.GenerateScenesInput{Topic: "x"})
	if !errors.Is(err, project.ErrGeneration) {
		t.Errorf("scenes without any text should fail generation, got %v", err)
	}
}

func TestRegenerateScene_CallerOwnsSceneNumber(t *testing.T) {
	// model claims the scene is number 1; the caller said 4
	gen := &mock.TextGenerator{Out: port.CompletionResult{
		Text: `{"scene_number": 1, "description": "revised", "narration": "new line"}`,
	}}
	g := NewGateway(gen)

	out, err := g.RegenerateScene(context.Background(), port.RegenerateSceneInput{
		SceneNumber:  4,
		Topic:        "coffee",
		Instructions: "make it shorter",
	})
	if err != nil {
		t.Fatalf("RegenerateScene: %v", err)
	}
	if out.Scene.SceneNumber != 4 {
		t.Errorf("scene number = %d; want the caller's 4", out.Scene.SceneNumber)
	}
	if out.Scene.Description != "revised" {
		t.Errorf("description = %q", out.Scene.Description)
	}
	if !strings.Contains(gen.LastIn.Prompt, "make it shorter") {
		t.Error("instructions should be forwarded in the prompt")
	}
}

func TestRefineScript(t *testing.T) {
	gen := &mock.TextGenerator{Out: port.CompletionResult{Text: "  A tighter script.  "}}
	g := NewGateway(gen)

	out, err := g.RefineScript(context.Background(), "coffee", "A long rambling script.")
	if err != nil {
		t.Fatalf("RefineScript: %v", err)
	}
	if out.Script != "A tighter script." {
		t.Errorf("script = %q; want trimmed output", out.Script)
	}
	if gen.LastIn.JSONMode {
		t.Error("refinement is plain text, not JSON mode")
	}
}

func TestRefineScript_EmptyOutput(t *testing.T) {
	gen := &mock.TextGenerator{Out: port.CompletionResult{Text: "   "}}
	g := NewGateway(gen)

	_, err := g.RefineScript(context.Background(), "", "script")
	if !errors.Is(err, project.ErrGeneration) {
		t.Errorf("empty refined script should fail, got %v", err)
	}
}

func TestGuidanceFor(t *testing.T) {
	if got := guidanceFor("CINEMATIC"); got != styleGuidance["cinematic"] {
		t.Errorf("style lookup should be case-insensitive, got %q", got)
	}
	if got := guidanceFor("vaporwave"); got != defaultGuidance {
		t.Errorf("unknown style should fall back to default guidance, got %q", got)
	}
}
