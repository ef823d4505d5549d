package ai

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

func TestDecodeScenes_WrappedObject(t *testing.T) {
	raws, err := decodeScenes(`{"scenes": [{"description": "a city street", "narration": "We open on a street."}]}`)
	if err != nil {
		t.Fatalf("decodeScenes: %v", err)
	}
	if len(raws) != 1 {
		t.Fatalf("got %d scenes; want 1", len(raws))
	}
	if raws[0].Description != "a city street" {
		t.Errorf("description = %q", raws[0].Description)
	}
}

func TestDecodeScenes_BareArray(t *testing.T) {
	raws, err := decodeScenes(`[{"description": "one"}, {"description": "two"}]`)
	if err != nil {
		t.Fatalf("decodeScenes: %v", err)
	}
	if len(raws) != 2 {
		t.Errorf("got %d scenes; want 2", len(raws))
	}
}

func TestDecodeScenes_SingleWrappedScene(t *testing.T) {
	raws, err := decodeScenes(`{"scene": {"description": "just one"}}`)
	if err != nil {
		t.Fatalf("decodeScenes: %v", err)
	}
	if len(raws) != 1 || raws[0].Description != "just one" {
		t.Errorf("got %+v; want one scene %q", raws, "just one")
	}
}

func TestDecodeScenes_BareObject(t *testing.T) {
	raws, err := decodeScenes(`{"description": "solo scene", "duration": 3}`)
	if err != nil {
		t.Fatalf("decodeScenes: %v", err)
	}
	if len(raws) != 1 || raws[0].Description != "solo scene" {
		t.Errorf("got %+v; want one scene %q", raws, "solo scene")
	}
}

func TestDecodeScenes_MarkdownFencesAndProse(t *testing.T) {
	text := "Sure! Here are your scenes:\n```json\n{\"scenes\": [{\"description\": \"fenced\"}]}\n```\nLet me know if you want changes."
	raws, err := decodeScenes(text)
	if err != nil {
		t.Fatalf("decodeScenes: %v", err)
	}
	if len(raws) != 1 || raws[0].Description != "fenced" {
		t.Errorf("got %+v; want one scene %q", raws, "fenced")
	}
}

func TestDecodeScenes_ProseWithoutFences(t *testing.T) {
	text := `Here is the result: [{"description": "unfenced"}] Hope that helps!`
	raws, err := decodeScenes(text)
	if err != nil {
		t.Fatalf("decodeScenes: %v", err)
	}
	if len(raws) != 1 || raws[0].Description != "unfenced" {
		t.Errorf("got %+v; want one scene %q", raws, "unfenced")
	}
}

func TestDecodeScenes_Undecodable(t *testing.T) {
	for _, text := range []string{"", "I cannot produce scenes for that topic.", "{broken json"} {
		_, err := decodeScenes(text)
		if err == nil {
			t.Errorf("decodeScenes(%q) should fail", text)
			continue
		}
		if !errors.Is(err, project.ErrGeneration) {
			t.Errorf("decodeScenes(%q) error should wrap ErrGeneration, got %v", text, err)
		}
	}
}

func TestNormalizeScenes_Aliases(t *testing.T) {
	raws := []rawScene{{
		Text:      "alias description",
		VoiceOver: "alias narration",
		Caption:   "alias caption",
	}}
	drafts := normalizeScenes(raws)
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts; want 1", len(drafts))
	}
	d := drafts[0]
	if d.Description != "alias description" {
		t.Errorf("description = %q", d.Description)
	}
	if d.Narration != "alias narration" {
		t.Errorf("narration = %q", d.Narration)
	}
	if d.CaptionText != "alias caption" {
		t.Errorf("caption = %q", d.CaptionText)
	}
}

func TestNormalizeScenes_CanonicalFieldsWinOverAliases(t *testing.T) {
	raws := []rawScene{{Description: "canonical", Text: "alias"}}
	drafts := normalizeScenes(raws)
	if drafts[0].Description != "canonical" {
		t.Errorf("description = %q; want canonical field to win", drafts[0].Description)
	}
}

func TestNormalizeScenes_DurationClamping(t *testing.T) {
	tests := []struct {
		raw  string
		want float64
	}{
		{"", 5},    // missing → default
		{"abc", 5}, // unparsable → default
		{"0", 1},   // finite values clamp, never default
		{"-2", 1},
		{"0.5", 1}, // below min
		{"3.5", 3.5},
		{"12", 5}, // above max
	}
	for _, tc := range tests {
		got := clampDuration(json.Number(tc.raw))
		if got != tc.want {
			t.Errorf("clampDuration(%q) = %v; want %v", tc.raw, got, tc.want)
		}
	}
}

func TestNormalizeScenes_Truncation(t *testing.T) {
	long := strings.Repeat("x", 5000)
	raws := []rawScene{{Description: long, Narration: long, ImagePrompt: long}}
	drafts := normalizeScenes(raws)
	d := drafts[0]
	if len(d.Description) != maxDescriptionLen {
		t.Errorf("description length = %d; want %d", len(d.Description), maxDescriptionLen)
	}
	if len(d.Narration) != maxDescriptionLen {
		t.Errorf("narration length = %d; want %d", len(d.Narration), maxDescriptionLen)
	}
	if len(d.ImagePrompt) != maxPromptLen {
		t.Errorf("image prompt length = %d; want %d", len(d.ImagePrompt), maxPromptLen)
	}
}

func TestNormalizeScenes_TruncationCountsRunes(t *testing.T) {
	long := strings.Repeat("é", maxDescriptionLen+100)
	drafts := normalizeScenes([]rawScene{{Description: long}})
	d := drafts[0]
	if got := len([]rune(d.Description)); got != maxDescriptionLen {
		t.Errorf("description rune length = %d; want %d", got, maxDescriptionLen)
	}
	if !strings.HasSuffix(d.Description, "é") {
		t.Error("truncation must not split a multi-byte character")
	}
}

func TestNormalizeScenes_NarrationDefaultsToDescription(t *testing.T) {
	drafts := normalizeScenes([]rawScene{{Description: "a sunrise over the city"}})
	if len(drafts) != 1 {
		t.Fatalf("got %d drafts; want 1", len(drafts))
	}
	if drafts[0].Narration != "a sunrise over the city" {
		t.Errorf("narration = %q; want the description as fallback", drafts[0].Narration)
	}
}

func TestNormalizeScenes_RenumbersFromOne(t *testing.T) {
	raws := []rawScene{
		{SceneNumber: json.Number("7"), Description: "first"},
		{SceneNumber: json.Number("3"), Description: "second"},
		{Description: ""},                // dropped: no usable text
		{Narration: "narration only"},    // kept: narration promoted to description
	}
	drafts := normalizeScenes(raws)
	if len(drafts) != 3 {
		t.Fatalf("got %d drafts; want 3", len(drafts))
	}
	for i, d := range drafts {
		if d.SceneNumber != i+1 {
			t.Errorf("drafts[%d].SceneNumber = %d; want %d", i, d.SceneNumber, i+1)
		}
	}
	if drafts[2].Description != "narration only" {
		t.Errorf("narration should backfill description, got %q", drafts[2].Description)
	}
}
