package ai

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

// rawScene mirrors DraftScene but tolerates the field aliases models actually
// emit. Numbers are decoded as json.Number so "5" and 5 both work.
type rawScene struct {
	SceneNumber json.Number `json:"scene_number"`
	Number      json.Number `json:"number"`
	Description string      `json:"description"`
	Text        string      `json:"text"`
	Narration   string      `json:"narration"`
	VoiceOver   string      `json:"voice_over"`
	CaptionText string      `json:"caption_text"`
	Caption     string      `json:"caption"`
	ImagePrompt string      `json:"image_prompt"`
	BRollPrompt string      `json:"b_roll_prompt"`
	Duration    json.Number `json:"duration"`
}

// cleanJSON strips markdown code fences and surrounding chatter so the body
// can be decoded. Models wrap JSON in ```json fences often enough that this
// is the common path, not the exception.
func cleanJSON(s string) string {
	s = strings.TrimSpace(s)

	if i := strings.Index(s, "```"); i >= 0 {
		s = s[i+3:]
		s = strings.TrimPrefix(s, "json")
		s = strings.TrimPrefix(s, "JSON")
		if j := strings.Index(s, "```"); j >= 0 {
			s = s[:j]
		}
	}
	s = strings.TrimSpace(s)

	// cut leading prose before the first brace or bracket
	start := strings.IndexAny(s, "[{")
	if start > 0 {
		s = s[start:]
	}
	// and trailing prose after the matching end
	if end := strings.LastIndexAny(s, "]}"); end >= 0 && end < len(s)-1 {
		s = s[:end+1]
	}
	return strings.TrimSpace(s)
}

// decodeScenes extracts a scene list from model output, accepting the shapes
// models produce in practice, tried in order:
//  1. {"scenes": [...]}
//  2. bare array [...]
//  3. {"scene": {...}} (single wrapped object)
//  4. bare single object {...}
func decodeScenes(text string) ([]rawScene, error) {
	body := cleanJSON(text)
	if body == "" {
		return nil, fmt.Errorf("%w: empty model output", project.ErrGeneration)
	}

	var wrapped struct {
		Scenes []rawScene `json:"scenes"`
	}
	if err := json.Unmarshal([]byte(body), &wrapped); err == nil && len(wrapped.Scenes) > 0 {
		return wrapped.Scenes, nil
	}

	var list []rawScene
	if err := json.Unmarshal([]byte(body), &list); err == nil && len(list) > 0 {
		return list, nil
	}

	var single struct {
		Scene *rawScene `json:"scene"`
	}
	if err := json.Unmarshal([]byte(body), &single); err == nil && single.Scene != nil && sceneHasContent(*single.Scene) {
		return []rawScene{*single.Scene}, nil
	}

	var one rawScene
	if err := json.Unmarshal([]byte(body), &one); err == nil && sceneHasContent(one) {
		return []rawScene{one}, nil
	}

	return nil, fmt.Errorf("%w: could not decode scenes from model output", project.ErrGeneration)
}

func sceneHasContent(s rawScene) bool {
	return s.Description != "" || s.Text != "" || s.Narration != "" || s.VoiceOver != ""
}

const (
	maxDescriptionLen = 2000
	maxPromptLen      = 1000

	defaultAISceneDuration = 5.0
	minAISceneDuration     = 1.0
	maxAISceneDuration     = 5.0
)

// normalizeScenes converts decoded scenes into drafts with every field made
// safe: aliases resolved, durations clamped, long text truncated, and scene
// numbers reassigned 1..N from output order regardless of what the model
// claimed.
func normalizeScenes(raws []rawScene) []port.DraftScene {
	drafts := make([]port.DraftScene, 0, len(raws))
	for _, r := range raws {
		d := port.DraftScene{
			Description: firstNonEmpty(r.Description, r.Text),
			Narration:   firstNonEmpty(r.Narration, r.VoiceOver),
			CaptionText: firstNonEmpty(r.CaptionText, r.Caption),
			ImagePrompt: r.ImagePrompt,
			BRollPrompt: r.BRollPrompt,
			Duration:    clampDuration(r.Duration),
		}
		if d.Description == "" {
			d.Description = d.Narration
		}
		if d.Description == "" {
			continue // nothing usable in this entry
		}
		if d.Narration == "" {
			d.Narration = d.Description
		}
		d.Description = truncate(d.Description, maxDescriptionLen)
		d.Narration = truncate(d.Narration, maxDescriptionLen)
		d.CaptionText = truncate(d.CaptionText, maxPromptLen)
		d.ImagePrompt = truncate(d.ImagePrompt, maxPromptLen)
		d.BRollPrompt = truncate(d.BRollPrompt, maxPromptLen)
		drafts = append(drafts, d)
	}
	for i := range drafts {
		drafts[i].SceneNumber = i + 1
	}
	return drafts
}

// clampDuration defaults only when the model gave no usable number; every
// finite value is clamped into range, negatives included.
func clampDuration(n json.Number) float64 {
	f, err := n.Float64()
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return defaultAISceneDuration
	}
	if f < minAISceneDuration {
		return minAISceneDuration
	}
	if f > maxAISceneDuration {
		return maxAISceneDuration
	}
	return f
}

// truncate counts runes, not bytes, so a cut never splits a character.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
	}
	return ""
}
