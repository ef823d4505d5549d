package port

import "context"

// VoiceSynthesiser turns narration text into audio bytes.
type VoiceSynthesiser interface {
	Synthesize(ctx context.Context, text, voiceID, modelID string) (audio []byte, mimeType string, err error)
}
