package project

import (
	"time"

	"github.com/reelforge/reels-ms-go/internal/db"
)

// Per-user sliding-window quotas. Keys combine action and user so one user's
// burst never affects another.
const (
	ActionGenerateScenes      = "generate_scenes"
	ActionRegenerateScene     = "regenerate_scene"
	ActionRefineScript        = "refine_script"
	ActionSynthesizeNarration = "synthesize_narration"

	GenerateScenesLimit      = 10
	RegenerateSceneLimit     = 20
	SynthesizeNarrationLimit = 30

	RateWindow = time.Hour
)

func rateKey(action string, userID db.UUID) string {
	return action + ":" + userID.String()
}
