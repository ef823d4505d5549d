package port

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/model"
)

// UsageRecorder appends AI usage audit entries. Callers treat it as
// fire-and-forget: a failed write is logged, never surfaced.
type UsageRecorder interface {
	Record(ctx context.Context, usage *model.AIUsage) error
}
