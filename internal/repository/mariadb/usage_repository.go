package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

type UsageRepository struct {
	db *sql.DB
}

// compile-time check: *UsageRepository must satisfy port.UsageRecorder
var _ port.UsageRecorder = (*UsageRepository)(nil)

func NewUsageRepository(db *sql.DB) *UsageRepository {
	return &UsageRepository{db: db}
}

// Record appends one audit entry. Rows are never updated or deleted.
func (r *UsageRepository) Record(ctx context.Context, u *model.AIUsage) error {
	log.Printf("recording AI usage for user #%s, action %q (%d tokens)...", u.UserID, u.Action, u.TotalTokens)

	const query = `
      INSERT INTO ai_usage
        (id, user_id, action, model, prompt_tokens, completion_tokens, total_tokens, metadata)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		u.ID, u.UserID, u.Action, u.Model,
		u.PromptTokens, u.CompletionTokens, u.TotalTokens, u.Metadata,
	)
	return err
}
