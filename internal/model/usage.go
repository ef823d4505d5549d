package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/reelforge/reels-ms-go/internal/db"
)

// UsageMetadata carries free-form context about an AI call (scene counts,
// character counts, provider names).
type UsageMetadata map[string]any

func (m UsageMetadata) Value() (driver.Value, error) {
	b, err := json.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("marshal UsageMetadata: %w", err)
	}
	return b, nil
}

func (m *UsageMetadata) Scan(src interface{}) error {
	if src == nil {
		*m = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("UsageMetadata.Scan: expected []byte, got %T", src)
	}
	return json.Unmarshal(data, m)
}

// AIUsage is an append-only audit entry written after each model call.
// Records are never mutated.
type AIUsage struct {
	ID               db.UUID       `json:"id"`
	UserID           db.UUID       `json:"user_id"`
	Action           string        `json:"action"`
	Model            string        `json:"model"`
	PromptTokens     int           `json:"prompt_tokens"`
	CompletionTokens int           `json:"completion_tokens"`
	TotalTokens      int           `json:"total_tokens"`
	Metadata         UsageMetadata `json:"metadata,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
}
