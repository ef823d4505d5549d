package port

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/db"
)

// HTTPRenderer mediates between HTTP handlers and the project getter use
// case. It provides caching capabilities and returns both the JSON
// representation of the result as well as an ETag value derived from it.
type HTTPRenderer interface {
	RenderGetProject(ctx context.Context, getter ProjectGetter, ownerID, id db.UUID) ([]byte, string, error)
}
