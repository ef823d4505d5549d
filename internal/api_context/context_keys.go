package api_context

import (
	"context"

	"github.com/reelforge/reels-ms-go/internal/db"
)

type ctxKey string

const (
	ProjectIDKey  ctxKey = "projectID"
	SceneIDKey    ctxKey = "sceneID"
	AuthUserIDKey ctxKey = "authUserID"
)

func ProjectIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(ProjectIDKey).(db.UUID)
	return id, ok
}

func SceneIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(SceneIDKey).(db.UUID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(db.UUID)
	return id, ok
}
