package port

import "github.com/reelforge/reels-ms-go/internal/db"

// ProjectLocker serialises scene-structural mutations per project so the
// contiguous scene_number invariant holds under concurrent requests.
type ProjectLocker interface {
	Lock(projectID db.UUID)
	Unlock(projectID db.UUID)
}
