package lock

import (
	"sync"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
)

// KeyedMutex hands out one mutex per project id so structural scene mutations
// of different projects never contend with each other. Entries are reference
// counted and dropped once the last holder unlocks, keeping the map from
// growing with every project ever touched.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[db.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

// compile-time check: *KeyedMutex must satisfy port.ProjectLocker
var _ port.ProjectLocker = (*KeyedMutex)(nil)

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[db.UUID]*entry)}
}

func (k *KeyedMutex) Lock(projectID db.UUID) {
	k.mu.Lock()
	e, ok := k.locks[projectID]
	if !ok {
		e = &entry{}
		k.locks[projectID] = e
	}
	e.refs++
	k.mu.Unlock()

	e.mu.Lock()
}

func (k *KeyedMutex) Unlock(projectID db.UUID) {
	k.mu.Lock()
	e, ok := k.locks[projectID]
	if !ok {
		k.mu.Unlock()
		panic("lock: unlock of unheld project lock")
	}
	e.refs--
	if e.refs == 0 {
		delete(k.locks, projectID)
	}
	k.mu.Unlock()

	e.mu.Unlock()
}
