package project

import (
	"context"
	"testing"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/mock"
)

func TestReorderScenes_Permutation(t *testing.T) {
	p, ownerID := ownedProject()
	scenes := seedScenes(p.ID, 3)
	repo := &mock.ProjectRepo{Project: p}
	sceneRepo := &mock.SceneRepo{Scenes: scenes}
	ca := &mock.Cache{}
	svc := NewSceneReorderer(repo, sceneRepo, ca, &mock.Locker{})

	orderedIDs := []db.UUID{scenes[2].ID, scenes[0].ID, scenes[1].ID}
	reordered, err := svc.ReorderScenes(context.Background(), ownerID, p.ID, orderedIDs)
	if err != nil {
		t.Fatalf("ReorderScenes: %v", err)
	}

	if !sceneRepo.RenumberCalled {
		t.Fatal("Renumber should be called for a real permutation")
	}
	if len(reordered) != 3 {
		t.Fatalf("got %d scenes; want 3", len(reordered))
	}
	assertContiguous(t, reordered)
	for i, id := range orderedIDs {
		if reordered[i].ID != id {
			t.Errorf("reordered[%d].ID = %s; want %s", i, reordered[i].ID, id)
		}
	}
	if !ca.DelCalled {
		t.Error("project cache should be invalidated")
	}
}

func TestReorderScenes_IdentityIsNoOp(t *testing.T) {
	p, ownerID := ownedProject()
	scenes := seedScenes(p.ID, 3)
	repo := &mock.ProjectRepo{Project: p}
	sceneRepo := &mock.SceneRepo{Scenes: scenes}
	ca := &mock.Cache{}
	svc := NewSceneReorderer(repo, sceneRepo, ca, &mock.Locker{})

	out, err := svc.ReorderScenes(context.Background(), ownerID, p.ID,
		[]db.UUID{scenes[0].ID, scenes[1].ID, scenes[2].ID})
	if err != nil {
		t.Fatalf("ReorderScenes: %v", err)
	}
	if sceneRepo.RenumberCalled {
		t.Error("identity permutation must not touch the database")
	}
	if ca.DelCalled {
		t.Error("identity permutation must not invalidate the cache")
	}
	if len(out) != 3 {
		t.Errorf("got %d scenes; want the current 3", len(out))
	}
}

func TestReorderScenes_Validation(t *testing.T) {
	p, ownerID := ownedProject()
	scenes := seedScenes(p.ID, 3)

	tests := []struct {
		name string
		ids  []db.UUID
	}{
		{"too few ids", []db.UUID{scenes[0].ID, scenes[1].ID}},
		{"too many ids", []db.UUID{scenes[0].ID, scenes[1].ID, scenes[2].ID, db.NewUUID()}},
		{"foreign id", []db.UUID{scenes[0].ID, scenes[1].ID, db.NewUUID()}},
		{"duplicate id", []db.UUID{scenes[0].ID, scenes[1].ID, scenes[1].ID}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mock.ProjectRepo{Project: p}
			sceneRepo := &mock.SceneRepo{Scenes: scenes}
			svc := NewSceneReorderer(repo, sceneRepo, &mock.Cache{}, &mock.Locker{})

			_, err := svc.ReorderScenes(context.Background(), ownerID, p.ID, tc.ids)
			if !IsValidationError(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			if sceneRepo.RenumberCalled {
				t.Error("invalid permutation must not be applied")
			}
		})
	}
}
