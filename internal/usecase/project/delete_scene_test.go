package project

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/mock"
	"github.com/reelforge/reels-ms-go/internal/model"
)

func TestDeleteScene_ClosesGap(t *testing.T) {
	p, ownerID := ownedProject()
	scenes := seedScenes(p.ID, 4)
	target := scenes[1] // scene number 2
	repo := &mock.ProjectRepo{Project: p}
	sceneRepo := &mock.SceneRepo{Scenes: scenes}
	ca := &mock.Cache{}
	svc := NewSceneDeleter(repo, sceneRepo, ca, &mock.Locker{})

	if err := svc.DeleteScene(context.Background(), ownerID, p.ID, target.ID); err != nil {
		t.Fatalf("DeleteScene: %v", err)
	}

	if !sceneRepo.DeleteCalled {
		t.Error("scene should be deleted")
	}
	if !sceneRepo.CloseGapCalled || sceneRepo.CloseGapAbove != 2 {
		t.Errorf("gap should close above position 2, got called=%v above=%d", sceneRepo.CloseGapCalled, sceneRepo.CloseGapAbove)
	}
	if repo.ScenesCount != 3 {
		t.Errorf("scenes_count = %d; want 3", repo.ScenesCount)
	}
	if !ca.DelCalled {
		t.Error("project cache should be invalidated")
	}
	assertContiguous(t, sceneRepo.Scenes)
}

func TestDeleteScene_LastSceneLeavesEmptyProject(t *testing.T) {
	p, ownerID := ownedProject()
	scenes := seedScenes(p.ID, 1)
	repo := &mock.ProjectRepo{Project: p}
	sceneRepo := &mock.SceneRepo{Scenes: scenes}
	svc := NewSceneDeleter(repo, sceneRepo, &mock.Cache{}, &mock.Locker{})

	if err := svc.DeleteScene(context.Background(), ownerID, p.ID, scenes[0].ID); err != nil {
		t.Fatalf("DeleteScene: %v", err)
	}
	if repo.ScenesCount != 0 {
		t.Errorf("scenes_count = %d; want 0", repo.ScenesCount)
	}
}

func TestDeleteScene_UnknownScene(t *testing.T) {
	p, ownerID := ownedProject()
	repo := &mock.ProjectRepo{Project: p}
	sceneRepo := &mock.SceneRepo{GetErr: sql.ErrNoRows}
	svc := NewSceneDeleter(repo, sceneRepo, &mock.Cache{}, &mock.Locker{})

	err := svc.DeleteScene(context.Background(), ownerID, p.ID, db.NewUUID())
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("unknown scene should be not-found, got %v", err)
	}
	if sceneRepo.DeleteCalled {
		t.Error("nothing should be deleted")
	}
}

func TestDeleteScene_SceneOfAnotherProject(t *testing.T) {
	p, ownerID := ownedProject()
	repo := &mock.ProjectRepo{Project: p}
	foreign := &model.Scene{ID: db.NewUUID(), ProjectID: db.NewUUID(), SceneNumber: 1}
	sceneRepo := &mock.SceneRepo{GetOut: foreign}
	svc := NewSceneDeleter(repo, sceneRepo, &mock.Cache{}, &mock.Locker{})

	err := svc.DeleteScene(context.Background(), ownerID, p.ID, foreign.ID)
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("scene of another project should be not-found, got %v", err)
	}
	if sceneRepo.DeleteCalled {
		t.Error("nothing should be deleted")
	}
}
