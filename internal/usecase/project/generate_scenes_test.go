package project

import (
	"context"
	"errors"
	"testing"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/mock"
	"github.com/reelforge/reels-ms-go/internal/port"
)

func TestGenerateScenesStandalone(t *testing.T) {
	repo := &mock.ProjectRepo{}
	gen := &mock.SceneGenerator{GenerateOut: port.GenerateScenesOutput{Scenes: []port.DraftScene{
		{SceneNumber: 1, Description: "a", Duration: 5},
		{SceneNumber: 2, Description: "b", Duration: 5},
	}}}
	usage := &mock.UsageRecorder{}
	svc := NewScenesGenerator(repo, &mock.SceneRepo{}, gen, &mock.RateLimiter{}, usage)

	out, err := svc.GenerateScenes(context.Background(), port.GenerateScenesStandaloneInput{
		OwnerID: db.NewUUID(),
		Topic:   "coffee",
	})
	if err != nil {
		t.Fatalf("GenerateScenes: %v", err)
	}

	if len(out.Scenes) != 2 {
		t.Errorf("got %d scenes; want 2", len(out.Scenes))
	}
	if out.ProjectID != nil {
		t.Error("no project should be created unless asked")
	}
	if repo.CreateCalled {
		t.Error("project repo should be untouched")
	}
	if len(usage.Entries) != 1 || usage.Entries[0].Action != ActionGenerateScenes {
		t.Errorf("usage entries = %+v", usage.Entries)
	}
}

func TestGenerateScenesStandalone_CreatesProject(t *testing.T) {
	repo := &mock.ProjectRepo{}
	sceneRepo := &mock.SceneRepo{}
	gen := &mock.SceneGenerator{GenerateOut: port.GenerateScenesOutput{Scenes: []port.DraftScene{
		{SceneNumber: 1, Description: "a", Duration: 5},
	}}}
	svc := NewScenesGenerator(repo, sceneRepo, gen, &mock.RateLimiter{}, &mock.UsageRecorder{})

	out, err := svc.GenerateScenes(context.Background(), port.GenerateScenesStandaloneInput{
		OwnerID:       db.NewUUID(),
		Topic:         "coffee",
		CreateProject: true,
	})
	if err != nil {
		t.Fatalf("GenerateScenes: %v", err)
	}

	if out.ProjectID == nil {
		t.Fatal("a project id should be returned")
	}
	if !repo.CreateCalled || !sceneRepo.CreateBatchCalled {
		t.Error("project and scenes should be persisted")
	}
	// no explicit title: the topic doubles as one
	if repo.Project.Title != "coffee" {
		t.Errorf("title = %q; want derived from topic", repo.Project.Title)
	}
	if repo.Project.ScenesCount != 1 {
		t.Errorf("scenes_count = %d; want 1", repo.Project.ScenesCount)
	}
}

func TestGenerateScenesStandalone_RequiresTopicOrScript(t *testing.T) {
	svc := NewScenesGenerator(&mock.ProjectRepo{}, &mock.SceneRepo{}, &mock.SceneGenerator{}, &mock.RateLimiter{}, &mock.UsageRecorder{})

	_, err := svc.GenerateScenes(context.Background(), port.GenerateScenesStandaloneInput{
		OwnerID: db.NewUUID(),
	})
	if !IsValidationError(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestGenerateScenesStandalone_RateLimited(t *testing.T) {
	gen := &mock.SceneGenerator{}
	svc := NewScenesGenerator(&mock.ProjectRepo{}, &mock.SceneRepo{}, gen, &mock.RateLimiter{Err: ErrRateLimited}, &mock.UsageRecorder{})

	_, err := svc.GenerateScenes(context.Background(), port.GenerateScenesStandaloneInput{
		OwnerID: db.NewUUID(),
		Topic:   "coffee",
	})
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("rate limit should propagate, got %v", err)
	}
	if gen.GenerateCalled {
		t.Error("model must not be called when rate limited")
	}
}
