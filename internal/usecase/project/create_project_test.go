package project

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/mock"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
)

func TestCreateProject_WithExplicitScenes(t *testing.T) {
	repo := &mock.ProjectRepo{}
	sceneRepo := &mock.SceneRepo{}
	gen := &mock.SceneGenerator{}
	svc := NewProjectCreator(repo, sceneRepo, gen, &mock.RateLimiter{}, &mock.UsageRecorder{})

	out, err := svc.CreateProject(context.Background(), port.CreateProjectInput{
		OwnerID:        db.NewUUID(),
		Title:          "My reel",
		Topic:          "coffee",
		GenerateScenes: true, // explicit scenes must win over generation
		Scenes: []port.SceneInput{
			{Description: "opening shot", Duration: 3},
			{Description: "closing shot"},
		},
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if gen.GenerateCalled {
		t.Error("explicit scenes should skip generation entirely")
	}
	if !repo.CreateCalled || !sceneRepo.CreateBatchCalled {
		t.Error("project and scenes should be persisted")
	}
	if out.Project.Status != model.ProjectStatusDraft {
		t.Errorf("status = %q; want draft", out.Project.Status)
	}
	if out.Project.PreviewStatus != model.PreviewStatusPending {
		t.Errorf("preview status = %q; want pending", out.Project.PreviewStatus)
	}
	if out.Project.ScenesCount != 2 {
		t.Errorf("scenes_count = %d; want 2", out.Project.ScenesCount)
	}
	assertContiguous(t, out.Scenes)
	// no narration given: the description doubles as one
	if out.Scenes[0].Narration != "opening shot" {
		t.Errorf("narration = %q; want the description as fallback", out.Scenes[0].Narration)
	}
	if out.Stats.TotalDuration != 8 { // 3 + default 5
		t.Errorf("total duration = %v; want 8", out.Stats.TotalDuration)
	}
	if out.Stats.AverageSceneDuration != 4 {
		t.Errorf("average duration = %v; want 4", out.Stats.AverageSceneDuration)
	}
}

func TestCreateProject_GeneratesScenesAndRefinesScript(t *testing.T) {
	repo := &mock.ProjectRepo{}
	sceneRepo := &mock.SceneRepo{}
	gen := &mock.SceneGenerator{
		RefineOut: port.RefineScriptOutput{Script: "refined script"},
		GenerateOut: port.GenerateScenesOutput{Scenes: []port.DraftScene{
			{SceneNumber: 1, Description: "a", Narration: "n", Duration: 5},
			{SceneNumber: 2, Description: "b", Narration: "m", Duration: 4},
		}},
	}
	usage := &mock.UsageRecorder{}
	limiter := &mock.RateLimiter{}
	svc := NewProjectCreator(repo, sceneRepo, gen, limiter, usage)

	out, err := svc.CreateProject(context.Background(), port.CreateProjectInput{
		OwnerID:        db.NewUUID(),
		Title:          "My reel",
		Script:         "a long rambling script",
		GenerateScenes: true,
	})
	if err != nil {
		t.Fatalf("CreateProject: %v", err)
	}

	if !gen.RefineCalled {
		t.Error("a provided script should be refined before generation")
	}
	if !gen.GenerateCalled {
		t.Error("scenes should be generated")
	}
	if gen.GenerateIn.Script != "refined script" {
		t.Errorf("generation should use the refined script, got %q", gen.GenerateIn.Script)
	}
	if out.Project.RefinedScript == nil || *out.Project.RefinedScript != "refined script" {
		t.Error("refined script should be stored on the project")
	}
	if len(out.Scenes) != 2 {
		t.Errorf("got %d scenes; want 2", len(out.Scenes))
	}
	// both the refinement and the generation leave an audit row
	if len(usage.Entries) != 2 {
		t.Fatalf("got %d usage entries; want 2", len(usage.Entries))
	}
	actions := []string{usage.Entries[0].Action, usage.Entries[1].Action}
	if actions[0] != ActionRefineScript || actions[1] != ActionGenerateScenes {
		t.Errorf("usage actions = %v", actions)
	}
	if !limiter.Called {
		t.Error("generation should go through the rate limiter")
	}
}

func TestCreateProject_RateLimited(t *testing.T) {
	limiter := &mock.RateLimiter{Err: ErrRateLimited}
	repo := &mock.ProjectRepo{}
	svc := NewProjectCreator(repo, &mock.SceneRepo{}, &mock.SceneGenerator{}, limiter, &mock.UsageRecorder{})

	_, err := svc.CreateProject(context.Background(), port.CreateProjectInput{
		OwnerID:        db.NewUUID(),
		Title:          "My reel",
		Topic:          "coffee",
		Script:         "a script",
		GenerateScenes: true,
	})
	if !errors.Is(err, ErrRateLimited) {
		t.Errorf("rate limit should propagate, got %v", err)
	}
	if repo.CreateCalled {
		t.Error("nothing should be persisted when rate limited")
	}
}

func TestCreateProject_GenerateScenesRequiresScript(t *testing.T) {
	repo := &mock.ProjectRepo{}
	gen := &mock.SceneGenerator{}
	limiter := &mock.RateLimiter{}
	svc := NewProjectCreator(repo, &mock.SceneRepo{}, gen, limiter, &mock.UsageRecorder{})

	_, err := svc.CreateProject(context.Background(), port.CreateProjectInput{
		OwnerID:        db.NewUUID(),
		Title:          "My reel",
		Topic:          "coffee",
		Script:         "   ",
		GenerateScenes: true,
	})
	if !IsValidationError(err) {
		t.Fatalf("generation without a script should be a validation error, got %v", err)
	}
	if limiter.Called {
		t.Error("invalid input must not consume rate-limit quota")
	}
	if gen.GenerateCalled || repo.CreateCalled {
		t.Error("nothing should be generated or persisted")
	}
}

func TestCreateProject_TitleRequired(t *testing.T) {
	svc := NewProjectCreator(&mock.ProjectRepo{}, &mock.SceneRepo{}, &mock.SceneGenerator{}, &mock.RateLimiter{}, &mock.UsageRecorder{})

	_, err := svc.CreateProject(context.Background(), port.CreateProjectInput{
		OwnerID: db.NewUUID(),
		Title:   "   ",
		Topic:   "coffee",
	})
	if !IsValidationError(err) {
		t.Errorf("blank title should be a validation error, got %v", err)
	}
}

func TestCreateProject_TopicDerivation(t *testing.T) {
	tests := []struct {
		name  string
		in    port.CreateProjectInput
		want  string
		fails bool
	}{
		{
			name: "explicit topic wins",
			in:   port.CreateProjectInput{Title: "t", Topic: " coffee ", Script: "script text"},
			want: "coffee",
		},
		{
			name: "script fallback",
			in:   port.CreateProjectInput{Title: "t", Script: "how espresso is made"},
			want: "how espresso is made",
		},
		{
			name: "first scene fallback",
			in: port.CreateProjectInput{Title: "t", Scenes: []port.SceneInput{
				{Description: "a barista at work"},
			}},
			want: "a barista at work",
		},
		{
			name:  "nothing to derive from",
			in:    port.CreateProjectInput{Title: "t"},
			fails: true,
		},
		{
			name: "long script is truncated",
			in:   port.CreateProjectInput{Title: "t", Script: strings.Repeat("x", 500)},
			want: strings.Repeat("x", 120),
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mock.ProjectRepo{}
			svc := NewProjectCreator(repo, &mock.SceneRepo{}, &mock.SceneGenerator{}, &mock.RateLimiter{}, &mock.UsageRecorder{})

			tc.in.OwnerID = db.NewUUID()
			out, err := svc.CreateProject(context.Background(), tc.in)
			if tc.fails {
				if !IsValidationError(err) {
					t.Errorf("expected validation error, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("CreateProject: %v", err)
			}
			if out.Project.Topic != tc.want {
				t.Errorf("topic = %q; want %q", out.Project.Topic, tc.want)
			}
		})
	}
}

func TestCreateProject_InvalidSceneDuration(t *testing.T) {
	svc := NewProjectCreator(&mock.ProjectRepo{}, &mock.SceneRepo{}, &mock.SceneGenerator{}, &mock.RateLimiter{}, &mock.UsageRecorder{})

	_, err := svc.CreateProject(context.Background(), port.CreateProjectInput{
		OwnerID: db.NewUUID(),
		Title:   "t",
		Topic:   "coffee",
		Scenes:  []port.SceneInput{{Description: "x", Duration: 100}},
	})
	if !IsValidationError(err) {
		t.Errorf("out-of-bounds duration should be a validation error, got %v", err)
	}
}
