package api

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/mock"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

func postJSON(target, body string, ownerID *db.UUID) *http.Request {
	r := httptest.NewRequest(http.MethodPost, target, bytes.NewBufferString(body))
	if ownerID != nil {
		r = r.WithContext(context.WithValue(r.Context(), api_context.AuthUserIDKey, *ownerID))
	}
	return r
}

func TestCreateProjectHandler(t *testing.T) {
	ownerID := db.NewUUID()
	created := &port.ProjectOutput{Project: &model.Project{ID: db.NewUUID(), Title: "reel"}}

	tests := []struct {
		name       string
		ownerID    *db.UUID
		body       string
		svcOut     *port.ProjectOutput
		svcErr     error
		wantStatus int
		wantCalled bool
		wantBody   string
	}{
		{
			name:       "happy path",
			ownerID:    &ownerID,
			body:       `{"title": "reel", "topic": "coffee"}`,
			svcOut:     created,
			wantStatus: http.StatusCreated,
			wantCalled: true,
			wantBody:   `"title":"reel"`,
		},
		{
			name:       "missing auth",
			body:       `{"title": "reel"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "broken json",
			ownerID:    &ownerID,
			body:       `{"title": `,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "missing title fails validation",
			ownerID:    &ownerID,
			body:       `{"topic": "coffee"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "title",
		},
		{
			name:       "scene count too high fails validation",
			ownerID:    &ownerID,
			body:       `{"title": "reel", "scene_count": 99}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "usecase validation maps to 422",
			ownerID:    &ownerID,
			body:       `{"title": "reel"}`,
			svcErr:     project.NewValidationError("one of topic, script or scenes is required"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCalled: true,
			wantBody:   "one of topic, script or scenes is required",
		},
		{
			name:       "rate limit maps to 429",
			ownerID:    &ownerID,
			body:       `{"title": "reel", "topic": "coffee", "generate_scenes": true}`,
			svcErr:     project.ErrRateLimited,
			wantStatus: http.StatusTooManyRequests,
			wantCalled: true,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc := &mock.ProjectCreator{Out: tc.svcOut, Err: tc.svcErr}
			handler := CreateProjectHandler(svc)

			w := httptest.NewRecorder()
			handler(w, postJSON("/projects", tc.body, tc.ownerID))

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if svc.Called != tc.wantCalled {
				t.Errorf("svc called = %v; want %v", svc.Called, tc.wantCalled)
			}
			if tc.wantBody != "" && !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Errorf("body = %s; want it to contain %q", w.Body.String(), tc.wantBody)
			}
			if tc.wantCalled && tc.wantStatus == http.StatusCreated {
				if svc.LastIn.OwnerID != ownerID {
					t.Errorf("owner id = %s; want %s", svc.LastIn.OwnerID, ownerID)
				}
			}
		})
	}
}
