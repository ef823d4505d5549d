package api

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/reelforge/reels-ms-go/internal/api_context"
	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/mock"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

func requestWithIDs(method, target string, ownerID, projectID *db.UUID) *http.Request {
	r := httptest.NewRequest(method, target, nil)
	ctx := r.Context()
	if ownerID != nil {
		ctx = context.WithValue(ctx, api_context.AuthUserIDKey, *ownerID)
	}
	if projectID != nil {
		ctx = context.WithValue(ctx, api_context.ProjectIDKey, *projectID)
	}
	return r.WithContext(ctx)
}

func TestGetProjectHandler(t *testing.T) {
	ownerID := db.NewUUID()
	projectID := db.NewUUID()
	raw := []byte(`{"project":{"title":"reel"}}`)
	etag := `"cafebabe"`

	tests := []struct {
		name        string
		ownerID     *db.UUID
		projectID   *db.UUID
		ifNoneMatch string
		rendererErr error
		wantStatus  int
		wantBody    string
	}{
		{
			name:       "happy path",
			ownerID:    &ownerID,
			projectID:  &projectID,
			wantStatus: http.StatusOK,
			wantBody:   `"title":"reel"`,
		},
		{
			name:        "etag match returns 304",
			ownerID:     &ownerID,
			projectID:   &projectID,
			ifNoneMatch: etag,
			wantStatus:  http.StatusNotModified,
		},
		{
			name:       "missing auth",
			projectID:  &projectID,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing project id",
			ownerID:    &ownerID,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "not found maps to 404",
			ownerID:     &ownerID,
			projectID:   &projectID,
			rendererErr: fmt.Errorf("%w: project", project.ErrNotFound),
			wantStatus:  http.StatusNotFound,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			renderer := &mock.HTTPRenderer{Raw: raw, Etag: etag, Err: tc.rendererErr}
			handler := GetProjectHandler(renderer, &mock.ProjectGetter{})

			r := requestWithIDs(http.MethodGet, "/projects/"+projectID.String(), tc.ownerID, tc.projectID)
			if tc.ifNoneMatch != "" {
				r.Header.Set("If-None-Match", tc.ifNoneMatch)
			}
			w := httptest.NewRecorder()
			handler(w, r)

			if w.Code != tc.wantStatus {
				t.Fatalf("status = %d; want %d (body: %s)", w.Code, tc.wantStatus, w.Body.String())
			}
			if tc.wantBody != "" && !strings.Contains(w.Body.String(), tc.wantBody) {
				t.Errorf("body = %s; want it to contain %q", w.Body.String(), tc.wantBody)
			}
			if tc.wantStatus == http.StatusOK || tc.wantStatus == http.StatusNotModified {
				if got := w.Header().Get("ETag"); got != etag {
					t.Errorf("ETag = %q; want %q", got, etag)
				}
				if got := w.Header().Get("Cache-Control"); got != "private, max-age=300" {
					t.Errorf("Cache-Control = %q", got)
				}
			}
			if tc.wantStatus == http.StatusNotModified && w.Body.Len() != 0 {
				t.Errorf("304 must have no body, got %s", w.Body.String())
			}
		})
	}
}
