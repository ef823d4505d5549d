package render

import (
	"context"
	"database/sql"
	"encoding/base64"
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/model"
	"github.com/reelforge/reels-ms-go/internal/port"
	"github.com/reelforge/reels-ms-go/internal/usecase/project"
)

// Preview output format: 720p landscape at 30fps.
const (
	previewWidth  = 1280
	previewHeight = 720
)

// segmentPhaseBudget caps the progress attributed to segment encoding; the
// remainder covers concatenation and upload so progress never shows 100
// before the file is actually downloadable.
const segmentPhaseBudget = 90

type renderPreviewSrv struct {
	repo      port.ProjectRepository
	sceneRepo port.SceneRepository
	enc       port.SegmentEncoder
	strg      port.Storage
	cache     port.Cache
	bucket    string
}

// compile-time check: *renderPreviewSrv must satisfy port.PreviewRenderer
var _ port.PreviewRenderer = (*renderPreviewSrv)(nil)

// NewPreviewRenderer constructs a PreviewRenderer implementation.
func NewPreviewRenderer(repo port.ProjectRepository, sceneRepo port.SceneRepository, enc port.SegmentEncoder, strg port.Storage, cache port.Cache, bucket string) port.PreviewRenderer {
	return &renderPreviewSrv{repo: repo, sceneRepo: sceneRepo, enc: enc, strg: strg, cache: cache, bucket: bucket}
}

// RenderPreview runs the full pipeline for one project: encode one segment
// per scene, concatenate, upload, flip the status to completed. Any failure
// is persisted on the project before the error is returned, leaving progress
// at its last value so callers can see how far the render got.
func (s *renderPreviewSrv) RenderPreview(ctx context.Context, projectID db.UUID) error {
	if _, err := s.repo.GetByID(ctx, projectID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("%w: project #%s", project.ErrNotFound, projectID)
		}
		return err
	}

	scenes, err := s.sceneRepo.ListByProject(ctx, projectID)
	if err != nil {
		return err
	}
	if len(scenes) == 0 {
		return s.fail(ctx, projectID, "No scenes to render")
	}

	if err := s.repo.SetPreviewProcessing(ctx, projectID); err != nil {
		return err
	}
	s.invalidate(ctx, projectID)

	workDir, err := os.MkdirTemp("", "preview-"+projectID.String()+"-*")
	if err != nil {
		return s.fail(ctx, projectID, fmt.Sprintf("create work dir: %v", err))
	}
	defer func() {
		if err := os.RemoveAll(workDir); err != nil {
			log.Printf("failed to clean up work dir %q: %v", workDir, err)
		}
	}()

	log.Printf("🎬 rendering preview for project #%s (%d scenes) in %q...", projectID, len(scenes), workDir)

	segmentPaths := make([]string, 0, len(scenes))
	for i, scene := range scenes {
		in, err := s.segmentInput(i, workDir, scene)
		if err != nil {
			return s.fail(ctx, projectID, fmt.Sprintf("prepare scene %d: %v", scene.SceneNumber, err))
		}

		path, err := s.enc.EncodeSegment(ctx, in)
		if err != nil {
			return s.fail(ctx, projectID, fmt.Sprintf("encode scene %d: %v", scene.SceneNumber, err))
		}
		segmentPaths = append(segmentPaths, path)

		progress := int(math.Round(float64(i+1) / float64(len(scenes)) * segmentPhaseBudget))
		if err := s.repo.UpdatePreviewProgress(ctx, projectID, progress); err != nil {
			log.Printf("failed to persist progress %d%% for project #%s: %v", progress, projectID, err)
		}
	}

	outPath := filepath.Join(workDir, "preview.mp4")
	if err := s.enc.ConcatCopy(ctx, segmentPaths, outPath); err != nil {
		log.Printf("stream-copy concat failed for project #%s, re-encoding: %v", projectID, err)
		if err := s.enc.ConcatReencode(ctx, segmentPaths, outPath); err != nil {
			return s.fail(ctx, projectID, fmt.Sprintf("concatenate segments: %v", err))
		}
	}

	key := "previews/" + projectID.String() + ".mp4"
	if err := s.strg.SaveLocalFile(ctx, s.bucket, key, outPath, "video/mp4"); err != nil {
		return s.fail(ctx, projectID, fmt.Sprintf("upload preview: %v", err))
	}

	uri := s.strg.PublicURL(s.bucket, key)
	if err := s.repo.SetPreviewCompleted(ctx, projectID, uri); err != nil {
		return err
	}
	s.invalidate(ctx, projectID)

	log.Printf("✅ preview for project #%s rendered and uploaded to %s", projectID, uri)
	return nil
}

// segmentInput resolves a scene's media and audio into encoder input. Inline
// data URIs are materialised as temp files; http(s) references are handed to
// the encoder as-is.
func (s *renderPreviewSrv) segmentInput(index int, workDir string, scene model.Scene) (port.SegmentInput, error) {
	in := port.SegmentInput{
		Index:    index,
		OutDir:   workDir,
		Width:    previewWidth,
		Height:   previewHeight,
		Duration: scene.Duration,
	}

	if scene.MediaType != nil && scene.MediaURI != nil {
		in.MediaType = *scene.MediaType
		path, err := materialise(workDir, fmt.Sprintf("media_%03d", index), *scene.MediaURI)
		if err != nil {
			return port.SegmentInput{}, err
		}
		in.MediaPath = path
		if scene.MediaTrimStart != nil {
			in.TrimStart = *scene.MediaTrimStart
		}
	}

	if scene.AudioURI != nil {
		path, err := materialise(workDir, fmt.Sprintf("audio_%03d", index), *scene.AudioURI)
		if err != nil {
			return port.SegmentInput{}, err
		}
		in.AudioPath = path
	}

	return in, nil
}

// materialise turns a data URI into a local file and passes other references
// through untouched.
func materialise(workDir, name, uri string) (string, error) {
	if !strings.HasPrefix(uri, "data:") {
		return uri, nil
	}

	idx := strings.Index(uri, ";base64,")
	if idx < 0 {
		return "", fmt.Errorf("data uri is not base64 encoded")
	}
	mime := strings.TrimPrefix(uri[:idx], "data:")
	raw, err := base64.StdEncoding.DecodeString(uri[idx+len(";base64,"):])
	if err != nil {
		return "", fmt.Errorf("decode data uri: %w", err)
	}

	path := filepath.Join(workDir, name+extensionFor(mime))
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return "", fmt.Errorf("write media file: %w", err)
	}
	return path, nil
}

func extensionFor(mime string) string {
	switch mime {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	case "video/mp4":
		return ".mp4"
	case "audio/mpeg":
		return ".mp3"
	case "audio/wav", "audio/x-wav":
		return ".wav"
	default:
		return ".bin"
	}
}

// fail records the failure on the project and returns it as an error. The
// progress column keeps its last value.
func (s *renderPreviewSrv) fail(ctx context.Context, projectID db.UUID, message string) error {
	log.Printf("❌ preview render for project #%s failed: %s", projectID, message)
	if err := s.repo.SetPreviewFailed(ctx, projectID, message); err != nil {
		log.Printf("failed to persist failure for project #%s: %v", projectID, err)
	}
	s.invalidate(ctx, projectID)
	return fmt.Errorf("render preview for project #%s: %s", projectID, message)
}

func (s *renderPreviewSrv) invalidate(ctx context.Context, projectID db.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteProjectDetails(ctx, projectID); err != nil {
		log.Printf("failed deleting cache for project #%s: %v", projectID, err)
	}
	if err := s.cache.DeleteEtagProjectDetails(ctx, projectID); err != nil {
		log.Printf("failed deleting etag cache for project #%s: %v", projectID, err)
	}
}
