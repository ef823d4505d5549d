package mock

import (
	"context"
	"io"
	"time"

	"github.com/reelforge/reels-ms-go/internal/db"
	"github.com/reelforge/reels-ms-go/internal/port"
)

// Cache implements port.Cache for tests.
type Cache struct {
	ProjectOut []byte
	EtagOut    string

	GetErr     error
	GetEtagErr error
	DelErr     error
	DelEtagErr error

	GetCalled     bool
	GetEtagCalled bool
	SetCalled     bool
	SetEtagCalled bool
	DelCalled     bool
	DelEtagCalled bool
}

func (c *Cache) GetProjectDetails(ctx context.Context, id db.UUID) ([]byte, error) {
	c.GetCalled = true
	if c.GetErr != nil {
		return nil, c.GetErr
	}
	return c.ProjectOut, nil
}

func (c *Cache) GetEtagProjectDetails(ctx context.Context, id db.UUID) (string, error) {
	c.GetEtagCalled = true
	if c.GetEtagErr != nil {
		return "", c.GetEtagErr
	}
	return c.EtagOut, nil
}

func (c *Cache) SetProjectDetails(ctx context.Context, id db.UUID, data []byte, validUntil time.Time) {
	c.SetCalled = true
	c.ProjectOut = data
}

func (c *Cache) SetEtagProjectDetails(ctx context.Context, id db.UUID, etag string, validUntil time.Time) {
	c.SetEtagCalled = true
	c.EtagOut = etag
}

func (c *Cache) DeleteProjectDetails(ctx context.Context, id db.UUID) error {
	c.DelCalled = true
	return c.DelErr
}

func (c *Cache) DeleteEtagProjectDetails(ctx context.Context, id db.UUID) error {
	c.DelEtagCalled = true
	return c.DelEtagErr
}

// Storage implements port.Storage for tests.
type Storage struct {
	SavedKeys   []string
	RemovedKeys []string
	Exists      bool

	SaveErr   error
	RemoveErr error
	ExistsErr error

	SaveLocalCalled bool
	SaveLocalPath   string
}

func (s *Storage) InitBucket(bucket string) error { return nil }

func (s *Storage) SaveFile(ctx context.Context, bucket, fileKey string, reader io.Reader, fileSize int64, opts map[string]string) error {
	if s.SaveErr == nil {
		s.SavedKeys = append(s.SavedKeys, fileKey)
	}
	return s.SaveErr
}

func (s *Storage) SaveLocalFile(ctx context.Context, bucket, fileKey, localPath, contentType string) error {
	s.SaveLocalCalled = true
	s.SaveLocalPath = localPath
	if s.SaveErr == nil {
		s.SavedKeys = append(s.SavedKeys, fileKey)
	}
	return s.SaveErr
}

func (s *Storage) RemoveFile(ctx context.Context, bucket, fileKey string) error {
	if s.RemoveErr == nil {
		s.RemovedKeys = append(s.RemovedKeys, fileKey)
	}
	return s.RemoveErr
}

func (s *Storage) FileExists(ctx context.Context, bucket, fileKey string) (bool, error) {
	return s.Exists, s.ExistsErr
}

func (s *Storage) PublicURL(bucket, fileKey string) string {
	return "https://cdn.test/" + bucket + "/" + fileKey
}

// Dispatcher implements port.TaskDispatcher for tests.
type Dispatcher struct {
	EnqueuedIDs []db.UUID
	Err         error
}

func (d *Dispatcher) EnqueueRenderPreview(ctx context.Context, id db.UUID) error {
	if d.Err != nil {
		return d.Err
	}
	d.EnqueuedIDs = append(d.EnqueuedIDs, id)
	return nil
}

// RateLimiter implements port.RateLimiter for tests.
type RateLimiter struct {
	Err    error
	Called bool
	Keys   []string
}

func (l *RateLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) error {
	l.Called = true
	l.Keys = append(l.Keys, key)
	return l.Err
}

// Locker implements port.ProjectLocker for tests.
type Locker struct {
	LockCalls   int
	UnlockCalls int
}

func (l *Locker) Lock(projectID db.UUID)   { l.LockCalls++ }
func (l *Locker) Unlock(projectID db.UUID) { l.UnlockCalls++ }

// Encoder implements port.SegmentEncoder for tests.
type Encoder struct {
	EncodedInputs []port.SegmentInput
	EncodeErr     error
	EncodeErrAt   int // 1-based index of the call that fails; 0 means EncodeErr applies to all

	ConcatCopyCalled     bool
	ConcatCopyErr        error
	ConcatReencodeCalled bool
	ConcatReencodeErr    error
	ConcatPaths          []string
}

func (e *Encoder) EncodeSegment(ctx context.Context, in port.SegmentInput) (string, error) {
	call := len(e.EncodedInputs) + 1
	if e.EncodeErr != nil && (e.EncodeErrAt == 0 || e.EncodeErrAt == call) {
		return "", e.EncodeErr
	}
	e.EncodedInputs = append(e.EncodedInputs, in)
	return "/tmp/fake/segment.mp4", nil
}

func (e *Encoder) ConcatCopy(ctx context.Context, segmentPaths []string, outPath string) error {
	e.ConcatCopyCalled = true
	e.ConcatPaths = segmentPaths
	return e.ConcatCopyErr
}

func (e *Encoder) ConcatReencode(ctx context.Context, segmentPaths []string, outPath string) error {
	e.ConcatReencodeCalled = true
	e.ConcatPaths = segmentPaths
	return e.ConcatReencodeErr
}
