package port

import "context"

// SegmentInput describes one fixed-resolution video segment to synthesize.
// MediaPath and AudioPath are local files or http(s) URLs; an empty MediaType
// means a solid-colour placeholder frame.
type SegmentInput struct {
	Index     int
	OutDir    string
	Width     int
	Height    int
	Duration  float64
	MediaType string
	MediaPath string
	TrimStart float64
	AudioPath string
}

// SegmentEncoder produces encoded video segments and concatenates them.
// ConcatCopy performs fast stream-copy concatenation; ConcatReencode is the
// recovery path when segment codecs are incompatible.
type SegmentEncoder interface {
	EncodeSegment(ctx context.Context, in SegmentInput) (path string, err error)
	ConcatCopy(ctx context.Context, segmentPaths []string, outPath string) error
	ConcatReencode(ctx context.Context, segmentPaths []string, outPath string) error
}
