package encoder

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/reelforge/reels-ms-go/internal/port"
)

// FFmpegEncoder shells out to ffmpeg to synthesize and concatenate segments.
type FFmpegEncoder struct {
	bin string
}

// compile-time check: *FFmpegEncoder must satisfy port.SegmentEncoder
var _ port.SegmentEncoder = (*FFmpegEncoder)(nil)

func NewFFmpegEncoder(bin string) *FFmpegEncoder {
	if bin == "" {
		bin = "ffmpeg"
	}
	return &FFmpegEncoder{bin: bin}
}

// EncodeSegment renders one fixed-resolution segment. Images are cover-fit
// (scaled up then cropped), videos are letterboxed (scaled down then padded)
// so mixed media concatenates without resolution mismatches. An empty media
// type yields a solid-colour placeholder frame.
func (e *FFmpegEncoder) EncodeSegment(ctx context.Context, in port.SegmentInput) (string, error) {
	outPath := filepath.Join(in.OutDir, fmt.Sprintf("segment_%03d.mp4", in.Index))
	args := segmentArgs(in, outPath)

	log.Printf("encoding segment %d (%s) to %q...", in.Index, displayMediaType(in.MediaType), outPath)
	if err := e.run(ctx, args); err != nil {
		return "", fmt.Errorf("encode segment %d: %w", in.Index, err)
	}
	return outPath, nil
}

// segmentArgs builds the full ffmpeg argument list for one segment. Kept as
// a pure function so the flag logic is testable without ffmpeg installed.
func segmentArgs(in port.SegmentInput, outPath string) []string {
	size := fmt.Sprintf("%dx%d", in.Width, in.Height)
	coverFit := fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d",
		in.Width, in.Height, in.Width, in.Height)
	letterbox := fmt.Sprintf("scale=%d:%d:force_original_aspect_ratio=decrease,pad=%d:%d:(ow-iw)/2:(oh-ih)/2",
		in.Width, in.Height, in.Width, in.Height)

	args := []string{"-y"}

	switch in.MediaType {
	case "image":
		args = append(args,
			"-loop", "1",
			"-i", in.MediaPath,
		)
	case "video":
		if in.TrimStart > 0 {
			args = append(args, "-ss", fmt.Sprintf("%.3f", in.TrimStart))
		}
		args = append(args, "-i", in.MediaPath)
	default:
		args = append(args,
			"-f", "lavfi",
			"-i", fmt.Sprintf("color=c=0x1a1a2e:s=%s:r=30", size),
		)
	}

	hasAudio := in.AudioPath != ""
	if hasAudio {
		args = append(args, "-i", in.AudioPath)
	} else {
		// silent track so every segment carries an audio stream and concat
		// never has to reconcile stream layouts
		args = append(args, "-f", "lavfi", "-i", "anullsrc=channel_layout=stereo:sample_rate=44100")
	}

	switch in.MediaType {
	case "video":
		args = append(args, "-vf", letterbox)
	default:
		args = append(args, "-vf", coverFit)
	}

	args = append(args,
		"-t", fmt.Sprintf("%.3f", in.Duration),
		"-r", "30",
		"-c:v", "libx264",
		"-preset", "fast",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-ar", "44100",
		"-map", "0:v:0",
		"-map", "1:a:0",
		"-shortest",
		"-movflags", "+faststart",
		outPath,
	)
	return args
}

// ConcatCopy joins segments with the concat demuxer using stream copy. All
// segments come out of EncodeSegment with identical codecs, so this is the
// fast path; ConcatReencode exists for when it still fails.
func (e *FFmpegEncoder) ConcatCopy(ctx context.Context, segmentPaths []string, outPath string) error {
	listPath, err := writeConcatList(segmentPaths, outPath)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(listPath) }()

	log.Printf("concatenating %d segments (stream copy) into %q...", len(segmentPaths), outPath)
	return e.run(ctx, []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c", "copy",
		"-movflags", "+faststart",
		outPath,
	})
}

func (e *FFmpegEncoder) ConcatReencode(ctx context.Context, segmentPaths []string, outPath string) error {
	listPath, err := writeConcatList(segmentPaths, outPath)
	if err != nil {
		return err
	}
	defer func() { _ = os.Remove(listPath) }()

	log.Printf("concatenating %d segments (re-encode) into %q...", len(segmentPaths), outPath)
	return e.run(ctx, []string{
		"-y",
		"-f", "concat",
		"-safe", "0",
		"-i", listPath,
		"-c:v", "libx264",
		"-preset", "fast",
		"-pix_fmt", "yuv420p",
		"-c:a", "aac",
		"-ar", "44100",
		"-movflags", "+faststart",
		outPath,
	})
}

// writeConcatList produces the demuxer input file next to the output.
func writeConcatList(segmentPaths []string, outPath string) (string, error) {
	var b strings.Builder
	for _, p := range segmentPaths {
		abs, err := filepath.Abs(p)
		if err != nil {
			return "", fmt.Errorf("resolve segment path %q: %w", p, err)
		}
		fmt.Fprintf(&b, "file '%s'\n", abs)
	}

	listPath := filepath.Join(filepath.Dir(outPath), "concat_list.txt")
	if err := os.WriteFile(listPath, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write concat list: %w", err)
	}
	return listPath, nil
}

func (e *FFmpegEncoder) run(ctx context.Context, args []string) error {
	cmd := exec.CommandContext(ctx, e.bin, args...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg failed: %w: %s", err, tail(out, 500))
	}
	return nil
}

// tail keeps the last n bytes of ffmpeg output; the error is always at the
// end of the log.
func tail(out []byte, n int) string {
	if len(out) > n {
		out = out[len(out)-n:]
	}
	return string(out)
}

func displayMediaType(mt string) string {
	if mt == "" {
		return "placeholder"
	}
	return mt
}
