// Package media wraps the ffmpeg/ffprobe binaries behind the transcoding
// contract the normalize stage needs: resample to mono 16 kHz PCM, split
// into fixed-length segments, and probe durations.
package media

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Environment variables overriding binary discovery on PATH.
const (
	envFFmpegPath  = "FFMPEG_PATH"
	envFFprobePath = "FFPROBE_PATH"
)

// runFn runs a command and captures combined diagnostic output. ffmpeg
// writes its diagnostics to stderr, ffprobe writes results to stdout.
type runFn func(ctx context.Context, path string, args []string) (stdout, stderr string, err error)

// Transcoder shells out to ffmpeg and ffprobe. A Transcoder with no
// resolved ffmpeg binary is a valid unavailable collaborator; callers
// check Available before use.
type Transcoder struct {
	ffmpegPath  string
	ffprobePath string
	run         runFn
}

// Option configures a Transcoder.
type Option func(*Transcoder)

// WithRunner sets a custom command runner (for testing).
func WithRunner(fn runFn) Option {
	return func(t *Transcoder) { t.run = fn }
}

// WithPaths sets explicit binary paths, skipping discovery.
func WithPaths(ffmpeg, ffprobe string) Option {
	return func(t *Transcoder) {
		t.ffmpegPath = ffmpeg
		t.ffprobePath = ffprobe
	}
}

// NewTranscoder resolves the binaries from FFMPEG_PATH/FFPROBE_PATH or the
// system PATH. Missing binaries do not error; they leave the capability
// unavailable.
func NewTranscoder(opts ...Option) *Transcoder {
	t := &Transcoder{run: defaultRun}
	for _, opt := range opts {
		opt(t)
	}

	if t.ffmpegPath == "" {
		t.ffmpegPath = resolveBinary(envFFmpegPath, "ffmpeg")
	}
	if t.ffprobePath == "" {
		t.ffprobePath = resolveBinary(envFFprobePath, "ffprobe")
	}
	return t
}

// Available reports whether ffmpeg was found.
func (t *Transcoder) Available() bool {
	return t.ffmpegPath != ""
}

// Normalize converts src into a mono 16 kHz signed 16-bit PCM WAV at dst,
// overwriting any existing file.
func (t *Transcoder) Normalize(ctx context.Context, src, dst string) error {
	if !t.Available() {
		return fmt.Errorf("ffmpeg not available")
	}
	args := []string{
		"-y",
		"-i", src,
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dst,
	}
	_, stderr, err := t.run(ctx, t.ffmpegPath, args)
	if err != nil {
		return fmt.Errorf("ffmpeg normalize failed: %w\n%s", err, stderr)
	}
	return nil
}

// Segment splits src into consecutive files of segmentLength seconds using
// the stream copy segmenter. Pattern is an ffmpeg output pattern such as
// ".../chunk_%03d.wav".
func (t *Transcoder) Segment(ctx context.Context, src, pattern string, segmentLength float64) error {
	if !t.Available() {
		return fmt.Errorf("ffmpeg not available")
	}
	args := []string{
		"-y",
		"-i", src,
		"-f", "segment",
		"-segment_time", strconv.FormatFloat(segmentLength, 'f', -1, 64),
		"-c", "copy",
		pattern,
	}
	_, stderr, err := t.run(ctx, t.ffmpegPath, args)
	if err != nil {
		return fmt.Errorf("ffmpeg segment failed: %w\n%s", err, stderr)
	}
	return nil
}

// Duration probes the duration of an audio file in seconds, returning 0.0
// on any failure.
func (t *Transcoder) Duration(ctx context.Context, path string) float64 {
	if t.ffprobePath == "" {
		return 0.0
	}
	args := []string{
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "default=noprint_wrappers=1:nokey=1",
		path,
	}
	stdout, _, err := t.run(ctx, t.ffprobePath, args)
	if err != nil {
		return 0.0
	}
	d, err := strconv.ParseFloat(strings.TrimSpace(stdout), 64)
	if err != nil {
		return 0.0
	}
	return d
}

func resolveBinary(envKey, name string) string {
	if p := os.Getenv(envKey); p != "" {
		if _, err := os.Stat(p); err == nil {
			return p
		}
		return ""
	}
	p, err := exec.LookPath(name)
	if err != nil {
		return ""
	}
	return p
}

func defaultRun(ctx context.Context, path string, args []string) (string, string, error) {
	cmd := exec.CommandContext(ctx, path, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}
