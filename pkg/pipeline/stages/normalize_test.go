package stages

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/media"
)

// fakeTranscoder builds a Transcoder whose ffmpeg invocations write stub
// files and whose ffprobe reports the given duration. segmentCount controls
// how many chunk files the segmenter fakes.
func fakeTranscoder(t *testing.T, duration float64, segmentCount int) *media.Transcoder {
	t.Helper()
	return media.NewTranscoder(
		media.WithPaths("/usr/bin/ffmpeg", "/usr/bin/ffprobe"),
		media.WithRunner(func(ctx context.Context, path string, args []string) (string, string, error) {
			switch {
			case path == "/usr/bin/ffprobe":
				return strconv.FormatFloat(duration, 'f', -1, 64) + "\n", "", nil
			case slices.Contains(args, "segment"):
				pattern := args[len(args)-1]
				for i := 0; i < segmentCount; i++ {
					name := fmt.Sprintf(pattern, i)
					require.NoError(t, os.WriteFile(name, []byte("riff"), 0o644))
				}
				return "", "", nil
			default:
				dst := args[len(args)-1]
				return "", "", os.WriteFile(dst, []byte("riff"), 0o644)
			}
		}),
	)
}

func TestNormalizeShortRecordingSingleChunk(t *testing.T) {
	run := newTestRun(t, nil)

	result := NewNormalize(fakeTranscoder(t, 1800, 0)).Run(context.Background(), run)
	require.True(t, result.Success)

	// Duration equal to the segment length does not trigger splitting.
	require.Len(t, run.Chunks, 1)
	chunk := run.Chunks[0]
	assert.Equal(t, "chunk0", chunk.ID)
	assert.Equal(t, 0.0, chunk.Start)
	assert.Equal(t, 1800.0, chunk.End)
	assert.Equal(t, filepath.Join(run.BaseDir, "normalize", "normalized.wav"), chunk.FilePath)
	assert.Equal(t, chunk.FilePath, run.NormalizedPath)
}

func TestNormalizeLongRecordingSplits(t *testing.T) {
	run := newTestRun(t, nil)

	result := NewNormalize(fakeTranscoder(t, 1801, 2)).Run(context.Background(), run)
	require.True(t, result.Success)

	require.Len(t, run.Chunks, 2)
	assert.Equal(t, "chunk0", run.Chunks[0].ID)
	assert.Equal(t, 0.0, run.Chunks[0].Start)
	assert.Equal(t, 1800.0, run.Chunks[0].End)
	assert.Equal(t, "chunk1", run.Chunks[1].ID)
	assert.Equal(t, 1800.0, run.Chunks[1].Start)
	assert.Equal(t, 1801.0, run.Chunks[1].End)

	for _, chunk := range run.Chunks {
		assert.FileExists(t, chunk.FilePath)
	}
}

func TestNormalizeTranscoderUnavailableCopiesInput(t *testing.T) {
	run := newTestRun(t, nil)
	input := filepath.Join(t.TempDir(), "recording.m4a")
	require.NoError(t, os.WriteFile(input, []byte("audio bytes"), 0o644))
	run.InputFile = input

	t.Setenv("FFMPEG_PATH", filepath.Join(t.TempDir(), "missing-ffmpeg"))
	t.Setenv("FFPROBE_PATH", filepath.Join(t.TempDir(), "missing-ffprobe"))
	result := NewNormalize(media.NewTranscoder()).Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Contains(t, result.Message, "transcoder unavailable")

	require.Len(t, run.Chunks, 1)
	assert.Equal(t, 0.0, run.Chunks[0].End)

	data, err := os.ReadFile(run.NormalizedPath)
	require.NoError(t, err)
	assert.Equal(t, "audio bytes", string(data))
}

func TestNormalizeNilTranscoderCopiesInput(t *testing.T) {
	run := newTestRun(t, nil)
	input := filepath.Join(t.TempDir(), "recording.wav")
	require.NoError(t, os.WriteFile(input, []byte("pcm"), 0o644))
	run.InputFile = input

	result := NewNormalize(nil).Run(context.Background(), run)
	require.True(t, result.Success)
	require.Len(t, run.Chunks, 1)
}

func TestNormalizeTranscodeErrorIsFatal(t *testing.T) {
	run := newTestRun(t, nil)
	tc := media.NewTranscoder(
		media.WithPaths("/usr/bin/ffmpeg", "/usr/bin/ffprobe"),
		media.WithRunner(func(ctx context.Context, path string, args []string) (string, string, error) {
			return "", "moov atom not found", errors.New("exit status 1")
		}),
	)

	result := NewNormalize(tc).Run(context.Background(), run)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "moov atom not found")
	assert.Nil(t, run.Chunks)
}

func TestNormalizeSegmentErrorFallsBackToSingleChunk(t *testing.T) {
	run := newTestRun(t, nil)
	tc := media.NewTranscoder(
		media.WithPaths("/usr/bin/ffmpeg", "/usr/bin/ffprobe"),
		media.WithRunner(func(ctx context.Context, path string, args []string) (string, string, error) {
			switch {
			case path == "/usr/bin/ffprobe":
				return "2000.0\n", "", nil
			case slices.Contains(args, "segment"):
				return "", "segmenter blew up", errors.New("exit status 1")
			default:
				return "", "", os.WriteFile(args[len(args)-1], []byte("riff"), 0o644)
			}
		}),
	)

	result := NewNormalize(tc).Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Contains(t, result.Message, "segmentation failed")

	require.Len(t, run.Chunks, 1)
	assert.Equal(t, 0.0, run.Chunks[0].Start)
	assert.Equal(t, 2000.0, run.Chunks[0].End)
	assert.Equal(t, run.NormalizedPath, run.Chunks[0].FilePath)
}

func TestNormalizeMissingInputWithoutTranscoderFails(t *testing.T) {
	run := newTestRun(t, nil)
	run.InputFile = filepath.Join(t.TempDir(), "does-not-exist.wav")

	result := NewNormalize(nil).Run(context.Background(), run)
	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "failed to copy input file")
}
