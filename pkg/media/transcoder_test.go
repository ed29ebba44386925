package media

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeRunner(t *testing.T, wantPath string, wantArgs []string, stdout string, retErr error) runFn {
	return func(_ context.Context, path string, args []string) (string, string, error) {
		assert.Equal(t, wantPath, path)
		if wantArgs != nil {
			assert.Equal(t, wantArgs, args)
		}
		return stdout, "simulated diagnostics", retErr
	}
}

func TestNormalizeBuildsResampleCommand(t *testing.T) {
	tr := NewTranscoder(
		WithPaths("/usr/bin/ffmpeg", "/usr/bin/ffprobe"),
		WithRunner(fakeRunner(t, "/usr/bin/ffmpeg", []string{
			"-y", "-i", "in.mp3", "-ac", "1", "-ar", "16000", "-c:a", "pcm_s16le", "out.wav",
		}, "", nil)),
	)

	require.True(t, tr.Available())
	require.NoError(t, tr.Normalize(context.Background(), "in.mp3", "out.wav"))
}

func TestNormalizeWrapsFailure(t *testing.T) {
	tr := NewTranscoder(
		WithPaths("/usr/bin/ffmpeg", ""),
		WithRunner(fakeRunner(t, "/usr/bin/ffmpeg", nil, "", errors.New("exit status 1"))),
	)

	err := tr.Normalize(context.Background(), "in.mp3", "out.wav")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "simulated diagnostics")
}

func TestSegmentBuildsSegmenterCommand(t *testing.T) {
	tr := NewTranscoder(
		WithPaths("/usr/bin/ffmpeg", ""),
		WithRunner(fakeRunner(t, "/usr/bin/ffmpeg", []string{
			"-y", "-i", "norm.wav", "-f", "segment", "-segment_time", "1800", "-c", "copy", "seg/chunk_%03d.wav",
		}, "", nil)),
	)

	require.NoError(t, tr.Segment(context.Background(), "norm.wav", "seg/chunk_%03d.wav", 1800))
}

func TestDurationParsesProbeOutput(t *testing.T) {
	tr := NewTranscoder(
		WithPaths("/usr/bin/ffmpeg", "/usr/bin/ffprobe"),
		WithRunner(fakeRunner(t, "/usr/bin/ffprobe", nil, "123.456\n", nil)),
	)

	assert.InDelta(t, 123.456, tr.Duration(context.Background(), "norm.wav"), 1e-9)
}

func TestDurationZeroOnFailure(t *testing.T) {
	tr := NewTranscoder(
		WithPaths("/usr/bin/ffmpeg", "/usr/bin/ffprobe"),
		WithRunner(fakeRunner(t, "/usr/bin/ffprobe", nil, "", errors.New("boom"))),
	)
	assert.Zero(t, tr.Duration(context.Background(), "norm.wav"))

	tr = NewTranscoder(
		WithPaths("/usr/bin/ffmpeg", "/usr/bin/ffprobe"),
		WithRunner(fakeRunner(t, "/usr/bin/ffprobe", nil, "garbage", nil)),
	)
	assert.Zero(t, tr.Duration(context.Background(), "norm.wav"))
}

func TestUnavailableTranscoder(t *testing.T) {
	tr := &Transcoder{run: defaultRun}

	assert.False(t, tr.Available())
	assert.Error(t, tr.Normalize(context.Background(), "a", "b"))
	assert.Error(t, tr.Segment(context.Background(), "a", "b", 10))
	assert.Zero(t, tr.Duration(context.Background(), "a"))
}
