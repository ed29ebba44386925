package stages

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/pipeline"
)

func TestSTTUnavailableModel(t *testing.T) {
	run := newTestRun(t, nil)
	run.Chunks = []*pipeline.AudioChunk{
		{ID: "chunk0", Start: 0, End: 10},
		{ID: "chunk1", Start: 10, End: 20},
	}

	result := NewSTT().Run(context.Background(), run)
	assert.False(t, result.Success)
	assert.Equal(t, "ASR model unavailable", result.Message)
	require.Len(t, run.STT, 2)
	for i, seg := range run.STT {
		assert.Equal(t, run.Chunks[i].Start, seg.Start)
		assert.Equal(t, run.Chunks[i].End, seg.End)
		assert.Empty(t, seg.Text)
	}
}

func TestSTTShiftsSegmentsOntoGlobalTimeline(t *testing.T) {
	asr := asrFunc(func(ctx context.Context, audioPath, language, device string) (*model.Transcript, error) {
		return &model.Transcript{
			Segments: []model.RawSegment{{Start: 1, End: 3, Text: " hello "}},
			Language: "ko",
		}, nil
	})

	run := newTestRun(t, model.NewStaticResources(asr, nil, nil, nil))
	run.Chunks = []*pipeline.AudioChunk{{ID: "chunk1", FilePath: "c.wav", Start: 30, End: 60}}

	result := NewSTT().Run(context.Background(), run)
	require.True(t, result.Success)
	require.Len(t, run.STT, 1)
	assert.Equal(t, pipeline.TranscriptSegment{Start: 31, End: 33, Text: "hello", Language: "ko"}, run.STT[0])
}

func TestSTTFiltersOutOfBoundsSegments(t *testing.T) {
	chunk := &pipeline.AudioChunk{ID: "chunk0", Start: 10, End: 20}
	raw := []model.RawSegment{
		{Start: 2, End: 2, Text: "zero length"},
		{Start: 3, End: 2, Text: "inverted"},
		{Start: -2, End: -1, Text: "ends before chunk with tolerance"},
		{Start: 11, End: 12, Text: "starts past chunk end plus tolerance"},
		{Start: -0.3, End: 2, Text: "clamped at the front"},
		{Start: 9.8, End: 10.4, Text: "clamped at the back"},
		{Start: 9.9995, End: 10.3, Text: "collapses when clamped"},
		{Start: 1, End: 4, Text: "  kept  "},
	}

	out := filterSegments(chunk, raw, "en")
	require.Len(t, out, 3)

	assert.Equal(t, pipeline.TranscriptSegment{Start: 10, End: 12, Text: "clamped at the front", Language: "en"}, out[0])
	assert.InDelta(t, 19.8, out[1].Start, 1e-9)
	assert.InDelta(t, 20.0, out[1].End, 1e-9)
	assert.Equal(t, "clamped at the back", out[1].Text)
	assert.Equal(t, pipeline.TranscriptSegment{Start: 11, End: 14, Text: "kept", Language: "en"}, out[2])
}

func TestSTTKeepsSegmentsWithinTolerance(t *testing.T) {
	chunk := &pipeline.AudioChunk{ID: "chunk0", Start: 10, End: 20}
	raw := []model.RawSegment{
		{Start: -0.4, End: 0.2, Text: "late start within tolerance"},
		{Start: 9.9, End: 10.4, Text: "spills past the end within tolerance"},
	}

	out := filterSegments(chunk, raw, "")
	require.Len(t, out, 2)
	assert.InDelta(t, 10.0, out[0].Start, 1e-9)
	assert.InDelta(t, 10.2, out[0].End, 1e-9)
	assert.InDelta(t, 19.9, out[1].Start, 1e-9)
	assert.InDelta(t, 20.0, out[1].End, 1e-9)
}

func TestSTTUnboundedChunkSkipsClamping(t *testing.T) {
	chunk := &pipeline.AudioChunk{ID: "chunk0", Start: 0, End: 0}
	raw := []model.RawSegment{{Start: 5, End: 9, Text: "free"}}

	out := filterSegments(chunk, raw, "")
	require.Len(t, out, 1)
	assert.Equal(t, 5.0, out[0].Start)
	assert.Equal(t, 9.0, out[0].End)
}

func TestSTTCPUFailoverPersistsAcrossChunks(t *testing.T) {
	var devices []string
	asr := asrFunc(func(ctx context.Context, audioPath, language, device string) (*model.Transcript, error) {
		devices = append(devices, device)
		if device == "auto" {
			return nil, errors.New("CUDA out of memory")
		}
		return &model.Transcript{Segments: []model.RawSegment{{Start: 0, End: 1, Text: "ok"}}}, nil
	})

	run := newTestRun(t, model.NewStaticResources(asr, nil, nil, nil))
	run.Chunks = []*pipeline.AudioChunk{
		{ID: "chunk0", Start: 0, End: 10},
		{ID: "chunk1", Start: 10, End: 20},
	}

	result := NewSTT().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, []string{"auto", "cpu", "cpu"}, devices)
	require.Len(t, run.STT, 2)
}

func TestSTTTotalFailure(t *testing.T) {
	asr := asrFunc(func(ctx context.Context, audioPath, language, device string) (*model.Transcript, error) {
		return nil, errors.New("model not loaded")
	})

	run := newTestRun(t, model.NewStaticResources(asr, nil, nil, nil))
	run.Chunks = []*pipeline.AudioChunk{{ID: "chunk0", Start: 0, End: 10}}

	result := NewSTT().Run(context.Background(), run)
	assert.False(t, result.Success)
	assert.Equal(t, "model not loaded", result.Message)
	require.Len(t, run.STT, 1)
	assert.Empty(t, run.STT[0].Text)
}

func TestSTTPassesLanguageHint(t *testing.T) {
	var gotLanguage string
	asr := asrFunc(func(ctx context.Context, audioPath, language, device string) (*model.Transcript, error) {
		gotLanguage = language
		return &model.Transcript{}, nil
	})

	run := newTestRun(t, model.NewStaticResources(asr, nil, nil, nil))
	run.Language = "ko"
	run.Chunks = []*pipeline.AudioChunk{{ID: "chunk0", Start: 0, End: 10}}

	result := NewSTT().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, "ko", gotLanguage)
}
