package stages

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/pipeline"
)

func TestDiarizeUnavailablePlaceholders(t *testing.T) {
	run := newTestRun(t, nil)
	run.Chunks = []*pipeline.AudioChunk{
		{ID: "chunk0", Start: 0, End: 1800},
		{ID: "chunk1", Start: 1800, End: 2400},
	}

	result := NewDiarize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.NotEmpty(t, result.Message)
	require.Len(t, run.Diarization, 2)
	assert.Equal(t, pipeline.SpeakerTurn{Start: 0, End: 1800, Speaker: "SPEAKER_00"}, run.Diarization[0])
	assert.Equal(t, pipeline.SpeakerTurn{Start: 1800, End: 2400, Speaker: "SPEAKER_01"}, run.Diarization[1])
}

func TestDiarizeShiftsTurnsOntoGlobalTimeline(t *testing.T) {
	diarizer := diarizerFunc(func(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error) {
		assert.Equal(t, normalizedSampleRate, sampleRate)
		return json.RawMessage(`[{"start": 1, "end": 5, "speaker": "SPEAKER_00"}]`), nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, diarizer, nil, nil))
	run.Chunks = []*pipeline.AudioChunk{
		{ID: "chunk0", FilePath: "a.wav", Start: 0, End: 1800},
		{ID: "chunk1", FilePath: "b.wav", Start: 1800, End: 3600},
	}

	result := NewDiarize().Run(context.Background(), run)
	require.True(t, result.Success)
	require.Len(t, run.Diarization, 2)
	assert.Equal(t, pipeline.SpeakerTurn{Start: 1, End: 5, Speaker: "SPEAKER_00"}, run.Diarization[0])
	assert.Equal(t, pipeline.SpeakerTurn{Start: 1801, End: 1805, Speaker: "SPEAKER_00"}, run.Diarization[1])
}

func TestDiarizeErrorDiscardsPartialOutput(t *testing.T) {
	calls := 0
	diarizer := diarizerFunc(func(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error) {
		calls++
		if calls == 1 {
			return json.RawMessage(`[{"start": 0, "end": 10, "speaker": "SPEAKER_00"}]`), nil
		}
		return nil, errors.New("diarization pipeline crashed")
	})

	run := newTestRun(t, model.NewStaticResources(nil, diarizer, nil, nil))
	run.Chunks = []*pipeline.AudioChunk{
		{ID: "chunk0", Start: 0, End: 100},
		{ID: "chunk1", Start: 100, End: 200},
	}

	result := NewDiarize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Contains(t, result.Message, "placeholder")

	// The first chunk's real turns are gone; every chunk gets one
	// placeholder speaker instead.
	require.Len(t, run.Diarization, 2)
	assert.Equal(t, pipeline.SpeakerTurn{Start: 0, End: 100, Speaker: "SPEAKER_00"}, run.Diarization[0])
	assert.Equal(t, pipeline.SpeakerTurn{Start: 100, End: 200, Speaker: "SPEAKER_01"}, run.Diarization[1])
}

func TestDiarizeUndecodableAnnotationFallsBack(t *testing.T) {
	diarizer := diarizerFunc(func(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error) {
		return json.RawMessage(`{"unexpected": true}`), nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, diarizer, nil, nil))
	run.Chunks = []*pipeline.AudioChunk{{ID: "chunk0", Start: 0, End: 60}}

	result := NewDiarize().Run(context.Background(), run)
	require.True(t, result.Success)
	require.Len(t, run.Diarization, 1)
	assert.Equal(t, "SPEAKER_00", run.Diarization[0].Speaker)
}

func TestDiarizeWrappedAnnotationShape(t *testing.T) {
	diarizer := diarizerFunc(func(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error) {
		return json.RawMessage(`{
			"diarization": [{"start": 0, "end": 2, "speaker": "A"}],
			"exclusive_diarization": [{"start": 0, "end": 3, "speaker": "B"}]
		}`), nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, diarizer, nil, nil))
	run.Chunks = []*pipeline.AudioChunk{{ID: "chunk0", Start: 0, End: 60}}

	result := NewDiarize().Run(context.Background(), run)
	require.True(t, result.Success)
	require.Len(t, run.Diarization, 1)
	assert.Equal(t, pipeline.SpeakerTurn{Start: 0, End: 3, Speaker: "B"}, run.Diarization[0])
}

func TestDiarizeNoChunks(t *testing.T) {
	diarizer := diarizerFunc(func(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error) {
		t.Fatal("diarizer should not be called without chunks")
		return nil, nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, diarizer, nil, nil))

	result := NewDiarize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Empty(t, run.Diarization)
}
