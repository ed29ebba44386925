package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnnotationTurnList(t *testing.T) {
	raw := json.RawMessage(`[{"start":0.5,"end":2.0,"speaker":"SPEAKER_00"},{"start":2.0,"end":4.0,"speaker":"SPEAKER_01"}]`)

	turns, err := DecodeAnnotation(raw)
	require.NoError(t, err)
	require.Len(t, turns, 2)
	assert.Equal(t, Turn{Start: 0.5, End: 2.0, Speaker: "SPEAKER_00"}, turns[0])
	assert.Equal(t, "SPEAKER_01", turns[1].Speaker)
}

func TestDecodeAnnotationSerializedPrefersExclusive(t *testing.T) {
	raw := json.RawMessage(`{
		"exclusive_diarization": [{"start":0,"end":1,"speaker":"A"}],
		"diarization": [{"start":0,"end":9,"speaker":"B"}]
	}`)

	turns, err := DecodeAnnotation(raw)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "A", turns[0].Speaker)
}

func TestDecodeAnnotationSerializedPlain(t *testing.T) {
	raw := json.RawMessage(`{"diarization": [{"start":1,"end":3,"speaker":"B"}]}`)

	turns, err := DecodeAnnotation(raw)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, Turn{Start: 1, End: 3, Speaker: "B"}, turns[0])
}

func TestDecodeAnnotationNestedPrefersExclusive(t *testing.T) {
	raw := json.RawMessage(`{
		"exclusive_speaker_diarization": [{"start":0,"end":2,"speaker":"X"}],
		"speaker_diarization": [{"start":0,"end":2,"speaker":"Y"}]
	}`)

	turns, err := DecodeAnnotation(raw)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "X", turns[0].Speaker)
}

func TestDecodeAnnotationNestedSerialized(t *testing.T) {
	raw := json.RawMessage(`{
		"speaker_diarization": {"diarization": [{"start":5,"end":6,"speaker":"Z"}]}
	}`)

	turns, err := DecodeAnnotation(raw)
	require.NoError(t, err)
	require.Len(t, turns, 1)
	assert.Equal(t, "Z", turns[0].Speaker)
}

func TestDecodeAnnotationUnsupported(t *testing.T) {
	for _, raw := range []json.RawMessage{
		nil,
		json.RawMessage(`{"something":"else"}`),
		json.RawMessage(`"just a string"`),
	} {
		_, err := DecodeAnnotation(raw)
		assert.ErrorIs(t, err, ErrUnsupportedAnnotation)
	}
}

func TestDecodeAnnotationEmptyList(t *testing.T) {
	turns, err := DecodeAnnotation(json.RawMessage(`[]`))
	require.NoError(t, err)
	assert.Empty(t, turns)
}
