package stages

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/pipeline"
)

func runMerge(t *testing.T, stt []pipeline.TranscriptSegment, turns []pipeline.SpeakerTurn) *pipeline.RunContext {
	t.Helper()
	run := newTestRun(t, nil)
	run.STT = stt
	run.Diarization = turns

	result := NewMerge().Run(context.Background(), run)
	require.True(t, result.Success)
	return run
}

func TestMergeSingleSpeakerCoalesces(t *testing.T) {
	run := runMerge(t,
		[]pipeline.TranscriptSegment{
			{Start: 0, End: 5, Text: "hello"},
			{Start: 5, End: 10, Text: "world"},
		},
		[]pipeline.SpeakerTurn{{Start: 0, End: 10, Speaker: "A"}},
	)

	require.Len(t, run.MergedTranscript, 1)
	seg := run.MergedTranscript[0]
	assert.Equal(t, 0.0, seg.Start)
	assert.Equal(t, 10.0, seg.End)
	assert.Equal(t, "hello world", seg.Text)
	assert.Equal(t, "A", seg.Speaker)
	assert.Equal(t, "A: hello world", run.SpeakerAttributedText)
}

func TestMergeSpeakerChangeSplitsProportionally(t *testing.T) {
	run := runMerge(t,
		[]pipeline.TranscriptSegment{{Start: 0, End: 6, Text: "one two three four"}},
		[]pipeline.SpeakerTurn{
			{Start: 0, End: 3, Speaker: "A"},
			{Start: 3, End: 6, Speaker: "B"},
		},
	)

	require.Len(t, run.MergedTranscript, 2)
	assert.Equal(t, pipeline.MergedSegment{Start: 0, End: 3, Text: "one two", Speaker: "A"}, run.MergedTranscript[0])
	assert.Equal(t, pipeline.MergedSegment{Start: 3, End: 6, Text: "three four", Speaker: "B"}, run.MergedTranscript[1])
	assert.Equal(t, "A: one two\nB: three four", run.SpeakerAttributedText)
}

func TestMergePrunesShortFragments(t *testing.T) {
	run := runMerge(t,
		[]pipeline.TranscriptSegment{
			{Start: 0, End: 0.4, Text: "hi"},
			{Start: 0.5, End: 2.0, Text: "ok"},
		},
		[]pipeline.SpeakerTurn{{Start: 0, End: 2, Speaker: "A"}},
	)

	require.Len(t, run.MergedTranscript, 1)
	assert.Equal(t, pipeline.MergedSegment{Start: 0.5, End: 2.0, Text: "ok", Speaker: "A"}, run.MergedTranscript[0])
}

func TestMergeWithoutDiarizationIsUnknown(t *testing.T) {
	run := runMerge(t,
		[]pipeline.TranscriptSegment{{Start: 0, End: 5, Text: "x"}},
		nil,
	)

	require.Len(t, run.MergedTranscript, 1)
	assert.Equal(t, "UNKNOWN", run.MergedTranscript[0].Speaker)
	assert.Equal(t, "UNKNOWN: x", run.SpeakerAttributedText)
}

func TestMergeEmptySTT(t *testing.T) {
	run := newTestRun(t, nil)
	run.Diarization = []pipeline.SpeakerTurn{{Start: 0, End: 10, Speaker: "A"}}

	result := NewMerge().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.NotEmpty(t, result.Message)
	assert.Empty(t, run.MergedTranscript)
	assert.Empty(t, run.SpeakerAttributedText)
}

func TestMergeNoOverlapPicksClosestTurn(t *testing.T) {
	run := runMerge(t,
		[]pipeline.TranscriptSegment{{Start: 10, End: 12, Text: "later"}},
		[]pipeline.SpeakerTurn{
			{Start: 0, End: 2, Speaker: "A"},
			{Start: 8, End: 9, Speaker: "B"},
		},
	)

	// Closest turn ends 1 s before the segment; the segment keeps its own
	// bounds and text.
	require.Len(t, run.MergedTranscript, 1)
	assert.Equal(t, pipeline.MergedSegment{Start: 10, End: 12, Text: "later", Speaker: "B"}, run.MergedTranscript[0])
}

func TestMergeCoalesceRespectsGapTolerance(t *testing.T) {
	run := runMerge(t,
		[]pipeline.TranscriptSegment{
			{Start: 0, End: 2, Text: "a"},
			{Start: 2.04, End: 4, Text: "b"},
			{Start: 4.2, End: 6, Text: "c"},
		},
		[]pipeline.SpeakerTurn{{Start: 0, End: 6, Speaker: "S"}},
	)

	// Overlap bounds keep the STT gaps: 0.04 coalesces, 0.2 does not.
	require.Len(t, run.MergedTranscript, 2)
	assert.Equal(t, "a b", run.MergedTranscript[0].Text)
	assert.Equal(t, "c", run.MergedTranscript[1].Text)
}

func TestMergeSkipsEmptySplitPieces(t *testing.T) {
	// The first overlap is so short its token share rounds to zero.
	run := runMerge(t,
		[]pipeline.TranscriptSegment{{Start: 0, End: 10, Text: "w1 w2 w3 w4 w5 w6 w7 w8 w9 w10"}},
		[]pipeline.SpeakerTurn{
			{Start: 0, End: 0.1, Speaker: "A"},
			{Start: 0.1, End: 10, Speaker: "B"},
		},
	)

	require.Len(t, run.MergedTranscript, 1)
	assert.Equal(t, "B", run.MergedTranscript[0].Speaker)
	assert.Equal(t, "w1 w2 w3 w4 w5 w6 w7 w8 w9 w10", run.MergedTranscript[0].Text)
}

func TestMergeCarriesLanguage(t *testing.T) {
	run := runMerge(t,
		[]pipeline.TranscriptSegment{
			{Start: 0, End: 5, Text: "hello"},
			{Start: 5, End: 10, Text: "world", Language: "en"},
		},
		[]pipeline.SpeakerTurn{{Start: 0, End: 10, Speaker: "A"}},
	)

	require.Len(t, run.MergedTranscript, 1)
	assert.Equal(t, "en", run.MergedTranscript[0].Language)
}

func TestMergeAnnotatesChunks(t *testing.T) {
	run := newTestRun(t, nil)
	run.Chunks = []*pipeline.AudioChunk{
		{ID: "chunk0", Start: 0, End: 6},
		{ID: "chunk1", Start: 6, End: 12},
	}
	run.STT = []pipeline.TranscriptSegment{
		{Start: 0, End: 3, Text: "alpha"},
		{Start: 3, End: 6, Text: "beta"},
		{Start: 8, End: 10, Text: "gamma"},
	}
	run.Diarization = []pipeline.SpeakerTurn{
		{Start: 0, End: 3, Speaker: "A"},
		{Start: 3, End: 6, Speaker: "B"},
		{Start: 8, End: 10, Speaker: "A"},
	}

	result := NewMerge().Run(context.Background(), run)
	require.True(t, result.Success)

	assert.Equal(t, "alpha beta", run.Chunks[0].Transcript)
	// Tie between A and B in chunk0 goes to the first seen.
	assert.Equal(t, "A", run.Chunks[0].Speaker)
	assert.Equal(t, "gamma", run.Chunks[1].Transcript)
	assert.Equal(t, "A", run.Chunks[1].Speaker)
}

func TestMergeWritesAttributedTextFile(t *testing.T) {
	run := runMerge(t,
		[]pipeline.TranscriptSegment{{Start: 0, End: 5, Text: "hello"}},
		[]pipeline.SpeakerTurn{{Start: 0, End: 5, Speaker: "A"}},
	)

	data, err := os.ReadFile(filepath.Join(run.BaseDir, pipeline.SpeakerAttributedTextFile))
	require.NoError(t, err)
	assert.Equal(t, run.SpeakerAttributedText, string(data))
}

func TestMergeSuppressesDuplicateLines(t *testing.T) {
	segments := []pipeline.MergedSegment{
		{Start: 0, End: 2, Text: "same", Speaker: "A"},
		{Start: 3, End: 5, Text: "same", Speaker: "A"},
		{Start: 6, End: 8, Text: "", Speaker: "B"},
		{Start: 9, End: 11, Text: "other", Speaker: "B"},
	}

	lines := segmentsToLines(segments)
	assert.Equal(t, []string{"A: same", "B: other"}, lines)
}

func TestMergeInvariants(t *testing.T) {
	run := runMerge(t,
		[]pipeline.TranscriptSegment{
			{Start: 0, End: 4, Text: "a b c d"},
			{Start: 3.5, End: 9, Text: "e f g"},
			{Start: 9, End: 9.5, Text: "tiny"},
		},
		[]pipeline.SpeakerTurn{
			{Start: 0, End: 2, Speaker: "A"},
			{Start: 2, End: 5, Speaker: "B"},
			{Start: 5, End: 10, Speaker: "A"},
		},
	)

	segments := run.MergedTranscript
	for i, seg := range segments {
		assert.Less(t, seg.Start, seg.End)
		assert.GreaterOrEqual(t, seg.End-seg.Start, 1.0)
		if i > 0 {
			prev := segments[i-1]
			assert.LessOrEqual(t, prev.Start, seg.Start)
			if prev.Speaker == seg.Speaker {
				assert.Greater(t, seg.Start-prev.End, coalesceTolerance)
			}
		}
	}
}

func TestSplitTextByOverlapBoundaries(t *testing.T) {
	overlaps := []overlap{
		{start: 0, end: 1, speaker: "A"},
		{start: 1, end: 2, speaker: "B"},
		{start: 2, end: 4, speaker: "C"},
	}

	pieces := splitTextByOverlap("t1 t2 t3 t4 t5 t6 t7 t8", overlaps)
	require.Len(t, pieces, 3)
	assert.Equal(t, "t1 t2 ", pieces[0])
	assert.Equal(t, "t3 t4 ", pieces[1])
	assert.Equal(t, "t5 t6 t7 t8", pieces[2])
}

func TestSplitTextByOverlapNoTokens(t *testing.T) {
	overlaps := []overlap{
		{start: 0, end: 1, speaker: "A"},
		{start: 1, end: 2, speaker: "B"},
	}

	pieces := splitTextByOverlap("", overlaps)
	require.Len(t, pieces, 2)
	assert.Equal(t, "", pieces[0])
	assert.Equal(t, "", pieces[1])
}
