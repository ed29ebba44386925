package pipeline

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersistArtifactsEmptyRunWritesNothing(t *testing.T) {
	run := newRun(t)

	PersistArtifacts(run)

	entries, err := os.ReadDir(run.BaseDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPersistArtifactsFullRun(t *testing.T) {
	run := newRun(t)

	audio := filepath.Join(t.TempDir(), "chunk_000.wav")
	require.NoError(t, os.WriteFile(audio, []byte("riff"), 0o644))

	run.Chunks = []*AudioChunk{{ID: "chunk0", FilePath: audio, Start: 0, End: 120}}
	run.Diarization = []SpeakerTurn{{Start: 0, End: 60, Speaker: "SPEAKER_00"}}
	run.STT = []TranscriptSegment{{Start: 0, End: 5, Text: "hello", Language: "ko"}}
	run.MergedTranscript = []MergedSegment{{Start: 0, End: 5, Text: "hello", Language: "ko", Speaker: "SPEAKER_00"}}
	run.Categories = &CategoryResult{DocumentType: DocTypeMeeting, Source: "llm"}
	run.SpeakerAttributedText = "SPEAKER_00: hello"
	run.Summary = "summary body"
	run.SummarySource = "llm"

	PersistArtifacts(run)

	copied, err := os.ReadFile(filepath.Join(run.BaseDir, "chunks", "chunk_000.wav"))
	require.NoError(t, err)
	assert.Equal(t, "riff", string(copied))

	var manifest []map[string]any
	readJSON(t, filepath.Join(run.BaseDir, ChunksManifestFile), &manifest)
	require.Len(t, manifest, 1)
	assert.Equal(t, "chunk0", manifest[0]["id"])
	assert.Equal(t, "chunk_000.wav", manifest[0]["file"])
	assert.Equal(t, 0.0, manifest[0]["start"])
	assert.Equal(t, 120.0, manifest[0]["end"])

	var turns []SpeakerTurn
	readJSON(t, filepath.Join(run.BaseDir, DiarizationFile), &turns)
	assert.Equal(t, run.Diarization, turns)

	var segments []TranscriptSegment
	readJSON(t, filepath.Join(run.BaseDir, STTFile), &segments)
	assert.Equal(t, run.STT, segments)

	var merged []MergedSegment
	readJSON(t, filepath.Join(run.BaseDir, MergedFile), &merged)
	assert.Equal(t, run.MergedTranscript, merged)

	var categories CategoryResult
	readJSON(t, filepath.Join(run.BaseDir, CategoriesFile), &categories)
	assert.Equal(t, *run.Categories, categories)

	text, err := os.ReadFile(filepath.Join(run.BaseDir, SpeakerAttributedTextFile))
	require.NoError(t, err)
	assert.Equal(t, run.SpeakerAttributedText, string(text))

	summary, err := os.ReadFile(filepath.Join(run.BaseDir, SummaryFile))
	require.NoError(t, err)
	assert.Equal(t, "summary body", string(summary))
}

func TestPersistArtifactsWritesEmptySummaryWhenSourced(t *testing.T) {
	run := newRun(t)
	run.Summary = ""
	run.SummarySource = "fallback"

	PersistArtifacts(run)

	data, err := os.ReadFile(filepath.Join(run.BaseDir, SummaryFile))
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestPersistArtifactsOverwritesPriorRun(t *testing.T) {
	run := newRun(t)
	run.Summary = "first"
	run.SummarySource = "llm"
	PersistArtifacts(run)

	run.Summary = "second"
	PersistArtifacts(run)

	data, err := os.ReadFile(filepath.Join(run.BaseDir, SummaryFile))
	require.NoError(t, err)
	assert.Equal(t, "second", string(data))
}

func TestPersistArtifactsMissingChunkAudioStillWritesManifest(t *testing.T) {
	run := newRun(t)
	run.Chunks = []*AudioChunk{{ID: "chunk0", FilePath: filepath.Join(t.TempDir(), "gone.wav"), Start: 0, End: 10}}

	PersistArtifacts(run)

	var manifest []map[string]any
	readJSON(t, filepath.Join(run.BaseDir, ChunksManifestFile), &manifest)
	require.Len(t, manifest, 1)
	assert.Equal(t, "chunk0", manifest[0]["id"])
}

func readJSON(t *testing.T, path string, v any) {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, v))
}
