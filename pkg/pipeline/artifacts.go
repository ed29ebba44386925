package pipeline

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Artifact filenames within a run directory.
const (
	ChunksManifestFile        = "chunks_manifest.json"
	DiarizationFile           = "diarization.json"
	STTFile                   = "stt.json"
	MergedFile                = "merged.json"
	CategoriesFile            = "categories.json"
	SpeakerAttributedTextFile = "speaker-attributed.txt"
	SummaryFile               = "summary.txt"
)

type chunkManifestEntry struct {
	ID    string  `json:"id"`
	File  string  `json:"file"`
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// PersistArtifacts writes the run's accumulated outputs into the run
// directory: chunk audio copies with a manifest, the serialized stage
// outputs, the speaker-attributed transcript, and the summary. Writes are
// best-effort; failures are logged and do not abort persistence. Rewriting
// the same run id overwrites prior files.
func PersistArtifacts(run *RunContext) {
	log := slog.With("run_id", run.RunID)

	if err := os.MkdirAll(run.BaseDir, 0o755); err != nil {
		log.Error("Failed to create run directory", "dir", run.BaseDir, "error", err)
		return
	}

	if len(run.Chunks) > 0 {
		persistChunks(run, log)
	}
	if run.Diarization != nil {
		writeJSON(filepath.Join(run.BaseDir, DiarizationFile), run.Diarization, log)
	}
	if run.STT != nil {
		writeJSON(filepath.Join(run.BaseDir, STTFile), run.STT, log)
	}
	if run.MergedTranscript != nil {
		writeJSON(filepath.Join(run.BaseDir, MergedFile), run.MergedTranscript, log)
	}
	if run.Categories != nil {
		writeJSON(filepath.Join(run.BaseDir, CategoriesFile), run.Categories, log)
	}
	if run.SpeakerAttributedText != "" {
		writeText(filepath.Join(run.BaseDir, SpeakerAttributedTextFile), run.SpeakerAttributedText, log)
	}
	if run.Summary != "" || run.SummarySource != "" {
		writeText(filepath.Join(run.BaseDir, SummaryFile), run.Summary, log)
	}
}

// persistChunks copies chunk audio files into <run>/chunks and writes the
// manifest describing them. A failed copy still gets a manifest entry so
// the timeline stays complete.
func persistChunks(run *RunContext, log *slog.Logger) {
	chunksDir := filepath.Join(run.BaseDir, "chunks")
	if err := os.MkdirAll(chunksDir, 0o755); err != nil {
		log.Warn("Failed to create chunks directory", "error", err)
		return
	}

	manifest := make([]chunkManifestEntry, 0, len(run.Chunks))
	for _, chunk := range run.Chunks {
		name := filepath.Base(chunk.FilePath)
		if err := copyFile(chunk.FilePath, filepath.Join(chunksDir, name)); err != nil {
			log.Warn("Failed to copy chunk audio", "chunk", chunk.ID, "error", err)
		}
		manifest = append(manifest, chunkManifestEntry{
			ID:    chunk.ID,
			File:  name,
			Start: chunk.Start,
			End:   chunk.End,
		})
	}

	writeJSON(filepath.Join(run.BaseDir, ChunksManifestFile), manifest, log)
}

func writeJSON(path string, v any, log *slog.Logger) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		log.Warn("Failed to serialize artifact", "path", path, "error", err)
		return
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		log.Warn("Failed to write artifact", "path", path, "error", err)
	}
}

func writeText(path, text string, log *slog.Logger) {
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		log.Warn("Failed to write artifact", "path", path, "error", err)
	}
}

func copyFile(src, dst string) error {
	if src == dst {
		return nil
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
