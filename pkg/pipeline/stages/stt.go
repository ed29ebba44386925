package stages

import (
	"context"
	"log/slog"
	"strings"

	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/pipeline"
)

// Timing tolerances for STT segment filtering.
const (
	// chunkBoundTolerance allows minor drift between the segmenter's cut
	// points and the model's timestamps.
	chunkBoundTolerance = 0.5
	// minClampedDuration drops segments that collapse when clamped to the
	// chunk bounds.
	minClampedDuration = 1e-3
)

// STT transcribes each chunk and emits text segments on the global
// timeline. Accelerated inference gets one CPU retry per chunk; a chunk
// that fails both ways fails the stage with empty-transcript fallback
// entries so downstream stages can still run.
type STT struct{}

// NewSTT creates the speech-to-text stage.
func NewSTT() *STT {
	return &STT{}
}

func (s *STT) Name() string { return "stt" }

func (s *STT) Run(ctx context.Context, run *pipeline.RunContext) pipeline.StageResult {
	log := slog.With("run_id", run.RunID, "stage", s.Name())

	asr := run.Resources.ASR(ctx)
	if asr == nil {
		run.STT = emptyTranscripts(run.Chunks)
		log.Warn("ASR model unavailable, returning empty transcripts")
		return pipeline.StageResult{
			Name:    s.Name(),
			Success: false,
			Data:    run.STT,
			Message: "ASR model unavailable",
		}
	}

	device := "auto"
	segments := make([]pipeline.TranscriptSegment, 0)
	for _, chunk := range run.Chunks {
		result, err := asr.Transcribe(ctx, chunk.FilePath, run.Language, device)
		if err != nil && device == "auto" {
			log.Warn("Accelerated transcription failed, retrying on CPU", "chunk", chunk.ID, "error", err)
			// Stay on CPU for the remaining chunks once the accelerator
			// has failed.
			device = "cpu"
			result, err = asr.Transcribe(ctx, chunk.FilePath, run.Language, device)
		}
		if err != nil {
			run.STT = emptyTranscripts(run.Chunks)
			log.Error("Transcription failed", "chunk", chunk.ID, "error", err)
			return pipeline.StageResult{
				Name:    s.Name(),
				Success: false,
				Data:    run.STT,
				Message: err.Error(),
			}
		}
		segments = append(segments, filterSegments(chunk, result.Segments, result.Language)...)
	}

	run.STT = segments
	log.Info("Completed transcription", "segments", len(segments))
	return pipeline.StageResult{Name: s.Name(), Success: true, Data: segments}
}

// filterSegments shifts raw chunk-local segments onto the global timeline
// and applies the bound checks: zero-length rejects, out-of-chunk drops
// with a 0.5 s tolerance, clamping, and whitespace trimming.
func filterSegments(chunk *pipeline.AudioChunk, raw []model.RawSegment, language string) []pipeline.TranscriptSegment {
	hasBounds := chunk.End > chunk.Start
	out := make([]pipeline.TranscriptSegment, 0, len(raw))
	for _, seg := range raw {
		if seg.End <= seg.Start {
			continue
		}
		start := chunk.Start + seg.Start
		end := chunk.Start + seg.End
		if hasBounds {
			if end < chunk.Start-chunkBoundTolerance || start > chunk.End+chunkBoundTolerance {
				continue
			}
			start = max(start, chunk.Start)
			end = min(end, chunk.End)
			if end-start <= minClampedDuration {
				continue
			}
		}
		out = append(out, pipeline.TranscriptSegment{
			Start:    start,
			End:      end,
			Text:     strings.TrimSpace(seg.Text),
			Language: language,
		})
	}
	return out
}

func emptyTranscripts(chunks []*pipeline.AudioChunk) []pipeline.TranscriptSegment {
	out := make([]pipeline.TranscriptSegment, 0, len(chunks))
	for _, chunk := range chunks {
		out = append(out, pipeline.TranscriptSegment{
			Start: chunk.Start,
			End:   chunk.End,
			Text:  "",
		})
	}
	return out
}
