package stages

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sort"

	"github.com/recapd/recapd/pkg/media"
	"github.com/recapd/recapd/pkg/pipeline"
)

// Normalize converts the input to mono 16 kHz PCM and splits long
// recordings into fixed-length chunks.
type Normalize struct {
	transcoder *media.Transcoder
}

// NewNormalize creates the normalize stage over the given transcoder.
func NewNormalize(transcoder *media.Transcoder) *Normalize {
	return &Normalize{transcoder: transcoder}
}

func (s *Normalize) Name() string { return "normalize" }

// Run transcodes, probes the duration, and cuts the audio into chunks of
// at most SegmentLengthSeconds. A missing transcoder copies the input
// verbatim with duration 0; a transcode error is fatal; a segmenter error
// falls back to a single chunk.
func (s *Normalize) Run(ctx context.Context, run *pipeline.RunContext) pipeline.StageResult {
	log := slog.With("run_id", run.RunID, "stage", s.Name())

	stageDir := filepath.Join(run.BaseDir, "normalize")
	if err := os.MkdirAll(stageDir, 0o755); err != nil {
		return pipeline.StageResult{Name: s.Name(), Success: false, Message: fmt.Sprintf("failed to create stage directory: %v", err)}
	}
	normalizedPath := filepath.Join(stageDir, "normalized.wav")

	var duration float64
	var message string
	if s.transcoder != nil && s.transcoder.Available() {
		if err := s.transcoder.Normalize(ctx, run.InputFile, normalizedPath); err != nil {
			return pipeline.StageResult{Name: s.Name(), Success: false, Message: err.Error()}
		}
		duration = s.transcoder.Duration(ctx, normalizedPath)
		log.Info("Normalized input audio", "duration_seconds", duration)
	} else {
		if err := copyFileContents(run.InputFile, normalizedPath); err != nil {
			return pipeline.StageResult{Name: s.Name(), Success: false, Message: fmt.Sprintf("failed to copy input file: %v", err)}
		}
		duration = 0.0
		message = "transcoder unavailable; copied input without resampling"
		log.Warn("Transcoder unavailable, copied input verbatim")
	}

	segmentLength := run.Config.Pipeline.SegmentLengthSeconds
	var chunks []*pipeline.AudioChunk
	if duration > segmentLength {
		segmented, err := s.segment(ctx, stageDir, normalizedPath, duration, segmentLength)
		if err != nil {
			log.Warn("Segmentation failed, using single chunk", "error", err)
			if message == "" {
				message = fmt.Sprintf("segmentation failed, using single chunk: %v", err)
			}
		} else {
			chunks = segmented
		}
	}
	if len(chunks) == 0 {
		chunks = []*pipeline.AudioChunk{{
			ID:       "chunk0",
			FilePath: normalizedPath,
			Start:    0.0,
			End:      duration,
		}}
	}
	log.Info("Produced audio chunks", "count", len(chunks))

	run.Chunks = chunks
	run.NormalizedPath = normalizedPath
	return pipeline.StageResult{Name: s.Name(), Success: true, Data: chunks, Message: message}
}

// segment cuts the normalized audio into consecutive files of exactly
// segmentLength seconds except the last, which ends at duration.
func (s *Normalize) segment(ctx context.Context, stageDir, normalizedPath string, duration, segmentLength float64) ([]*pipeline.AudioChunk, error) {
	segmentsDir := filepath.Join(stageDir, "segments")
	if err := os.MkdirAll(segmentsDir, 0o755); err != nil {
		return nil, err
	}

	pattern := filepath.Join(segmentsDir, "chunk_%03d.wav")
	if err := s.transcoder.Segment(ctx, normalizedPath, pattern, segmentLength); err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(segmentsDir, "chunk_*.wav"))
	if err != nil || len(files) == 0 {
		return nil, fmt.Errorf("no segment files produced: %v", err)
	}
	sort.Strings(files)

	chunks := make([]*pipeline.AudioChunk, 0, len(files))
	for i, file := range files {
		start := float64(i) * segmentLength
		end := min(float64(i+1)*segmentLength, duration)
		chunks = append(chunks, &pipeline.AudioChunk{
			ID:       fmt.Sprintf("chunk%d", i),
			FilePath: file,
			Start:    start,
			End:      end,
		})
	}
	return chunks, nil
}

func copyFileContents(src, dst string) error {
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
