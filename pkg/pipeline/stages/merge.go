package stages

import (
	"context"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/recapd/recapd/pkg/pipeline"
)

const (
	unknownSpeaker = "UNKNOWN"

	// coalesceTolerance is the max gap between same-speaker segments that
	// still get joined.
	coalesceTolerance = 0.05
	// minSegmentDuration prunes fragments too short to be an utterance.
	minSegmentDuration = 1.0
)

var tokenPattern = regexp.MustCompile(`\S+\s*`)

// Merge fuses the diarization turns with the STT segments into a single
// speaker-attributed transcript, annotates the chunks with their dominant
// speakers, and writes speaker-attributed.txt.
type Merge struct{}

// NewMerge creates the merge stage.
func NewMerge() *Merge {
	return &Merge{}
}

func (s *Merge) Name() string { return "merge" }

// MergeData is the stage result payload: the merged segments plus a
// per-speaker utterance index.
type MergeData struct {
	Segments []pipeline.MergedSegment      `json:"segments"`
	Speakers map[string]SpeakerIndexEntry  `json:"speakers"`
}

// SpeakerIndexEntry aggregates one speaker's share of the transcript.
type SpeakerIndexEntry struct {
	UtteranceCount int     `json:"utterance_count"`
	TotalDuration  float64 `json:"total_duration"`
}

func (s *Merge) Run(ctx context.Context, run *pipeline.RunContext) pipeline.StageResult {
	log := slog.With("run_id", run.RunID, "stage", s.Name())
	log.Info("Merging transcripts with speaker turns",
		"transcripts", len(run.STT), "turns", len(run.Diarization))

	if len(run.STT) == 0 {
		run.MergedTranscript = []pipeline.MergedSegment{}
		return pipeline.StageResult{
			Name:    s.Name(),
			Success: true,
			Data:    &MergeData{Segments: []pipeline.MergedSegment{}, Speakers: map[string]SpeakerIndexEntry{}},
			Message: "no transcripts available to merge",
		}
	}

	var segments []pipeline.MergedSegment
	for _, seg := range run.STT {
		segments = append(segments, alignSegment(seg, run.Diarization)...)
	}
	segments = postProcess(segments)

	run.MergedTranscript = segments
	storeSpeakerTranscript(run, segments, log)
	annotateChunks(run.Chunks, segments)

	data := &MergeData{Segments: segments, Speakers: speakerIndex(segments)}
	log.Info("Produced merged segments", "segments", len(segments), "speakers", len(data.Speakers))

	var message string
	if len(run.Diarization) == 0 {
		message = "diarization unavailable; speaker labels default to UNKNOWN"
	}
	return pipeline.StageResult{Name: s.Name(), Success: true, Data: data, Message: message}
}

// alignSegment attributes one STT segment to its speakers. A segment
// overlapped by several turns is split proportionally to the overlap
// durations; otherwise the whole text goes to the best-matching speaker.
func alignSegment(seg pipeline.TranscriptSegment, turns []pipeline.SpeakerTurn) []pipeline.MergedSegment {
	base := pipeline.MergedSegment{
		Start:    seg.Start,
		End:      seg.End,
		Text:     seg.Text,
		Language: seg.Language,
		Speaker:  assignSpeaker(seg.Start, seg.End, turns),
	}

	if seg.Text == "" || len(turns) == 0 {
		return []pipeline.MergedSegment{base}
	}

	overlaps := overlappingTurns(seg.Start, seg.End, turns)
	if len(overlaps) == 0 {
		return []pipeline.MergedSegment{base}
	}
	if len(overlaps) == 1 {
		base.Start = overlaps[0].start
		base.End = overlaps[0].end
		base.Speaker = overlaps[0].speaker
		return []pipeline.MergedSegment{base}
	}

	pieces := splitTextByOverlap(seg.Text, overlaps)
	out := make([]pipeline.MergedSegment, 0, len(overlaps))
	for i, ov := range overlaps {
		text := strings.TrimSpace(pieces[i])
		if text == "" {
			continue
		}
		out = append(out, pipeline.MergedSegment{
			Start:    ov.start,
			End:      ov.end,
			Text:     text,
			Language: seg.Language,
			Speaker:  ov.speaker,
		})
	}
	if len(out) == 0 {
		return []pipeline.MergedSegment{base}
	}
	return out
}

// assignSpeaker picks the turn with maximum overlap, or, with no overlap
// anywhere, the temporally closest turn. No turns at all means UNKNOWN.
func assignSpeaker(start, end float64, turns []pipeline.SpeakerTurn) string {
	bestSpeaker := unknownSpeaker
	bestOverlap := 0.0
	closestSpeaker := unknownSpeaker
	closestGap := math.Inf(1)

	for _, turn := range turns {
		if turn.End <= turn.Start {
			continue
		}
		overlap := min(end, turn.End) - max(start, turn.Start)
		if overlap > bestOverlap && overlap > 0.0 {
			bestOverlap = overlap
			bestSpeaker = speakerOrUnknown(turn.Speaker)
		}
		gap := temporalGap(start, end, turn.Start, turn.End)
		if gap < closestGap {
			closestGap = gap
			closestSpeaker = speakerOrUnknown(turn.Speaker)
		}
	}

	if bestOverlap > 0.0 {
		return bestSpeaker
	}
	return closestSpeaker
}

type overlap struct {
	start   float64
	end     float64
	speaker string
}

// overlappingTurns returns the positive-length intersections with each
// turn, sorted by start.
func overlappingTurns(start, end float64, turns []pipeline.SpeakerTurn) []overlap {
	var overlaps []overlap
	for _, turn := range turns {
		if turn.End <= turn.Start {
			continue
		}
		os := max(start, turn.Start)
		oe := min(end, turn.End)
		if oe <= os {
			continue
		}
		overlaps = append(overlaps, overlap{start: os, end: oe, speaker: speakerOrUnknown(turn.Speaker)})
	}
	sort.SliceStable(overlaps, func(i, j int) bool { return overlaps[i].start < overlaps[j].start })
	return overlaps
}

// splitTextByOverlap apportions the text tokens across the overlaps by
// cumulative duration ratio. Tokens are non-space runs with their trailing
// whitespace, so concatenating pieces reproduces the original spacing.
// Boundary indexes round independently and are clamped non-decreasing.
func splitTextByOverlap(text string, overlaps []overlap) []string {
	tokens := tokenPattern.FindAllString(text, -1)
	if len(tokens) == 0 {
		return padPieces([]string{text}, len(overlaps))
	}

	total := 0.0
	for _, ov := range overlaps {
		total += max(0.0, ov.end-ov.start)
	}
	if total <= 0.0 {
		return padPieces([]string{text}, len(overlaps))
	}

	tokenCount := len(tokens)
	boundaries := []int{0}
	accumulated := 0.0
	for i, ov := range overlaps {
		accumulated += max(0.0, ov.end-ov.start)
		if i == len(overlaps)-1 {
			boundaries = append(boundaries, tokenCount)
			continue
		}
		ratio := accumulated / total
		boundary := int(math.Round(ratio * float64(tokenCount)))
		boundary = max(boundaries[len(boundaries)-1], min(tokenCount, boundary))
		boundaries = append(boundaries, boundary)
	}

	pieces := make([]string, 0, len(overlaps))
	for i := 1; i < len(boundaries); i++ {
		left := boundaries[i-1]
		right := max(left, boundaries[i])
		pieces = append(pieces, strings.Join(tokens[left:right], ""))
	}
	return padPieces(pieces, len(overlaps))
}

func padPieces(pieces []string, n int) []string {
	for len(pieces) < n {
		pieces = append(pieces, "")
	}
	return pieces
}

// postProcess orders the segments, coalesces adjacent same-speaker entries
// separated by at most coalesceTolerance, and prunes fragments shorter
// than minSegmentDuration.
func postProcess(segments []pipeline.MergedSegment) []pipeline.MergedSegment {
	if len(segments) == 0 {
		return []pipeline.MergedSegment{}
	}

	ordered := make([]pipeline.MergedSegment, len(segments))
	copy(ordered, segments)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].Start != ordered[j].Start {
			return ordered[i].Start < ordered[j].Start
		}
		return ordered[i].End < ordered[j].End
	})

	merged := make([]pipeline.MergedSegment, 0, len(ordered))
	for _, seg := range ordered {
		if len(merged) == 0 {
			merged = append(merged, seg)
			continue
		}
		last := &merged[len(merged)-1]
		if seg.Speaker != "" && seg.Speaker == last.Speaker && seg.Start-last.End <= coalesceTolerance {
			last.End = max(last.End, seg.End)
			last.Text = combineText(last.Text, seg.Text)
			if last.Language == "" {
				last.Language = seg.Language
			}
			continue
		}
		merged = append(merged, seg)
	}

	pruned := make([]pipeline.MergedSegment, 0, len(merged))
	for _, seg := range merged {
		if seg.End-seg.Start >= minSegmentDuration {
			pruned = append(pruned, seg)
		}
	}
	return pruned
}

func combineText(left, right string) string {
	left = strings.TrimSpace(left)
	right = strings.TrimSpace(right)
	if left != "" && right != "" {
		return left + " " + right
	}
	if left != "" {
		return left
	}
	return right
}

// storeSpeakerTranscript sets the in-memory attributed text and writes
// speaker-attributed.txt, after all merge computation is done.
func storeSpeakerTranscript(run *pipeline.RunContext, segments []pipeline.MergedSegment, log *slog.Logger) {
	lines := segmentsToLines(segments)
	if len(lines) == 0 {
		run.SpeakerAttributedText = ""
		return
	}
	text := strings.Join(lines, "\n")
	run.SpeakerAttributedText = text

	if err := os.MkdirAll(run.BaseDir, 0o755); err != nil {
		log.Warn("Failed to create run directory", "error", err)
		return
	}
	path := filepath.Join(run.BaseDir, pipeline.SpeakerAttributedTextFile)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		log.Warn("Failed to write speaker-attributed transcript", "error", err)
	}
}

// segmentsToLines renders "SPEAKER: text" lines, omitting empty texts and
// suppressing consecutive duplicates.
func segmentsToLines(segments []pipeline.MergedSegment) []string {
	var lines []string
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		speaker := seg.Speaker
		if speaker == "" {
			speaker = unknownSpeaker
		}
		line := speaker + ": " + text
		if len(lines) > 0 && lines[len(lines)-1] == line {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// annotateChunks aggregates each chunk's overlapping segment texts and its
// most frequent non-UNKNOWN speaker (ties go to the first seen).
func annotateChunks(chunks []*pipeline.AudioChunk, segments []pipeline.MergedSegment) {
	for _, chunk := range chunks {
		var texts []string
		counts := make(map[string]int)
		var order []string
		for _, seg := range segments {
			if max(chunk.Start, seg.Start) >= min(chunk.End, seg.End) {
				continue
			}
			if seg.Text != "" {
				texts = append(texts, seg.Text)
			}
			if seg.Speaker != "" && seg.Speaker != unknownSpeaker {
				if _, seen := counts[seg.Speaker]; !seen {
					order = append(order, seg.Speaker)
				}
				counts[seg.Speaker]++
			}
		}
		if len(texts) > 0 {
			chunk.Transcript = strings.Join(texts, " ")
		}
		best := ""
		bestCount := 0
		for _, speaker := range order {
			if counts[speaker] > bestCount {
				best = speaker
				bestCount = counts[speaker]
			}
		}
		if best != "" {
			chunk.Speaker = best
		}
	}
}

func speakerIndex(segments []pipeline.MergedSegment) map[string]SpeakerIndexEntry {
	index := make(map[string]SpeakerIndexEntry)
	for _, seg := range segments {
		speaker := seg.Speaker
		if speaker == "" {
			speaker = unknownSpeaker
		}
		entry := index[speaker]
		entry.UtteranceCount++
		entry.TotalDuration += max(0.0, seg.End-seg.Start)
		index[speaker] = entry
	}
	return index
}

func temporalGap(aStart, aEnd, bStart, bEnd float64) float64 {
	if max(aStart, bStart) < min(aEnd, bEnd) {
		return 0.0
	}
	if bEnd <= aStart {
		return aStart - bEnd
	}
	if aEnd <= bStart {
		return bStart - aEnd
	}
	return 0.0
}

func speakerOrUnknown(speaker string) string {
	if speaker == "" {
		return unknownSpeaker
	}
	return speaker
}
