package stages

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/recapd/recapd/pkg/pipeline"
)

var thinkPattern = regexp.MustCompile(`(?is)<think>.*?</think>`)

// stripThinkTags removes <think>...</think> blocks, case-insensitive and
// spanning line breaks. Applied to both LLM inputs and outputs.
func stripThinkTags(text string) string {
	if !strings.Contains(strings.ToLower(text), "<think") {
		return text
	}
	return strings.TrimSpace(thinkPattern.ReplaceAllString(text, ""))
}

// truncateRunes caps text at limit characters, never splitting a UTF-8
// sequence. Byte slicing would cut Korean text to a third of the budget.
func truncateRunes(text string, limit int) string {
	if len(text) <= limit {
		return text
	}
	count := 0
	for i := range text {
		if count == limit {
			return text[:i]
		}
		count++
	}
	return text
}

// cascadeText resolves the transcript text for the LLM stages, trying the
// in-memory attributed transcript, the speaker-attributed.txt file, the
// in-memory summary, then the summary.txt file. Returns "" when none of
// them yield text; the callers have their own last-resort fallbacks.
func cascadeText(run *pipeline.RunContext) string {
	if text := strings.TrimSpace(run.SpeakerAttributedText); text != "" {
		return stripThinkTags(text)
	}
	if text := readRunFile(run, pipeline.SpeakerAttributedTextFile); text != "" {
		return stripThinkTags(text)
	}
	if text := strings.TrimSpace(run.Summary); text != "" {
		return stripThinkTags(text)
	}
	if text := readRunFile(run, pipeline.SummaryFile); text != "" {
		return stripThinkTags(text)
	}
	return ""
}

func readRunFile(run *pipeline.RunContext, name string) string {
	data, err := os.ReadFile(filepath.Join(run.BaseDir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

// sttText concatenates the non-empty STT segment texts, one per line.
func sttText(run *pipeline.RunContext) string {
	var collected []string
	for _, seg := range run.STT {
		if text := strings.TrimSpace(seg.Text); text != "" {
			collected = append(collected, text)
		}
	}
	return strings.Join(collected, "\n")
}

// transcriptLines renders "SPEAKER: text" lines from the merged transcript,
// falling back to the raw STT segments when the merge produced nothing.
// Used by the refine stage's deterministic fallback.
func transcriptLines(run *pipeline.RunContext) []string {
	segments := run.MergedTranscript
	if len(segments) == 0 {
		for _, seg := range run.STT {
			segments = append(segments, pipeline.MergedSegment{
				Start:    seg.Start,
				End:      seg.End,
				Text:     seg.Text,
				Language: seg.Language,
				Speaker:  fmt.Sprintf("SPEAKER@%.2f", seg.Start),
			})
		}
	}
	return segmentsToLines(segments)
}
