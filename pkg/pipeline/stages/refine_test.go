package stages

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/pipeline"
)

func readSummaryFile(t *testing.T, run *pipeline.RunContext) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(run.BaseDir, pipeline.SummaryFile))
	require.NoError(t, err)
	return string(data)
}

func TestRefineEmptyTranscript(t *testing.T) {
	run := newTestRun(t, nil)

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Empty(t, run.Summary)
	assert.Empty(t, run.SummarySource)
	assert.Equal(t, "", readSummaryFile(t, run))
}

func TestRefineFallbackWithoutLLM(t *testing.T) {
	run := newTestRun(t, nil)
	run.MergedTranscript = []pipeline.MergedSegment{
		{Start: 0, End: 5, Text: "hello", Speaker: "A"},
		{Start: 5, End: 10, Text: "world", Speaker: "B"},
	}
	run.SpeakerAttributedText = "A: hello\nB: world"

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, "A: hello\nB: world", run.Summary)
	assert.Equal(t, "fallback", run.SummarySource)
	assert.Equal(t, run.Summary, readSummaryFile(t, run))
	assert.NotEmpty(t, result.Message)
}

func TestRefineLLMSummary(t *testing.T) {
	var gotTemp float32
	var gotMaxTokens int
	var gotSystem, gotUser string
	summarizer := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		gotTemp = temperature
		gotMaxTokens = maxTokens
		require.Len(t, messages, 2)
		gotSystem = messages[0].Content
		gotUser = messages[1].Content
		return "[제목] 테스트 요약", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, nil, summarizer))
	run.SpeakerAttributedText = "A: 오늘 회의를 시작합니다"
	run.Categories = &pipeline.CategoryResult{DocumentType: pipeline.DocTypeMeeting, Source: "llm"}

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, "[제목] 테스트 요약", run.Summary)
	assert.Equal(t, "llm", run.SummarySource)
	assert.Equal(t, float32(refineTemperature), gotTemp)
	assert.Equal(t, refineMaxTokens, gotMaxTokens)
	assert.Equal(t, run.Config.SystemPrompt(pipeline.DocTypeMeeting), gotSystem)
	assert.Contains(t, gotUser, "Document type: MEETING")
	assert.Contains(t, gotUser, "A: 오늘 회의를 시작합니다")
	assert.Equal(t, run.Summary, readSummaryFile(t, run))
}

func TestRefineLLMErrorFallsBack(t *testing.T) {
	summarizer := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		return "", errors.New("context deadline exceeded")
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, nil, summarizer))
	run.MergedTranscript = []pipeline.MergedSegment{{Start: 0, End: 5, Text: "hi", Speaker: "A"}}
	run.SpeakerAttributedText = "A: hi"

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, "A: hi", run.Summary)
	assert.Equal(t, "fallback", run.SummarySource)
	assert.NotEmpty(t, result.Message)
}

func TestRefineEmptyLLMResponseFallsBack(t *testing.T) {
	summarizer := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		return "   ", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, nil, summarizer))
	run.SpeakerAttributedText = "A: content"

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, "fallback", run.SummarySource)
}

func TestRefineTruncatesLLMInput(t *testing.T) {
	var gotUser string
	summarizer := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		gotUser = messages[1].Content
		return "summary", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, nil, summarizer))
	run.SpeakerAttributedText = "A: " + strings.Repeat("y", refineTruncateChars+1000)

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	idx := strings.Index(gotUser, "Source text:\n")
	require.GreaterOrEqual(t, idx, 0)
	assert.Len(t, gotUser[idx+len("Source text:\n"):], refineTruncateChars)
}

func TestRefineTruncatesKoreanByCharacters(t *testing.T) {
	var gotUser string
	summarizer := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		gotUser = messages[1].Content
		return "summary", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, nil, summarizer))
	run.SpeakerAttributedText = "A: " + strings.Repeat("요약", refineTruncateChars)

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	idx := strings.Index(gotUser, "Source text:\n")
	require.GreaterOrEqual(t, idx, 0)
	sent := gotUser[idx+len("Source text:\n"):]
	assert.True(t, utf8.ValidString(sent))
	assert.Equal(t, refineTruncateChars, utf8.RuneCountInString(sent))
}

func TestRefineDefaultsToConversationPrompt(t *testing.T) {
	var gotSystem string
	summarizer := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		gotSystem = messages[0].Content
		return "summary", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, nil, summarizer))
	run.SpeakerAttributedText = "A: hello"

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, run.Config.SystemPrompt(pipeline.DocTypeConversation), gotSystem)
}

func TestRefineFallbackUsesRawSTTWhenMergeEmpty(t *testing.T) {
	run := newTestRun(t, nil)
	run.STT = []pipeline.TranscriptSegment{
		{Start: 0, End: 2, Text: "first"},
		{Start: 2.5, End: 4, Text: "second"},
	}

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, "SPEAKER@0.00: first\nSPEAKER@2.50: second", run.Summary)
	assert.Equal(t, "fallback", run.SummarySource)
}

func TestRefineStripsThinkTagsFromSummary(t *testing.T) {
	summarizer := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		return "<think>internal reasoning</think>final summary", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, nil, summarizer))
	run.SpeakerAttributedText = "A: hello"

	result := NewRefine().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, "final summary", run.Summary)
	assert.Equal(t, "final summary", readSummaryFile(t, run))
}
