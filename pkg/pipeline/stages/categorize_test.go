package stages

import (
	"context"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/pipeline"
)

func TestCategorizeEmptyTranscript(t *testing.T) {
	run := newTestRun(t, nil)

	result := NewCategorize().Run(context.Background(), run)
	require.True(t, result.Success)
	require.NotNil(t, run.Categories)
	assert.Equal(t, pipeline.DocTypeConversation, run.Categories.DocumentType)
	assert.Equal(t, "empty", run.Categories.Source)
}

func TestCategorizeHeuristicMeeting(t *testing.T) {
	run := newTestRun(t, nil)
	run.SpeakerAttributedText = "A: 오늘 회의 시작하겠습니다\nB: 회의 안건부터 보시죠"

	result := NewCategorize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, pipeline.DocTypeMeeting, run.Categories.DocumentType)
	assert.Equal(t, "heuristic", run.Categories.Source)
}

func TestCategorizeHeuristicLecture(t *testing.T) {
	run := newTestRun(t, nil)
	run.SpeakerAttributedText = "A: 오늘 강의에서는 교수님이 수업 자료를 설명합니다"

	result := NewCategorize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, pipeline.DocTypeLecture, run.Categories.DocumentType)
	assert.Equal(t, "heuristic", run.Categories.Source)
}

func TestCategorizeHeuristicTieIsConversation(t *testing.T) {
	assert.Equal(t, pipeline.DocTypeConversation, heuristicLabel("회의 강의"))
	assert.Equal(t, pipeline.DocTypeConversation, heuristicLabel("nothing matches here"))
}

func TestCategorizeLLMLabel(t *testing.T) {
	var gotTemp float32
	var gotMaxTokens int
	var gotSystem string
	classifier := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		gotTemp = temperature
		gotMaxTokens = maxTokens
		require.Len(t, messages, 2)
		gotSystem = messages[0].Content
		return "LECTURE", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, classifier, nil))
	run.SpeakerAttributedText = "A: some content"

	result := NewCategorize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, pipeline.DocTypeLecture, run.Categories.DocumentType)
	assert.Equal(t, "llm", run.Categories.Source)
	assert.Equal(t, float32(0), gotTemp)
	assert.Equal(t, 8, gotMaxTokens)
	assert.Equal(t, run.Config.CategorizePrompt(), gotSystem)
}

func TestCategorizeLLMErrorFallsBackToHeuristic(t *testing.T) {
	classifier := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		return "", errors.New("model crashed")
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, classifier, nil))
	run.SpeakerAttributedText = "A: meeting agenda for today"

	result := NewCategorize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, pipeline.DocTypeMeeting, run.Categories.DocumentType)
	assert.Equal(t, "heuristic", run.Categories.Source)
	assert.NotEmpty(t, result.Message)
}

func TestCategorizeTruncatesLLMInput(t *testing.T) {
	var gotPrompt string
	classifier := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		gotPrompt = messages[1].Content
		return "CONVERSATION", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, classifier, nil))
	run.SpeakerAttributedText = "A: " + strings.Repeat("x", categorizeTruncateChars+500)

	result := NewCategorize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Len(t, gotPrompt, categorizeTruncateChars)
}

func TestCategorizeTruncatesKoreanByCharacters(t *testing.T) {
	var gotPrompt string
	classifier := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		gotPrompt = messages[1].Content
		return "MEETING", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, classifier, nil))
	// 2x the character budget in 3-byte hangul runes.
	run.SpeakerAttributedText = strings.Repeat("회의", categorizeTruncateChars)

	result := NewCategorize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.True(t, utf8.ValidString(gotPrompt))
	assert.Equal(t, categorizeTruncateChars, utf8.RuneCountInString(gotPrompt))
}

func TestTruncateRunes(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		limit int
		want  string
	}{
		{"short ascii unchanged", "hello", 10, "hello"},
		{"exactly at limit", "abcd", 4, "abcd"},
		{"ascii cut", "abcdef", 3, "abc"},
		{"hangul cut at rune boundary", "가나다라", 2, "가나"},
		{"mixed ascii and hangul", "a가b나c", 3, "a가b"},
		{"empty", "", 5, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateRunes(tt.text, tt.limit)
			assert.Equal(t, tt.want, got)
			assert.True(t, utf8.ValidString(got))
		})
	}
}

func TestCategorizeFallsBackToSTTText(t *testing.T) {
	run := newTestRun(t, nil)
	run.STT = []pipeline.TranscriptSegment{
		{Start: 0, End: 2, Text: "회의 시작"},
		{Start: 2, End: 4, Text: "  "},
		{Start: 4, End: 6, Text: "회의 종료"},
	}

	result := NewCategorize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, pipeline.DocTypeMeeting, run.Categories.DocumentType)
	assert.Equal(t, "heuristic", run.Categories.Source)
}

func TestNormalizeLabel(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"MEETING", pipeline.DocTypeMeeting},
		{"The answer is LECTURE.", pipeline.DocTypeLecture},
		{"conversation", pipeline.DocTypeConversation},
		{"this is a dialog between two people", pipeline.DocTypeConversation},
		{"a chat transcript", pipeline.DocTypeConversation},
		{"college course recording", pipeline.DocTypeLecture},
		{"a class session", pipeline.DocTypeLecture},
		{"minutes of the board", pipeline.DocTypeMeeting},
		{"gibberish", pipeline.DocTypeConversation},
		{"", pipeline.DocTypeConversation},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeLabel(tt.raw), "raw=%q", tt.raw)
	}
}

func TestStripThinkTags(t *testing.T) {
	assert.Equal(t, "MEETING", stripThinkTags("<think>let me reason\nabout this</think>MEETING"))
	assert.Equal(t, "plain", stripThinkTags("plain"))
	assert.Equal(t, "before  after", stripThinkTags("before <THINK>x</THINK> after"))
	assert.Equal(t, "", stripThinkTags("<think>only reasoning</think>"))
}

func TestCategorizeStripsThinkTagsFromLLMResponse(t *testing.T) {
	classifier := chatFunc(func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
		return "<think>hmm</think>\nMEETING", nil
	})

	run := newTestRun(t, model.NewStaticResources(nil, nil, classifier, nil))
	run.SpeakerAttributedText = "A: hello"

	result := NewCategorize().Run(context.Background(), run)
	require.True(t, result.Success)
	assert.Equal(t, pipeline.DocTypeMeeting, run.Categories.DocumentType)
	assert.Equal(t, "llm", run.Categories.Source)
}
