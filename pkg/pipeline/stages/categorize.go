package stages

import (
	"context"
	"log/slog"
	"strings"

	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/pipeline"
)

const categorizeTruncateChars = 4000

// Keyword cues for the heuristic classifier. The source material is mostly
// Korean, so the cue lists mix Korean and English terms.
var (
	meetingTerms = []string{"회의", "회의록", "agenda", "meeting", "의제", "협의", "참석자"}
	lectureTerms = []string{"강의", "lecture", "교수", "학생", "수업", "카리타지널", "슬라이드"}
)

// Categorize classifies the transcript into one of the three document
// types, via the classifier LLM when available and a keyword heuristic
// otherwise. The stage always succeeds.
type Categorize struct{}

// NewCategorize creates the categorize stage.
func NewCategorize() *Categorize {
	return &Categorize{}
}

func (s *Categorize) Name() string { return "categorize" }

func (s *Categorize) Run(ctx context.Context, run *pipeline.RunContext) pipeline.StageResult {
	log := slog.With("run_id", run.RunID, "stage", s.Name())

	text := cascadeText(run)
	if text == "" {
		text = stripThinkTags(sttText(run))
	}
	if text == "" {
		run.Categories = &pipeline.CategoryResult{DocumentType: pipeline.DocTypeConversation, Source: "empty"}
		return pipeline.StageResult{
			Name:    s.Name(),
			Success: true,
			Data:    run.Categories,
			Message: "transcript text is empty; defaulting to the conversation label",
		}
	}

	// Drop the ASR model before bringing up the LLM to cap peak memory.
	run.Resources.ReleaseASR(ctx)

	var label, source, message string
	llm := run.Resources.ClassifierLLM(ctx)
	if llm == nil {
		label = heuristicLabel(text)
		source = "heuristic"
		message = "classifier LLM unavailable; used heuristic classification"
	} else {
		label = classifyWithLLM(ctx, llm, run.Config.CategorizePrompt(), text)
		if label == "" {
			label = heuristicLabel(text)
			source = "heuristic"
			message = "LLM classification failed; used heuristic classification"
		} else {
			source = "llm"
		}
	}

	run.Categories = &pipeline.CategoryResult{DocumentType: label, Source: source}
	log.Info("Classified transcript", "document_type", label, "source", source)
	return pipeline.StageResult{Name: s.Name(), Success: true, Data: run.Categories, Message: message}
}

// classifyWithLLM asks the model for a label and normalizes the answer.
// Returns "" when the call fails, letting the caller fall back.
func classifyWithLLM(ctx context.Context, llm model.ChatClient, systemPrompt, text string) string {
	prompt := truncateRunes(strings.TrimSpace(text), categorizeTruncateChars)

	content, err := llm.Complete(ctx, []model.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: prompt},
	}, 0.0, 8)
	if err != nil {
		slog.Warn("LLM classification failed", "error", err)
		return ""
	}

	return normalizeLabel(stripThinkTags(strings.TrimSpace(content)))
}

// normalizeLabel maps an LLM response onto the canonical label set: exact
// label mentions win, then English aliases, then CONVERSATION.
func normalizeLabel(raw string) string {
	cleaned := strings.TrimSpace(raw)
	for _, label := range []string{pipeline.DocTypeConversation, pipeline.DocTypeLecture, pipeline.DocTypeMeeting} {
		if strings.Contains(strings.ToUpper(cleaned), label) {
			return label
		}
	}

	aliases := []struct {
		key   string
		label string
	}{
		{"dialog", pipeline.DocTypeConversation},
		{"conversation", pipeline.DocTypeConversation},
		{"chat", pipeline.DocTypeConversation},
		{"lecture", pipeline.DocTypeLecture},
		{"class", pipeline.DocTypeLecture},
		{"course", pipeline.DocTypeLecture},
		{"meeting", pipeline.DocTypeMeeting},
		{"minutes", pipeline.DocTypeMeeting},
	}
	lowered := strings.ToLower(cleaned)
	for _, alias := range aliases {
		if strings.Contains(lowered, alias.key) {
			return alias.label
		}
	}
	return pipeline.DocTypeConversation
}

// heuristicLabel scores meeting and lecture keyword occurrences in the
// lowered text. A label needs a strictly higher, strictly positive score
// to win; everything else is a conversation.
func heuristicLabel(text string) string {
	lowered := strings.ToLower(stripThinkTags(text))

	meetingScore := countTerms(lowered, meetingTerms)
	lectureScore := countTerms(lowered, lectureTerms)

	if meetingScore > lectureScore && meetingScore > 0 {
		return pipeline.DocTypeMeeting
	}
	if lectureScore > meetingScore && lectureScore > 0 {
		return pipeline.DocTypeLecture
	}
	return pipeline.DocTypeConversation
}

func countTerms(text string, terms []string) int {
	total := 0
	for _, term := range terms {
		total += strings.Count(text, strings.ToLower(term))
	}
	return total
}
