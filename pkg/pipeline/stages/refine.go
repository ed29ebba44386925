package stages

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/pipeline"
)

const (
	refineTruncateChars = 6000
	refineTemperature   = 0.2
	refineMaxTokens     = 1024
)

// Refine produces the structured summary, conditioned on the categorized
// document type. When the summarizer LLM is unavailable or errors, the
// deterministic speaker-attributed transcript stands in for the summary.
// Always succeeds and always writes summary.txt.
type Refine struct{}

// NewRefine creates the refine stage.
func NewRefine() *Refine {
	return &Refine{}
}

func (s *Refine) Name() string { return "refine" }

func (s *Refine) Run(ctx context.Context, run *pipeline.RunContext) pipeline.StageResult {
	log := slog.With("run_id", run.RunID, "stage", s.Name())

	documentType := run.DocumentType()
	run.Resources.ReleaseASR(ctx)

	sourceText := cascadeText(run)
	if sourceText == "" {
		sourceText = stripThinkTags(strings.Join(transcriptLines(run), "\n"))
	}
	if sourceText == "" {
		run.Summary = ""
		run.SummarySource = ""
		writeSummaryFile(run, "", log)
		return pipeline.StageResult{
			Name:    s.Name(),
			Success: true,
			Data:    "",
			Message: "no transcript text available; produced empty summary",
		}
	}

	var summary, source, message string
	llm := run.Resources.SummarizerLLM(ctx)
	if llm == nil {
		summary = fallbackSummary(run, sourceText)
		source = "fallback"
		message = "summarizer LLM unavailable; used fallback formatting"
	} else {
		generated := summarizeWithLLM(ctx, llm, run.Config.SystemPrompt(documentType), documentType, sourceText)
		if generated != "" {
			summary = generated
			source = "llm"
		} else {
			summary = fallbackSummary(run, sourceText)
			source = "fallback"
			message = "LLM summarization failed; used fallback formatting"
		}
	}

	summary = stripThinkTags(summary)
	run.Summary = summary
	run.SummarySource = source
	writeSummaryFile(run, summary, log)

	log.Info("Generated summary", "source", source, "length", len(summary))
	return pipeline.StageResult{Name: s.Name(), Success: true, Data: summary, Message: message}
}

// summarizeWithLLM generates the structured summary. Returns "" on error
// so the caller can fall back.
func summarizeWithLLM(ctx context.Context, llm model.ChatClient, systemPrompt, documentType, sourceText string) string {
	prompt := truncateRunes(strings.TrimSpace(sourceText), refineTruncateChars)
	userContent := fmt.Sprintf(
		"Document type: %s\n\nProduce a structured summary following the requested format.\n\nSource text:\n%s",
		documentType, prompt,
	)

	content, err := llm.Complete(ctx, []model.Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: userContent},
	}, refineTemperature, refineMaxTokens)
	if err != nil {
		slog.Warn("LLM summary generation failed", "error", err)
		return ""
	}
	return stripThinkTags(strings.TrimSpace(content))
}

// fallbackSummary renders the deterministic transcript, or the raw source
// text when no segments survived.
func fallbackSummary(run *pipeline.RunContext, sourceText string) string {
	if lines := transcriptLines(run); len(lines) > 0 {
		return stripThinkTags(strings.Join(lines, "\n"))
	}
	return stripThinkTags(sourceText)
}

func writeSummaryFile(run *pipeline.RunContext, summary string, log *slog.Logger) {
	if err := os.MkdirAll(run.BaseDir, 0o755); err != nil {
		log.Warn("Failed to create run directory", "error", err)
		return
	}
	path := filepath.Join(run.BaseDir, pipeline.SummaryFile)
	if err := os.WriteFile(path, []byte(stripThinkTags(summary)), 0o644); err != nil {
		log.Warn("Failed to write summary file", "error", err)
	}
}
