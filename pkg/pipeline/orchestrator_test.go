package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/model"
)

type stubStage struct {
	name   string
	result StageResult
	ran    *[]string
	effect func(run *RunContext)
}

func (s *stubStage) Name() string { return s.name }

func (s *stubStage) Run(ctx context.Context, run *RunContext) StageResult {
	if s.ran != nil {
		*s.ran = append(*s.ran, s.name)
	}
	if s.effect != nil {
		s.effect(run)
	}
	result := s.result
	result.Name = s.name
	return result
}

func newRun(t *testing.T) *RunContext {
	t.Helper()
	cfg := &config.Config{Pipeline: config.PipelineConfig{SegmentLengthSeconds: 1800}}
	res := model.NewStaticResources(nil, nil, nil, nil)
	return NewRunContext("run-1", cfg, res, t.TempDir(), "input.wav")
}

func TestOrchestratorRunsAllStages(t *testing.T) {
	var ran []string
	o := NewOrchestrator(
		&stubStage{name: "first", result: StageResult{Success: true, Data: "d1"}, ran: &ran},
		&stubStage{name: "second", result: StageResult{Success: true, Data: 42}, ran: &ran},
	)

	run := newRun(t)
	results := o.Run(context.Background(), run)

	require.Len(t, results, 2)
	assert.Equal(t, []string{"first", "second"}, ran)
	assert.Equal(t, "d1", run.StageData["first_result"])
	assert.Equal(t, 42, run.StageData["second_result"])
}

func TestOrchestratorHaltsOnFailure(t *testing.T) {
	var ran []string
	o := NewOrchestrator(
		&stubStage{name: "first", result: StageResult{Success: true}, ran: &ran},
		&stubStage{name: "second", result: StageResult{Success: false, Message: "broken"}, ran: &ran},
		&stubStage{name: "third", result: StageResult{Success: true}, ran: &ran},
	)

	run := newRun(t)
	results := o.Run(context.Background(), run)

	require.Len(t, results, 2)
	assert.Equal(t, []string{"first", "second"}, ran)
	assert.False(t, results[1].Success)
	assert.Equal(t, "broken", results[1].Message)
}

func TestOrchestratorPersistsArtifactsOnFailure(t *testing.T) {
	o := NewOrchestrator(
		&stubStage{name: "produce", result: StageResult{Success: true}, effect: func(run *RunContext) {
			run.SpeakerAttributedText = "A: partial output"
		}},
		&stubStage{name: "fail", result: StageResult{Success: false, Message: "boom"}},
	)

	run := newRun(t)
	o.Run(context.Background(), run)

	data, err := os.ReadFile(filepath.Join(run.BaseDir, SpeakerAttributedTextFile))
	require.NoError(t, err)
	assert.Equal(t, "A: partial output", string(data))
}

func TestOrchestratorStopsOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	var ran []string
	o := NewOrchestrator(
		&stubStage{name: "first", result: StageResult{Success: true}, ran: &ran, effect: func(run *RunContext) {
			cancel()
		}},
		&stubStage{name: "second", result: StageResult{Success: true}, ran: &ran},
	)

	run := newRun(t)
	results := o.Run(ctx, run)

	assert.Equal(t, []string{"first"}, ran)
	require.Len(t, results, 2)
	assert.Equal(t, "canceled", results[1].Name)
	assert.False(t, results[1].Success)
}

func TestOrchestratorUnwritableBaseDir(t *testing.T) {
	run := newRun(t)
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))
	run.BaseDir = filepath.Join(blocker, "nested")

	results := NewOrchestrator(&stubStage{name: "first", result: StageResult{Success: true}}).
		Run(context.Background(), run)

	require.Len(t, results, 1)
	assert.Equal(t, "init", results[0].Name)
	assert.False(t, results[0].Success)
}

func TestDocumentTypeDefault(t *testing.T) {
	run := newRun(t)
	assert.Equal(t, DocTypeConversation, run.DocumentType())

	run.Categories = &CategoryResult{DocumentType: "", Source: "empty"}
	assert.Equal(t, DocTypeConversation, run.DocumentType())

	run.Categories = &CategoryResult{DocumentType: DocTypeLecture, Source: "llm"}
	assert.Equal(t, DocTypeLecture, run.DocumentType())
}
