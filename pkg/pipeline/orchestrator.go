package pipeline

import (
	"context"
	"log/slog"
	"os"
)

// Orchestrator executes a fixed sequence of stages on a shared run
// context. A failed stage halts the remainder; artifacts are persisted
// exactly once regardless of how far the run got.
type Orchestrator struct {
	stages []Stage
}

// NewOrchestrator creates an orchestrator over the given stage sequence.
func NewOrchestrator(stages ...Stage) *Orchestrator {
	return &Orchestrator{stages: stages}
}

// Run executes the stages in order and returns their results. Execution
// stops after the first StageResult with Success=false. PersistArtifacts
// always runs before returning, so a halted run still leaves whatever it
// produced on disk.
func (o *Orchestrator) Run(ctx context.Context, run *RunContext) []StageResult {
	log := slog.With("run_id", run.RunID)

	if err := os.MkdirAll(run.BaseDir, 0o755); err != nil {
		log.Error("Failed to create run directory", "dir", run.BaseDir, "error", err)
		return []StageResult{{Name: "init", Success: false, Message: err.Error()}}
	}

	results := make([]StageResult, 0, len(o.stages))
	for _, stage := range o.stages {
		log.Info("Starting stage", "stage", stage.Name())
		result := stage.Run(ctx, run)
		results = append(results, result)

		if result.Message != "" {
			log.Info("Stage message", "stage", stage.Name(), "message", result.Message)
		}
		run.StageData[stage.Name()+"_result"] = result.Data

		if !result.Success {
			log.Error("Stage failed, halting pipeline", "stage", stage.Name())
			break
		}
		log.Info("Stage finished", "stage", stage.Name())

		if err := ctx.Err(); err != nil {
			log.Warn("Run canceled", "error", err)
			results = append(results, StageResult{Name: "canceled", Success: false, Message: err.Error()})
			break
		}
	}

	PersistArtifacts(run)
	log.Info("Run complete", "stages", len(results))
	return results
}
