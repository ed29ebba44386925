package pipeline

import "context"

// StageResult is the outcome of one stage. Success=false is fatal for the
// run and halts the remaining stages. Message is an optional diagnostic,
// always logged. A stage may succeed with fallback data after a soft
// failure, recording what happened in Message.
type StageResult struct {
	Name    string
	Success bool
	Data    any
	Message string
}

// Stage is a single unit of pipeline work. Stages read their inputs from
// the run context and write their outputs back under agreed keys; they
// never panic or return errors across the boundary, translating failures
// into the StageResult instead.
type Stage interface {
	Name() string
	Run(ctx context.Context, run *RunContext) StageResult
}
