// Package queue provides the summary-job queue: a worker pool that claims
// pending jobs and drives them through the processing pipeline.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/summaryjob"
)

// Sentinel errors for queue operations.
var (
	// ErrNoJobsAvailable indicates no pending jobs are in the queue.
	ErrNoJobsAvailable = errors.New("no jobs available")

	// ErrAtCapacity indicates the global concurrent job limit has been reached.
	ErrAtCapacity = errors.New("at capacity")
)

// JobExecutor processes one claimed job end to end.
//
// The executor owns the job internals: material status transitions, stage
// logs, per-material pipeline runs, and summary/segment persistence, all
// written progressively during execution. The worker only handles claiming,
// the job timeout, and the terminal status update.
type JobExecutor interface {
	Execute(ctx context.Context, job *ent.SummaryJob) *ExecutionResult
}

// ExecutionResult is the terminal state of one job. Intermediate state
// (materials, segments, stage logs) was already written by the executor.
type ExecutionResult struct {
	Status       summaryjob.Status
	FinalSummary string
	Err          error
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	ActiveJobs    int            `json:"active_jobs"`
	MaxConcurrent int            `json:"max_concurrent"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  int       `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
