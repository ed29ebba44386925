package queue

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/jobstagelog"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/media"
	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/pipeline"
	"github.com/recapd/recapd/pkg/pipeline/stages"
)

// Coordinator stage log names. These are the coarse phases of a job; the
// fine-grained pipeline stages log to slog and the run directory.
const (
	stageTranscribe = "transcribe"
	stageSummarize  = "summarize"
)

// ResourceFactory creates the per-run model resource manager. Each pipeline
// run gets its own lazily-loading instance.
type ResourceFactory func() *model.Resources

// Executor is the job coordinator: it runs the pipeline once per source
// material, persists summaries, speaker segments, and artifact pointers,
// and computes the job outcome.
type Executor struct {
	client     *ent.Client
	cfg        *config.Config
	transcoder *media.Transcoder
	resources  ResourceFactory
	now        func() time.Time
}

// NewExecutor creates a job executor.
func NewExecutor(client *ent.Client, cfg *config.Config, transcoder *media.Transcoder, resources ResourceFactory) *Executor {
	return &Executor{
		client:     client,
		cfg:        cfg,
		transcoder: transcoder,
		resources:  resources,
		now:        time.Now,
	}
}

// Execute processes all source materials of the job in creation order. A
// failed material does not stop the remaining ones; the outcome is computed
// after every material has been attempted.
func (e *Executor) Execute(ctx context.Context, job *ent.SummaryJob) *ExecutionResult {
	log := slog.With("job_id", job.ID)

	materials, err := e.client.SourceMaterial.Query().
		Where(sourcematerial.JobIDEQ(job.ID)).
		Order(ent.Asc(sourcematerial.FieldID)).
		All(ctx)
	if err != nil {
		return e.coordinatorFailure(ctx, job.ID, fmt.Errorf("loading source materials: %w", err))
	}
	if len(materials) == 0 {
		return &ExecutionResult{
			Status: summaryjob.StatusFAILED,
			Err:    fmt.Errorf("job has no source materials"),
		}
	}

	language, workspaceName, subjectName := e.jobContext(ctx, job)

	transcribeLog := e.openStageLog(ctx, job.ID, stageTranscribe)

	summaries := make([]string, 0, len(materials))
	failed := 0
	for _, mat := range materials {
		if err := ctx.Err(); err != nil {
			e.closeStageLog(ctx, transcribeLog, false)
			return e.coordinatorFailure(ctx, job.ID, fmt.Errorf("job interrupted: %w", err))
		}

		summary, err := e.processMaterial(ctx, job, mat, language, workspaceName, subjectName)
		if err != nil {
			failed++
			log.Warn("Source material failed", "material_id", mat.ID, "error", err)
			e.markMaterialFailed(ctx, mat.ID)
			continue
		}
		if summary != "" {
			summaries = append(summaries, summary)
		}
	}

	e.closeStageLog(ctx, transcribeLog, failed == 0)

	if failed > 0 {
		return &ExecutionResult{
			Status: summaryjob.StatusFAILED,
			Err:    fmt.Errorf("%d of %d files failed", failed, len(materials)),
		}
	}

	summarizeLog := e.openStageLog(ctx, job.ID, stageSummarize)
	final := assembleFinalSummary(job.Title, summaries)
	e.closeStageLog(ctx, summarizeLog, true)

	log.Info("Job completed", "materials", len(materials))
	return &ExecutionResult{Status: summaryjob.StatusCOMPLETED, FinalSummary: final}
}

// processMaterial runs the pipeline for one material and persists its
// results. Returns the individual summary text.
func (e *Executor) processMaterial(ctx context.Context, job *ent.SummaryJob, mat *ent.SourceMaterial, language, workspaceName, subjectName string) (string, error) {
	src := resolveSourcePath(e.cfg.ProjectsRoot, workspaceName, subjectName, mat.StoragePath)
	if _, err := os.Stat(src); err != nil {
		return "", fmt.Errorf("source file unavailable: %w", err)
	}

	if err := e.client.SourceMaterial.UpdateOneID(mat.ID).
		SetStatus(sourcematerial.StatusTRANSCRIBING).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("marking material transcribing: %w", err)
	}

	runID := formatRunID(e.now(), job.ID, mat.ID)
	baseDir := filepath.Join(e.cfg.RunsDir(), runID)

	run := pipeline.NewRunContext(runID, e.cfg, e.resources(), baseDir, src)
	run.Language = language

	orchestrator := pipeline.NewOrchestrator(stages.Default(e.transcoder)...)
	results := orchestrator.Run(ctx, run)
	if len(results) == 0 {
		return "", fmt.Errorf("pipeline produced no results")
	}
	if last := results[len(results)-1]; !last.Success {
		return "", fmt.Errorf("stage %s failed: %s", last.Name, last.Message)
	}

	if err := e.client.SourceMaterial.UpdateOneID(mat.ID).
		SetStatus(sourcematerial.StatusSUMMARIZING).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("marking material summarizing: %w", err)
	}

	if err := e.persistSpeakerSegments(ctx, mat.ID, run.MergedTranscript); err != nil {
		return "", fmt.Errorf("persisting speaker segments: %w", err)
	}

	artifacts := map[string]interface{}{
		"run_id":                       runID,
		"speaker_attributed_text_path": filepath.Join(baseDir, pipeline.SpeakerAttributedTextFile),
		"individual_summary_path":      filepath.Join(baseDir, pipeline.SummaryFile),
	}
	if err := e.client.SourceMaterial.UpdateOneID(mat.ID).
		SetStatus(sourcematerial.StatusCOMPLETED).
		SetIndividualSummary(run.Summary).
		SetOutputArtifacts(artifacts).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("marking material completed: %w", err)
	}

	return run.Summary, nil
}

// persistSpeakerSegments replaces the material's transcript rows with the
// merged segments of this run.
func (e *Executor) persistSpeakerSegments(ctx context.Context, materialID int, segments []pipeline.MergedSegment) error {
	if len(segments) == 0 {
		return nil
	}

	builders := make([]*ent.SpeakerSegmentCreate, 0, len(segments))
	for _, seg := range segments {
		builders = append(builders, e.client.SpeakerSegment.Create().
			SetMaterialID(materialID).
			SetSpeakerLabel(seg.Speaker).
			SetStartTimeSeconds(seg.Start).
			SetEndTimeSeconds(seg.End).
			SetText(seg.Text))
	}
	_, err := e.client.SpeakerSegment.CreateBulk(builders...).Save(ctx)
	return err
}

// jobContext resolves the subject-derived pipeline inputs: the ASR language
// hint and the workspace/subject directory names for source resolution.
// A job without a subject gets no hint and empty names.
func (e *Executor) jobContext(ctx context.Context, job *ent.SummaryJob) (language, workspaceName, subjectName string) {
	subject, err := job.QuerySubject().Only(ctx)
	if err != nil {
		if !ent.IsNotFound(err) {
			slog.Warn("Failed to load job subject", "job_id", job.ID, "error", err)
		}
		return "", "", ""
	}
	if subject.IsKoreanOnly {
		language = "ko"
	}
	subjectName = subject.Name

	workspace, err := subject.QueryWorkspace().Only(ctx)
	if err != nil {
		slog.Warn("Failed to load subject workspace", "subject_id", subject.ID, "error", err)
		return language, "", subjectName
	}
	return language, workspace.Name, subjectName
}

// coordinatorFailure marks any still-processing stage logs failed and
// produces a FAILED result. Used for errors of the coordinator itself, as
// opposed to per-material failures.
func (e *Executor) coordinatorFailure(ctx context.Context, jobID int, err error) *ExecutionResult {
	// The job context may already be cancelled.
	cleanupCtx := context.WithoutCancel(ctx)
	if _, uerr := e.client.JobStageLog.Update().
		Where(
			jobstagelog.JobIDEQ(jobID),
			jobstagelog.StatusEQ(jobstagelog.StatusPROCESSING),
		).
		SetStatus(jobstagelog.StatusFAILED).
		SetEndTime(e.now()).
		Save(cleanupCtx); uerr != nil {
		slog.Warn("Failed to close stage logs", "job_id", jobID, "error", uerr)
	}
	return &ExecutionResult{Status: summaryjob.StatusFAILED, Err: err}
}

func (e *Executor) markMaterialFailed(ctx context.Context, materialID int) {
	if err := e.client.SourceMaterial.UpdateOneID(materialID).
		SetStatus(sourcematerial.StatusFAILED).
		Exec(context.WithoutCancel(ctx)); err != nil {
		slog.Warn("Failed to mark material failed", "material_id", materialID, "error", err)
	}
}

func (e *Executor) openStageLog(ctx context.Context, jobID int, name string) *ent.JobStageLog {
	entry, err := e.client.JobStageLog.Create().
		SetJobID(jobID).
		SetStageName(name).
		SetStatus(jobstagelog.StatusPROCESSING).
		SetStartTime(e.now()).
		Save(ctx)
	if err != nil {
		slog.Warn("Failed to create stage log", "job_id", jobID, "stage", name, "error", err)
		return nil
	}
	return entry
}

func (e *Executor) closeStageLog(ctx context.Context, entry *ent.JobStageLog, success bool) {
	if entry == nil {
		return
	}
	status := jobstagelog.StatusCOMPLETED
	if !success {
		status = jobstagelog.StatusFAILED
	}
	if err := e.client.JobStageLog.UpdateOneID(entry.ID).
		SetStatus(status).
		SetEndTime(e.now()).
		Exec(context.WithoutCancel(ctx)); err != nil {
		slog.Warn("Failed to close stage log", "stage_log_id", entry.ID, "error", err)
	}
}

// resolveSourcePath resolves a material's storage path. Absolute paths are
// used as-is; relative ones resolve under the subject's project directory.
func resolveSourcePath(projectsRoot, workspaceName, subjectName, storagePath string) string {
	if filepath.IsAbs(storagePath) {
		return storagePath
	}
	return filepath.Join(projectsRoot, workspaceName, subjectName, storagePath)
}

// formatRunID builds the per-material run id: a sortable timestamp plus the
// job and material ids.
func formatRunID(t time.Time, jobID, materialID int) string {
	return fmt.Sprintf("%s-%d-%d", t.Format("20060102150405"), jobID, materialID)
}

// assembleFinalSummary joins the individual summaries under a job-level
// heading, separated by horizontal rules.
func assembleFinalSummary(title string, summaries []string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s 최종 요약\n\n", title)
	b.WriteString(strings.Join(summaries, "\n\n---\n\n"))
	return b.String()
}
