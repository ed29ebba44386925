package queue

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/jobstagelog"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/model"
	testdb "github.com/recapd/recapd/test/database"
)

func testQueueConfig() *config.QueueConfig {
	return &config.QueueConfig{
		WorkerCount:             1,
		MaxConcurrentJobs:       1,
		PollInterval:            50 * time.Millisecond,
		PollIntervalJitter:      10 * time.Millisecond,
		JobTimeout:              time.Minute,
		GracefulShutdownTimeout: time.Minute,
	}
}

func testPipelineConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		DataDir:      t.TempDir(),
		ProjectsRoot: t.TempDir(),
		Pipeline:     config.PipelineConfig{SegmentLengthSeconds: 1800},
	}
}

// echoASR returns one fixed transcript segment per chunk.
type echoASR struct{}

func (echoASR) Transcribe(ctx context.Context, audioPath, language, device string) (*model.Transcript, error) {
	return &model.Transcript{
		Segments: []model.RawSegment{{Start: 0, End: 5, Text: "hello from " + filepath.Base(audioPath)}},
		Language: language,
	}, nil
}

func createJobWithMaterial(t *testing.T, client *ent.Client, audioContent string) (*ent.SummaryJob, *ent.SourceMaterial) {
	t.Helper()
	ctx := context.Background()

	audio := filepath.Join(t.TempDir(), "recording.wav")
	require.NoError(t, os.WriteFile(audio, []byte(audioContent), 0o644))

	job, err := client.SummaryJob.Create().
		SetTitle("integration test job").
		Save(ctx)
	require.NoError(t, err)

	mat, err := client.SourceMaterial.Create().
		SetJobID(job.ID).
		SetSourceType("audio/wav").
		SetStoragePath(audio).
		Save(ctx)
	require.NoError(t, err)

	return job, mat
}

func newTestExecutor(client *ent.Client, cfg *config.Config, res *model.Resources) *Executor {
	return NewExecutor(client, cfg, nil, func() *model.Resources { return res })
}

func TestExecutorCompletesJob(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	job, mat := createJobWithMaterial(t, client.Client, "pcm bytes")
	res := model.NewStaticResources(echoASR{}, nil, nil, nil)
	exec := newTestExecutor(client.Client, testPipelineConfig(t), res)

	result := exec.Execute(ctx, job)
	require.NotNil(t, result)
	assert.Equal(t, summaryjob.StatusCOMPLETED, result.Status)
	assert.Contains(t, result.FinalSummary, "# integration test job 최종 요약")
	assert.NoError(t, result.Err)

	mat = client.SourceMaterial.GetX(ctx, mat.ID)
	assert.Equal(t, sourcematerial.StatusCOMPLETED, mat.Status)
	require.NotNil(t, mat.IndividualSummary)
	assert.NotEmpty(t, *mat.IndividualSummary)
	assert.Equal(t, result.FinalSummary, "# integration test job 최종 요약\n\n"+*mat.IndividualSummary)

	require.Contains(t, mat.OutputArtifacts, "run_id")
	require.Contains(t, mat.OutputArtifacts, "speaker_attributed_text_path")
	require.Contains(t, mat.OutputArtifacts, "individual_summary_path")

	summaryPath, ok := mat.OutputArtifacts["individual_summary_path"].(string)
	require.True(t, ok)
	assert.FileExists(t, summaryPath)

	segments, err := client.SpeakerSegment.Query().All(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, segments)
	assert.Equal(t, mat.ID, segments[0].MaterialID)
	assert.Contains(t, segments[0].Text, "hello from")

	logs, err := client.JobStageLog.Query().
		Where(jobstagelog.JobIDEQ(job.ID)).
		Order(ent.Asc(jobstagelog.FieldID)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.Equal(t, stageTranscribe, logs[0].StageName)
	assert.Equal(t, jobstagelog.StatusCOMPLETED, logs[0].Status)
	assert.Equal(t, stageSummarize, logs[1].StageName)
	assert.Equal(t, jobstagelog.StatusCOMPLETED, logs[1].Status)
}

func TestExecutorMissingSourceFileFailsMaterial(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	job, err := client.SummaryJob.Create().SetTitle("missing file").Save(ctx)
	require.NoError(t, err)
	mat, err := client.SourceMaterial.Create().
		SetJobID(job.ID).
		SetSourceType("audio/mpeg").
		SetStoragePath(filepath.Join(t.TempDir(), "does-not-exist.mp3")).
		Save(ctx)
	require.NoError(t, err)

	exec := newTestExecutor(client.Client, testPipelineConfig(t), model.NewStaticResources(nil, nil, nil, nil))
	result := exec.Execute(ctx, job)

	require.NotNil(t, result)
	assert.Equal(t, summaryjob.StatusFAILED, result.Status)
	require.Error(t, result.Err)
	assert.Equal(t, "1 of 1 files failed", result.Err.Error())

	mat = client.SourceMaterial.GetX(ctx, mat.ID)
	assert.Equal(t, sourcematerial.StatusFAILED, mat.Status)
}

func TestExecutorPartialFailureFailsJob(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	job, good := createJobWithMaterial(t, client.Client, "pcm bytes")
	bad, err := client.SourceMaterial.Create().
		SetJobID(job.ID).
		SetSourceType("audio/mpeg").
		SetStoragePath(filepath.Join(t.TempDir(), "gone.mp3")).
		Save(ctx)
	require.NoError(t, err)

	res := model.NewStaticResources(echoASR{}, nil, nil, nil)
	exec := newTestExecutor(client.Client, testPipelineConfig(t), res)
	result := exec.Execute(ctx, job)

	// The healthy material still completes; the job as a whole fails.
	require.NotNil(t, result)
	assert.Equal(t, summaryjob.StatusFAILED, result.Status)
	require.Error(t, result.Err)
	assert.Equal(t, "1 of 2 files failed", result.Err.Error())

	good = client.SourceMaterial.GetX(ctx, good.ID)
	assert.Equal(t, sourcematerial.StatusCOMPLETED, good.Status)
	require.NotNil(t, good.IndividualSummary)
	assert.NotEmpty(t, *good.IndividualSummary)

	bad = client.SourceMaterial.GetX(ctx, bad.ID)
	assert.Equal(t, sourcematerial.StatusFAILED, bad.Status)
}

func TestExecutorFailedStageFailsMaterial(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	job, mat := createJobWithMaterial(t, client.Client, "pcm bytes")

	// No ASR capability: the stt stage fails and halts the run.
	exec := newTestExecutor(client.Client, testPipelineConfig(t), model.NewStaticResources(nil, nil, nil, nil))
	result := exec.Execute(ctx, job)

	require.NotNil(t, result)
	assert.Equal(t, summaryjob.StatusFAILED, result.Status)
	require.Error(t, result.Err)
	assert.Equal(t, "1 of 1 files failed", result.Err.Error())

	mat = client.SourceMaterial.GetX(ctx, mat.ID)
	assert.Equal(t, sourcematerial.StatusFAILED, mat.Status)

	logs, err := client.JobStageLog.Query().
		Where(jobstagelog.JobIDEQ(job.ID), jobstagelog.StageNameEQ(stageTranscribe)).
		All(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	assert.Equal(t, jobstagelog.StatusFAILED, logs[0].Status)
}

func TestExecutorNoMaterials(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	job, err := client.SummaryJob.Create().SetTitle("empty").Save(ctx)
	require.NoError(t, err)

	exec := newTestExecutor(client.Client, testPipelineConfig(t), model.NewStaticResources(nil, nil, nil, nil))
	result := exec.Execute(ctx, job)

	require.NotNil(t, result)
	assert.Equal(t, summaryjob.StatusFAILED, result.Status)
	assert.ErrorContains(t, result.Err, "no source materials")
}

func TestExecutorKoreanOnlySubjectHintsLanguage(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	ws, err := client.Workspace.Create().SetName("ws").Save(ctx)
	require.NoError(t, err)
	subject, err := client.Subject.Create().
		SetWorkspaceID(ws.ID).
		SetName("korean lectures").
		SetIsKoreanOnly(true).
		Save(ctx)
	require.NoError(t, err)

	audio := filepath.Join(t.TempDir(), "lecture.wav")
	require.NoError(t, os.WriteFile(audio, []byte("pcm"), 0o644))

	job, err := client.SummaryJob.Create().
		SetTitle("korean job").
		SetSubjectID(subject.ID).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.SourceMaterial.Create().
		SetJobID(job.ID).
		SetSourceType("audio/wav").
		SetStoragePath(audio).
		Save(ctx)
	require.NoError(t, err)

	var gotLanguage string
	asr := languageRecordingASR{language: &gotLanguage}
	exec := newTestExecutor(client.Client, testPipelineConfig(t), model.NewStaticResources(asr, nil, nil, nil))

	result := exec.Execute(ctx, job)
	require.NotNil(t, result)
	assert.Equal(t, summaryjob.StatusCOMPLETED, result.Status)
	assert.Equal(t, "ko", gotLanguage)
}

type languageRecordingASR struct {
	language *string
}

func (a languageRecordingASR) Transcribe(ctx context.Context, audioPath, language, device string) (*model.Transcript, error) {
	*a.language = language
	return &model.Transcript{
		Segments: []model.RawSegment{{Start: 0, End: 5, Text: "안녕하세요"}},
		Language: language,
	}, nil
}

func TestWorkerClaimsOldestPendingJob(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	older, err := client.SummaryJob.Create().
		SetTitle("older").
		SetCreatedAt(time.Now().Add(-time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.SummaryJob.Create().SetTitle("newer").Save(ctx)
	require.NoError(t, err)

	w := NewWorker("w-0", client.Client, testQueueConfig(), nil, nil)

	claimed, err := w.claimNextJob(ctx)
	require.NoError(t, err)
	assert.Equal(t, older.ID, claimed.ID)
	assert.Equal(t, summaryjob.StatusPROCESSING, claimed.Status)
	require.NotNil(t, claimed.StartedAt)
}

func TestWorkerNoJobsAvailable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	w := NewWorker("w-0", client.Client, testQueueConfig(), nil, nil)

	_, err := w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

func TestWorkerDoesNotClaimProcessingJobs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	_, err := client.SummaryJob.Create().
		SetTitle("already claimed").
		SetStatus(summaryjob.StatusPROCESSING).
		Save(ctx)
	require.NoError(t, err)

	w := NewWorker("w-0", client.Client, testQueueConfig(), nil, nil)

	_, err = w.claimNextJob(ctx)
	assert.ErrorIs(t, err, ErrNoJobsAvailable)
}

// stubExecutor completes every job immediately.
type stubExecutor struct {
	executed chan int
}

func (s *stubExecutor) Execute(ctx context.Context, job *ent.SummaryJob) *ExecutionResult {
	select {
	case s.executed <- job.ID:
	default:
	}
	return &ExecutionResult{Status: summaryjob.StatusCOMPLETED, FinalSummary: "done"}
}

func TestWorkerPoolProcessesJobEndToEnd(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	job, err := client.SummaryJob.Create().SetTitle("pool job").Save(ctx)
	require.NoError(t, err)

	exec := &stubExecutor{executed: make(chan int, 1)}
	pool := NewWorkerPool(client.Client, testQueueConfig(), exec)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	select {
	case id := <-exec.executed:
		assert.Equal(t, job.ID, id)
	case <-time.After(10 * time.Second):
		t.Fatal("worker pool did not process the job in time")
	}

	require.Eventually(t, func() bool {
		j := client.SummaryJob.GetX(ctx, job.ID)
		return j.Status == summaryjob.StatusCOMPLETED
	}, 10*time.Second, 100*time.Millisecond)

	j := client.SummaryJob.GetX(ctx, job.ID)
	require.NotNil(t, j.FinalSummary)
	assert.Equal(t, "done", *j.FinalSummary)
	require.NotNil(t, j.CompletedAt)
}

func TestWorkerPoolHealth(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping DB integration test in short mode")
	}
	ctx := context.Background()
	client := testdb.NewTestClient(t)

	_, err := client.SummaryJob.Create().SetTitle("queued").Save(ctx)
	require.NoError(t, err)

	pool := NewWorkerPool(client.Client, testQueueConfig(), &stubExecutor{executed: make(chan int, 1)})
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	health := pool.Health()
	assert.True(t, health.DBReachable)
	assert.Equal(t, 1, health.TotalWorkers)
	assert.Len(t, health.WorkerStats, 1)
}
