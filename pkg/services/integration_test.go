package services

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/pkg/models"
	testdb "github.com/recapd/recapd/test/database"
)

type serviceFixture struct {
	client     *ent.Client
	workspaces *WorkspaceService
	subjects   *SubjectService
	jobs       *JobService
	runsDir    string
	uploadDir  string
}

func newServiceFixture(t *testing.T) *serviceFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	runsDir := t.TempDir()
	uploadDir := t.TempDir()
	cleaner := NewArtifactCleaner(runsDir, uploadDir)
	return &serviceFixture{
		client:     client,
		workspaces: NewWorkspaceService(client, cleaner),
		subjects:   NewSubjectService(client, cleaner),
		jobs:       NewJobService(client, cleaner),
		runsDir:    runsDir,
		uploadDir:  uploadDir,
	}
}

func TestWorkspaceServiceLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newServiceFixture(t)
	ctx := context.Background()

	ws, err := f.workspaces.CreateWorkspace(ctx, models.CreateWorkspaceRequest{Name: "uni", Description: "lectures"})
	require.NoError(t, err)
	require.NotZero(t, ws.ID)

	_, err = f.workspaces.CreateWorkspace(ctx, models.CreateWorkspaceRequest{Name: "uni"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	_, err = f.workspaces.CreateWorkspace(ctx, models.CreateWorkspaceRequest{})
	assert.True(t, IsValidationError(err))

	got, err := f.workspaces.GetWorkspace(ctx, ws.ID)
	require.NoError(t, err)
	assert.Equal(t, "uni", got.Name)

	list, err := f.workspaces.ListWorkspaces(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, f.workspaces.DeleteWorkspace(ctx, ws.ID))
	_, err = f.workspaces.GetWorkspace(ctx, ws.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, f.workspaces.DeleteWorkspace(ctx, ws.ID), ErrNotFound)
}

func TestSubjectServiceValidation(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newServiceFixture(t)
	ctx := context.Background()

	ws, err := f.workspaces.CreateWorkspace(ctx, models.CreateWorkspaceRequest{Name: "school"})
	require.NoError(t, err)

	_, err = f.subjects.CreateSubject(ctx, models.CreateSubjectRequest{WorkspaceID: ws.ID})
	assert.True(t, IsValidationError(err))

	_, err = f.subjects.CreateSubject(ctx, models.CreateSubjectRequest{WorkspaceID: 99999, Name: "orphan"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	subj, err := f.subjects.CreateSubject(ctx, models.CreateSubjectRequest{
		WorkspaceID: ws.ID, Name: "korean history", IsKoreanOnly: true,
	})
	require.NoError(t, err)
	assert.True(t, subj.IsKoreanOnly)

	_, err = f.subjects.CreateSubject(ctx, models.CreateSubjectRequest{WorkspaceID: ws.ID, Name: "korean history"})
	assert.ErrorIs(t, err, ErrAlreadyExists)

	filtered, err := f.subjects.ListSubjects(ctx, &ws.ID)
	require.NoError(t, err)
	assert.Len(t, filtered, 1)
}

func TestJobServiceLifecycle(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newServiceFixture(t)
	ctx := context.Background()

	_, err := f.jobs.CreateJob(ctx, "", nil)
	assert.True(t, IsValidationError(err))

	bogus := 99999
	_, err = f.jobs.CreateJob(ctx, "orphan", &bogus)
	assert.ErrorIs(t, err, ErrInvalidInput)

	job, err := f.jobs.CreateJob(ctx, "weekly sync", nil)
	require.NoError(t, err)
	assert.Equal(t, summaryjob.StatusPENDING, job.Status)

	err = f.jobs.AddMaterials(ctx, job.ID, nil)
	assert.True(t, IsValidationError(err))

	require.NoError(t, f.jobs.AddMaterials(ctx, job.ID, []models.MaterialInput{
		{SourceType: "audio/wav", OriginalFilename: "sync.wav", StoragePath: "/tmp/sync.wav", FileSizeBytes: 1024},
	}))

	got, err := f.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	require.Len(t, got.Edges.SourceMaterials, 1)
	assert.Equal(t, "audio/wav", got.Edges.SourceMaterials[0].SourceType)

	_, err = f.jobs.GetFinalSummary(ctx, job.ID)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.jobs.GetJob(ctx, 99999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestJobServiceFinalSummaryOfCompletedJob(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newServiceFixture(t)
	ctx := context.Background()

	job, err := f.jobs.CreateJob(ctx, "done", nil)
	require.NoError(t, err)
	_, err = f.client.SummaryJob.UpdateOneID(job.ID).
		SetStatus(summaryjob.StatusCOMPLETED).
		SetFinalSummary("# done 최종 요약\n\nok").
		Save(ctx)
	require.NoError(t, err)

	summary, err := f.jobs.GetFinalSummary(ctx, job.ID)
	require.NoError(t, err)
	assert.Equal(t, "# done 최종 요약\n\nok", summary)
}

func TestDeleteJobCleansArtifactsAndUploads(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newServiceFixture(t)
	ctx := context.Background()

	job, err := f.jobs.CreateJob(ctx, "to delete", nil)
	require.NoError(t, err)

	uploadJobDir := filepath.Join(f.uploadDir, strconv.Itoa(job.ID))
	writeFile(t, filepath.Join(uploadJobDir, "rec.wav"))

	runID := "20250101120000-" + strconv.Itoa(job.ID) + "-1"
	runDir := filepath.Join(f.runsDir, runID)
	writeFile(t, filepath.Join(runDir, "summary.txt"))

	require.NoError(t, f.jobs.AddMaterials(ctx, job.ID, []models.MaterialInput{
		{SourceType: "audio/wav", StoragePath: filepath.Join(uploadJobDir, "rec.wav")},
	}))
	mats, err := f.jobs.GetJob(ctx, job.ID)
	require.NoError(t, err)
	_, err = f.client.SourceMaterial.UpdateOneID(mats.Edges.SourceMaterials[0].ID).
		SetOutputArtifacts(map[string]interface{}{"run_id": runID}).
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, f.jobs.DeleteJob(ctx, job.ID))

	_, err = f.jobs.GetJob(ctx, job.ID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, statErr := os.Stat(uploadJobDir)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(runDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestDeleteWorkspaceCascades(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newServiceFixture(t)
	ctx := context.Background()

	ws, err := f.workspaces.CreateWorkspace(ctx, models.CreateWorkspaceRequest{Name: "cascade"})
	require.NoError(t, err)
	subj, err := f.subjects.CreateSubject(ctx, models.CreateSubjectRequest{WorkspaceID: ws.ID, Name: "deep"})
	require.NoError(t, err)
	job, err := f.jobs.CreateJob(ctx, "nested", &subj.ID)
	require.NoError(t, err)
	require.NoError(t, f.jobs.AddMaterials(ctx, job.ID, []models.MaterialInput{
		{SourceType: "audio/wav", StoragePath: "/tmp/nested.wav"},
	}))

	uploadJobDir := filepath.Join(f.uploadDir, strconv.Itoa(job.ID))
	writeFile(t, filepath.Join(uploadJobDir, "nested.wav"))

	require.NoError(t, f.workspaces.DeleteWorkspace(ctx, ws.ID))

	count, err := f.client.SummaryJob.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = f.client.SourceMaterial.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	count, err = f.client.Subject.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
	_, statErr := os.Stat(uploadJobDir)
	assert.True(t, os.IsNotExist(statErr))
}
