package cleanup

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/services"
	testdb "github.com/recapd/recapd/test/database"
)

type cleanupFixture struct {
	client    *ent.Client
	jobs      *services.JobService
	runsDir   string
	uploadDir string
	service   *Service
}

func newCleanupFixture(t *testing.T) *cleanupFixture {
	t.Helper()
	client := testdb.NewTestClient(t).Client
	runsDir := t.TempDir()
	uploadDir := t.TempDir()
	cleaner := services.NewArtifactCleaner(runsDir, uploadDir)
	jobs := services.NewJobService(client, cleaner)

	cfg := &config.RetentionConfig{
		Enabled:          true,
		JobRetentionDays: 30,
		CleanupInterval:  time.Hour,
	}
	return &cleanupFixture{
		client:    client,
		jobs:      jobs,
		runsDir:   runsDir,
		uploadDir: uploadDir,
		service:   NewService(cfg, client, jobs, runsDir),
	}
}

func createJobWithAge(t *testing.T, client *ent.Client, status summaryjob.Status, age time.Duration) *ent.SummaryJob {
	t.Helper()
	job, err := client.SummaryJob.Create().
		SetTitle("retention test").
		SetStatus(status).
		SetCreatedAt(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return job
}

func TestDeletesExpiredTerminalJobs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newCleanupFixture(t)
	ctx := context.Background()

	old := createJobWithAge(t, f.client, summaryjob.StatusCOMPLETED, 40*24*time.Hour)
	oldUploadDir := filepath.Join(f.uploadDir, strconv.Itoa(old.ID))
	require.NoError(t, os.MkdirAll(oldUploadDir, 0o755))

	f.service.RunOnce(ctx)

	_, err := f.jobs.GetJob(ctx, old.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
	_, statErr := os.Stat(oldUploadDir)
	assert.True(t, os.IsNotExist(statErr))
}

func TestPreservesRecentAndNonTerminalJobs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newCleanupFixture(t)
	ctx := context.Background()

	recent := createJobWithAge(t, f.client, summaryjob.StatusFAILED, 24*time.Hour)
	pending := createJobWithAge(t, f.client, summaryjob.StatusPENDING, 40*24*time.Hour)
	processing := createJobWithAge(t, f.client, summaryjob.StatusPROCESSING, 40*24*time.Hour)

	f.service.RunOnce(ctx)

	for _, id := range []int{recent.ID, pending.ID, processing.ID} {
		_, err := f.jobs.GetJob(ctx, id)
		assert.NoError(t, err, "job %d should survive the cleanup pass", id)
	}
}

func TestRemovesOrphanedRunDirs(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newCleanupFixture(t)
	ctx := context.Background()

	// A run dir whose material id matches nothing in the database.
	orphan := filepath.Join(f.runsDir, "20250101120000-1-999")
	require.NoError(t, os.MkdirAll(orphan, 0o755))

	// A run dir backed by a live material.
	job := createJobWithAge(t, f.client, summaryjob.StatusCOMPLETED, time.Hour)
	mat, err := f.client.SourceMaterial.Create().
		SetJobID(job.ID).
		SetSourceType("audio/wav").
		SetStoragePath("/tmp/live.wav").
		Save(ctx)
	require.NoError(t, err)
	live := filepath.Join(f.runsDir, "20250101120000-"+strconv.Itoa(job.ID)+"-"+strconv.Itoa(mat.ID))
	require.NoError(t, os.MkdirAll(live, 0o755))

	// A directory that is not a run dir at all.
	stray := filepath.Join(f.runsDir, "not-a-run")
	require.NoError(t, os.MkdirAll(stray, 0o755))

	f.service.RunOnce(ctx)

	_, statErr := os.Stat(orphan)
	assert.True(t, os.IsNotExist(statErr))
	_, statErr = os.Stat(live)
	assert.NoError(t, statErr)
	_, statErr = os.Stat(stray)
	assert.NoError(t, statErr)
}

func TestStartStop(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping database test in short mode")
	}
	f := newCleanupFixture(t)

	f.service.Start(context.Background())
	f.service.Stop()
}

func TestParseRunMaterialID(t *testing.T) {
	tests := []struct {
		name   string
		dir    string
		wantID int
		wantOK bool
	}{
		{"valid", "20250101120000-7-42", 42, true},
		{"non numeric material", "20250101120000-7-x", 0, false},
		{"too few parts", "20250101120000-7", 0, false},
		{"too many parts", "2025-01-01-7-42", 0, false},
		{"zero id", "20250101120000-7-0", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, ok := parseRunMaterialID(tt.dir)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantID, id)
		})
	}
}
