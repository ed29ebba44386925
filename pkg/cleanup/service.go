// Package cleanup provides data retention for summary jobs.
package cleanup

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/recapd/recapd/ent"
	"github.com/recapd/recapd/ent/sourcematerial"
	"github.com/recapd/recapd/ent/summaryjob"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/services"
)

// Service periodically enforces retention policies:
//   - Deletes terminal jobs (completed or failed) past the retention window,
//     including their upload directories and run artifacts
//   - Removes run directories whose source material no longer exists
//
// All operations are idempotent.
type Service struct {
	config  *config.RetentionConfig
	client  *ent.Client
	jobs    *services.JobService
	runsDir string

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, client *ent.Client, jobs *services.JobService, runsDir string) *Service {
	return &Service{
		config:  cfg,
		client:  client,
		jobs:    jobs,
		runsDir: runsDir,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Cleanup service started",
		"job_retention_days", s.config.JobRetentionDays,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.RunOnce(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.RunOnce(ctx)
		}
	}
}

// RunOnce executes a single cleanup pass.
func (s *Service) RunOnce(ctx context.Context) {
	s.deleteExpiredJobs(ctx)
	s.removeOrphanedRunDirs(ctx)
}

// deleteExpiredJobs removes terminal jobs older than the retention window.
// Deleting through the job service also removes upload directories and run
// artifacts.
func (s *Service) deleteExpiredJobs(ctx context.Context) {
	cutoff := time.Now().AddDate(0, 0, -s.config.JobRetentionDays)

	ids, err := s.client.SummaryJob.Query().
		Where(
			summaryjob.StatusIn(summaryjob.StatusCOMPLETED, summaryjob.StatusFAILED),
			summaryjob.CreatedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		slog.Error("Retention: expired job query failed", "error", err)
		return
	}

	deleted := 0
	for _, id := range ids {
		if err := s.jobs.DeleteJob(ctx, id); err != nil {
			slog.Error("Retention: job deletion failed", "job_id", id, "error", err)
			continue
		}
		deleted++
	}
	if deleted > 0 {
		slog.Info("Retention: deleted expired jobs", "count", deleted)
	}
}

// removeOrphanedRunDirs deletes run directories whose source material was
// removed without artifact cleanup, for example after a crash mid-delete.
func (s *Service) removeOrphanedRunDirs(ctx context.Context) {
	entries, err := os.ReadDir(s.runsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("Retention: runs directory scan failed", "error", err)
		}
		return
	}

	removed := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		materialID, ok := parseRunMaterialID(entry.Name())
		if !ok {
			continue
		}

		exists, err := s.client.SourceMaterial.Query().
			Where(sourcematerial.IDEQ(materialID)).
			Exist(ctx)
		if err != nil {
			slog.Error("Retention: material lookup failed", "run_dir", entry.Name(), "error", err)
			continue
		}
		if exists {
			continue
		}

		if err := os.RemoveAll(filepath.Join(s.runsDir, entry.Name())); err != nil {
			slog.Warn("Retention: orphaned run dir removal failed", "run_dir", entry.Name(), "error", err)
			continue
		}
		removed++
	}
	if removed > 0 {
		slog.Info("Retention: removed orphaned run dirs", "count", removed)
	}
}

// parseRunMaterialID extracts the material id from a run directory name of
// the form <timestamp>-<job_id>-<material_id>.
func parseRunMaterialID(name string) (int, bool) {
	parts := strings.Split(name, "-")
	if len(parts) != 3 {
		return 0, false
	}
	id, err := strconv.Atoi(parts[2])
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
