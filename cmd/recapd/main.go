// recapd server — provides the HTTP API, manages queue workers, and drives
// uploaded recordings through the processing pipeline.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/recapd/recapd/pkg/api"
	"github.com/recapd/recapd/pkg/cleanup"
	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/database"
	"github.com/recapd/recapd/pkg/media"
	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/queue"
	"github.com/recapd/recapd/pkg/services"
	"github.com/recapd/recapd/pkg/version"
)

func main() {
	slog.Info("Starting recapd", "version", version.Full())

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}

	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Model runner sidecar. An empty address or a failed dial leaves
	// every model as an unavailable capability; the pipeline degrades
	// instead of refusing to start.
	var runner *model.Runner
	if cfg.Runner.Addr != "" {
		runner, err = model.NewRunner(cfg.Runner.Addr)
		if err != nil {
			slog.Warn("Model runner unavailable, continuing without models",
				"addr", cfg.Runner.Addr, "error", err)
			runner = nil
		} else {
			defer func() {
				if err := runner.Close(); err != nil {
					slog.Error("Error closing runner client", "error", err)
				}
			}()
			slog.Info("Model runner client initialized", "addr", cfg.Runner.Addr)
		}
	} else {
		slog.Warn("RUNNER_ADDR not set, models disabled")
	}

	transcoder := media.NewTranscoder()

	// 4. Domain services
	uploadDir := filepath.Join(cfg.DataDir, "source_materials")
	cleaner := services.NewArtifactCleaner(cfg.RunsDir(), uploadDir)
	workspaceService := services.NewWorkspaceService(dbClient.Client, cleaner)
	subjectService := services.NewSubjectService(dbClient.Client, cleaner)
	jobService := services.NewJobService(dbClient.Client, cleaner)
	slog.Info("Services initialized")

	// 5. Worker pool
	executor := queue.NewExecutor(dbClient.Client, cfg, transcoder, func() *model.Resources {
		return model.NewResources(cfg, runner)
	})
	workerPool := queue.NewWorkerPool(dbClient.Client, cfg.Queue, executor)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 6. Retention
	var retention *cleanup.Service
	if cfg.Retention.Enabled {
		retention = cleanup.NewService(cfg.Retention, dbClient.Client, jobService, cfg.RunsDir())
		retention.Start(ctx)
		defer retention.Stop()
	}

	// 7. HTTP server
	apiServer := api.NewServer(dbClient, cfg, workspaceService, subjectService, jobService, workerPool)
	httpServer := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler: apiServer.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			errCh <- err
		}
	}()

	slog.Info("recapd started successfully", "workers", cfg.Queue.WorkerCount)

	// 8. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 9. Graceful shutdown: finish active jobs within the budget, then
	// stop the HTTP server.
	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer cancel()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()

	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded, abandoning in-flight jobs")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
