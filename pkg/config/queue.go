package config

import "time"

// QueueConfig contains queue and worker pool configuration.
// These values control how summary jobs are polled, claimed, and processed.
type QueueConfig struct {
	// WorkerCount is the number of worker goroutines per replica.
	// Each worker independently polls and processes jobs.
	WorkerCount int

	// MaxConcurrentJobs is the global limit of jobs being processed across
	// ALL replicas. Enforced by database COUNT(*) check.
	MaxConcurrentJobs int

	// PollInterval is the base interval for checking pending jobs.
	PollInterval time.Duration

	// PollIntervalJitter is the random jitter added to PollInterval.
	// Actual interval: PollInterval ± PollIntervalJitter.
	PollIntervalJitter time.Duration

	// JobTimeout is the maximum time a single job can be processed.
	JobTimeout time.Duration

	// GracefulShutdownTimeout is the max time to wait for active jobs to
	// complete during shutdown. Should match JobTimeout.
	GracefulShutdownTimeout time.Duration
}

// DefaultQueueConfig returns the built-in queue defaults. Jobs run heavy
// models, so a single worker per replica is the safe default.
func DefaultQueueConfig() *QueueConfig {
	return &QueueConfig{
		WorkerCount:             1,
		MaxConcurrentJobs:       1,
		PollInterval:            2 * time.Second,
		PollIntervalJitter:      500 * time.Millisecond,
		JobTimeout:              4 * time.Hour,
		GracefulShutdownTimeout: 4 * time.Hour,
	}
}

// LoadQueueConfigFromEnv returns queue configuration with environment
// overrides applied on top of the defaults.
func LoadQueueConfigFromEnv() *QueueConfig {
	cfg := DefaultQueueConfig()
	cfg.WorkerCount = getEnvInt("QUEUE_WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxConcurrentJobs = getEnvInt("QUEUE_MAX_CONCURRENT_JOBS", cfg.MaxConcurrentJobs)
	cfg.PollInterval = getEnvDuration("QUEUE_POLL_INTERVAL", cfg.PollInterval)
	cfg.PollIntervalJitter = getEnvDuration("QUEUE_POLL_INTERVAL_JITTER", cfg.PollIntervalJitter)
	cfg.JobTimeout = getEnvDuration("QUEUE_JOB_TIMEOUT", cfg.JobTimeout)
	cfg.GracefulShutdownTimeout = getEnvDuration("QUEUE_GRACEFUL_SHUTDOWN_TIMEOUT", cfg.GracefulShutdownTimeout)
	return cfg
}
