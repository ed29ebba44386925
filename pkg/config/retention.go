package config

import "time"

// RetentionConfig controls background cleanup of old data.
type RetentionConfig struct {
	// Enabled toggles the cleanup service.
	Enabled bool

	// JobRetentionDays is how long completed and failed jobs are kept
	// before cascade deletion (materials, segments, run artifacts).
	JobRetentionDays int

	// CleanupInterval is how often the cleanup pass runs.
	CleanupInterval time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		Enabled:          true,
		JobRetentionDays: 30,
		CleanupInterval:  6 * time.Hour,
	}
}

// LoadRetentionConfigFromEnv returns retention configuration with
// environment overrides applied on top of the defaults.
func LoadRetentionConfigFromEnv() *RetentionConfig {
	cfg := DefaultRetentionConfig()
	cfg.Enabled = getEnvBool("RETENTION_ENABLED", cfg.Enabled)
	cfg.JobRetentionDays = getEnvInt("RETENTION_JOB_DAYS", cfg.JobRetentionDays)
	cfg.CleanupInterval = getEnvDuration("RETENTION_CLEANUP_INTERVAL", cfg.CleanupInterval)
	return cfg
}
