// Package config loads recapd configuration from the environment.
//
// All settings have working defaults for local development; a .env file in
// the working directory is honored when present. Database settings live in
// pkg/database and are loaded separately.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig
	Runner    RunnerConfig
	ASR       ASRConfig
	LLM       LLMConfig
	Pipeline  PipelineConfig
	Queue     *QueueConfig
	Retention *RetentionConfig

	// DataDir is the base for pipeline run directories. Each run writes its
	// artifacts under <DataDir>/runs/<run_id>.
	DataDir string

	// ProjectsRoot is the base for uploaded source material, laid out as
	// <ProjectsRoot>/<workspace>/<subject>/<storage_path>.
	ProjectsRoot string

	// SyspromptDir optionally overrides the built-in summarization prompts
	// with <SyspromptDir>/{conversation,lecture,meeting}.txt.
	SyspromptDir string
}

// ServerConfig contains HTTP API settings.
type ServerConfig struct {
	Host           string
	Port           int
	MaxUploadBytes int64
}

// RunnerConfig contains model-runner sidecar connection settings.
type RunnerConfig struct {
	// Addr is the gRPC address of the sidecar. Empty disables the runner
	// entirely; every model becomes an unavailable capability.
	Addr           string
	DialTimeout    time.Duration
	RequestTimeout time.Duration
}

// ASRConfig contains speech-to-text settings.
type ASRConfig struct {
	// Language is a BCP-47 hint passed to the ASR model; empty means
	// auto-detect per chunk.
	Language      string
	HalfPrecision bool
}

// LLMConfig contains settings for the classifier and summarizer models.
type LLMConfig struct {
	// GPULayers is the llama.cpp offload layer count. Negative means full
	// offload, zero leaves the choice to the runner.
	GPULayers      int
	RequestTimeout time.Duration
}

// PipelineConfig contains audio processing settings.
type PipelineConfig struct {
	// SegmentLengthSeconds is the fixed chunk size the normalize stage cuts
	// audio into.
	SegmentLengthSeconds float64
}

const (
	defaultMaxUploadBytes = int64(10) << 30 // 10 GiB
	defaultSegmentLength  = 1800.0
)

// Load reads configuration from the environment, honoring a .env file in
// the working directory when one exists.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("Failed to load .env file", "error", err)
	}

	port, err := strconv.Atoi(getEnvOrDefault("RECAPD_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid RECAPD_PORT: %w", err)
	}

	gpuLayers, err := strconv.Atoi(getEnvOrDefault("LLAMA_GPU_LAYERS", "-1"))
	if err != nil {
		return nil, fmt.Errorf("invalid LLAMA_GPU_LAYERS: %w", err)
	}

	segLen, err := strconv.ParseFloat(getEnvOrDefault("SEGMENT_LENGTH", ""), 64)
	if err != nil || segLen <= 0 {
		segLen = defaultSegmentLength
	}

	dataDir := getEnvOrDefault("DATA_DIR", "data")
	cfg := &Config{
		Server: ServerConfig{
			Host:           getEnvOrDefault("RECAPD_HOST", "0.0.0.0"),
			Port:           port,
			MaxUploadBytes: getEnvInt64("MAX_UPLOAD_BYTES", defaultMaxUploadBytes),
		},
		Runner: RunnerConfig{
			Addr:           os.Getenv("RUNNER_ADDR"),
			DialTimeout:    getEnvDuration("RUNNER_DIAL_TIMEOUT", 10*time.Second),
			RequestTimeout: getEnvDuration("RUNNER_REQUEST_TIMEOUT", 30*time.Minute),
		},
		ASR: ASRConfig{
			Language:      os.Getenv("ASR_LANGUAGE"),
			HalfPrecision: getEnvBool("ASR_HALF_PRECISION", true),
		},
		LLM: LLMConfig{
			GPULayers:      gpuLayers,
			RequestTimeout: getEnvDuration("LLM_REQUEST_TIMEOUT", 10*time.Minute),
		},
		Pipeline: PipelineConfig{
			SegmentLengthSeconds: segLen,
		},
		Queue:        LoadQueueConfigFromEnv(),
		Retention:    LoadRetentionConfigFromEnv(),
		DataDir:      dataDir,
		ProjectsRoot: getEnvOrDefault("PROJECTS_ROOT", "projects"),
		SyspromptDir: getEnvOrDefault("SYSPROMPT_DIR", "sysprompt"),
	}

	return cfg, nil
}

// RunsDir returns the base directory for pipeline run artifacts.
func (c *Config) RunsDir() string {
	return filepath.Join(c.DataDir, "runs")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvInt64(key string, defaultVal int64) int64 {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	n, err := strconv.ParseInt(val, 10, 64)
	if err != nil {
		slog.Warn("Invalid integer in environment, using default",
			"key", key, "value", val, "default", defaultVal)
		return defaultVal
	}
	return n
}

func getEnvInt(key string, defaultVal int) int {
	return int(getEnvInt64(key, int64(defaultVal)))
}

func getEnvBool(key string, defaultVal bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		slog.Warn("Invalid boolean in environment, using default",
			"key", key, "value", val, "default", defaultVal)
		return defaultVal
	}
	return b
}

func getEnvDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		slog.Warn("Invalid duration in environment, using default",
			"key", key, "value", val, "default", defaultVal)
		return defaultVal
	}
	return d
}
