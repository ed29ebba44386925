package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, int64(10)<<30, cfg.Server.MaxUploadBytes)
	assert.Equal(t, 1800.0, cfg.Pipeline.SegmentLengthSeconds)
	assert.Equal(t, -1, cfg.LLM.GPULayers)
	assert.Equal(t, "data", cfg.DataDir)
	assert.Equal(t, filepath.Join("data", "runs"), cfg.RunsDir())
	assert.Equal(t, 1, cfg.Queue.WorkerCount)
	assert.True(t, cfg.Retention.Enabled)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("RECAPD_PORT", "9000")
	t.Setenv("LLAMA_GPU_LAYERS", "20")
	t.Setenv("SEGMENT_LENGTH", "600")
	t.Setenv("QUEUE_WORKER_COUNT", "3")
	t.Setenv("QUEUE_POLL_INTERVAL", "5s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, 20, cfg.LLM.GPULayers)
	assert.Equal(t, 600.0, cfg.Pipeline.SegmentLengthSeconds)
	assert.Equal(t, 3, cfg.Queue.WorkerCount)
	assert.Equal(t, 5*time.Second, cfg.Queue.PollInterval)
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("RECAPD_PORT", "not-a-port")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadInvalidSegmentLengthFallsBack(t *testing.T) {
	t.Setenv("SEGMENT_LENGTH", "-5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1800.0, cfg.Pipeline.SegmentLengthSeconds)
}

func TestSystemPromptBuiltin(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, defaultMeetingPrompt, cfg.SystemPrompt("MEETING"))
	assert.Equal(t, defaultLecturePrompt, cfg.SystemPrompt("LECTURE"))
	assert.Equal(t, defaultConversationPrompt, cfg.SystemPrompt("CONVERSATION"))
}

func TestSystemPromptUnknownTypeUsesConversation(t *testing.T) {
	cfg := &Config{}

	assert.Equal(t, defaultConversationPrompt, cfg.SystemPrompt("PODCAST"))
	assert.Equal(t, defaultConversationPrompt, cfg.SystemPrompt(""))
}

func TestSystemPromptFileOverride(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "meeting.txt"), []byte("custom meeting prompt\n"), 0o644))

	cfg := &Config{SyspromptDir: dir}

	assert.Equal(t, "custom meeting prompt", cfg.SystemPrompt("MEETING"))
	// No lecture.txt present, built-in applies.
	assert.Equal(t, defaultLecturePrompt, cfg.SystemPrompt("LECTURE"))
}

func TestSystemPromptEmptyFileFallsBack(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "conversation.txt"), []byte("   \n"), 0o644))

	cfg := &Config{SyspromptDir: dir}

	assert.Equal(t, defaultConversationPrompt, cfg.SystemPrompt("CONVERSATION"))
}
