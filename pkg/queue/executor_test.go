package queue

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatRunID(t *testing.T) {
	ts := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	assert.Equal(t, "20250314092653-7-42", formatRunID(ts, 7, 42))
}

func TestResolveSourcePathAbsolute(t *testing.T) {
	path := resolveSourcePath("projects", "ws", "subj", "/uploads/source_materials/1/audio.mp3")
	assert.Equal(t, "/uploads/source_materials/1/audio.mp3", path)
}

func TestResolveSourcePathRelative(t *testing.T) {
	path := resolveSourcePath("projects", "research", "interviews", "session1.wav")
	assert.Equal(t, filepath.Join("projects", "research", "interviews", "session1.wav"), path)
}

func TestAssembleFinalSummary(t *testing.T) {
	got := assembleFinalSummary("주간 회의", []string{"first summary", "second summary"})
	assert.Equal(t, "# 주간 회의 최종 요약\n\nfirst summary\n\n---\n\nsecond summary", got)
}

func TestAssembleFinalSummarySingle(t *testing.T) {
	got := assembleFinalSummary("t", []string{"only"})
	assert.Equal(t, "# t 최종 요약\n\nonly", got)
}

func TestAssembleFinalSummaryEmpty(t *testing.T) {
	got := assembleFinalSummary("t", nil)
	assert.Equal(t, "# t 최종 요약\n\n", got)
}

func TestWorkerPollIntervalJitterBounds(t *testing.T) {
	w := &Worker{config: testQueueConfig()}

	for i := 0; i < 100; i++ {
		d := w.pollInterval()
		assert.GreaterOrEqual(t, d, w.config.PollInterval-w.config.PollIntervalJitter)
		assert.LessOrEqual(t, d, w.config.PollInterval+w.config.PollIntervalJitter)
	}
}

func TestWorkerPollIntervalNoJitter(t *testing.T) {
	cfg := testQueueConfig()
	cfg.PollIntervalJitter = 0
	w := &Worker{config: cfg}

	assert.Equal(t, cfg.PollInterval, w.pollInterval())
}
