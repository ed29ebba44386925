package stages

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/recapd/recapd/pkg/config"
	"github.com/recapd/recapd/pkg/model"
	"github.com/recapd/recapd/pkg/pipeline"
)

type asrFunc func(ctx context.Context, audioPath, language, device string) (*model.Transcript, error)

func (f asrFunc) Transcribe(ctx context.Context, audioPath, language, device string) (*model.Transcript, error) {
	return f(ctx, audioPath, language, device)
}

type diarizerFunc func(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error)

func (f diarizerFunc) Diarize(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error) {
	return f(ctx, audioPath, uri, sampleRate)
}

type chatFunc func(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error)

func (f chatFunc) Complete(ctx context.Context, messages []model.Message, temperature float32, maxTokens int) (string, error) {
	return f(ctx, messages, temperature, maxTokens)
}

func newTestRun(t *testing.T, res *model.Resources) *pipeline.RunContext {
	t.Helper()
	if res == nil {
		res = model.NewStaticResources(nil, nil, nil, nil)
	}
	cfg := &config.Config{
		Pipeline: config.PipelineConfig{SegmentLengthSeconds: 1800},
	}
	return pipeline.NewRunContext("test-run", cfg, res, t.TempDir(), "input.wav")
}
