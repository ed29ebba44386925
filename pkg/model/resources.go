package model

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/recapd/recapd/pkg/config"
	runnerv1 "github.com/recapd/recapd/proto"
)

// ASR is the speech-to-text capability. Device is "auto" or "cpu".
type ASR interface {
	Transcribe(ctx context.Context, audioPath, language, device string) (*Transcript, error)
}

// Diarizer is the speaker diarization capability. The returned annotation
// is decoded with DecodeAnnotation.
type Diarizer interface {
	Diarize(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error)
}

// Resources lazily materializes the heavy model handles for one run. The
// first access loads and caches a handle; later accesses return the cache.
// A load failure yields nil, the unavailable capability, without an error;
// soft-failure handling is the stages' job. Each job worker owns its own
// instance, handles are never shared across jobs.
type Resources struct {
	cfg    *config.Config
	runner *Runner

	mu              sync.Mutex
	asr             ASR
	asrTried        bool
	diarizer        Diarizer
	diarizerTried   bool
	classifier      ChatClient
	classifierTried bool
	summarizer      ChatClient
	summarizerTried bool
}

// NewResources creates a resource manager backed by the model runner.
// A nil runner makes every capability unavailable.
func NewResources(cfg *config.Config, runner *Runner) *Resources {
	return &Resources{cfg: cfg, runner: runner}
}

// NewStaticResources creates a resource manager with fixed capabilities,
// bypassing the runner. Nil values stay unavailable.
func NewStaticResources(asr ASR, diarizer Diarizer, classifier, summarizer ChatClient) *Resources {
	return &Resources{
		asr:             asr,
		asrTried:        true,
		diarizer:        diarizer,
		diarizerTried:   true,
		classifier:      classifier,
		classifierTried: true,
		summarizer:      summarizer,
		summarizerTried: true,
	}
}

// ASR returns the speech-to-text handle, or nil when unavailable.
func (r *Resources) ASR(ctx context.Context) ASR {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.asrTried {
		r.asrTried = true
		if r.loadModel(ctx, runnerv1.ModelKind_MODEL_KIND_ASR) != nil {
			r.asr = &runnerASR{runner: r.runner, halfPrecision: r.cfg.ASR.HalfPrecision}
		}
	}
	return r.asr
}

// Diarizer returns the diarization handle, or nil when unavailable.
func (r *Resources) Diarizer(ctx context.Context) Diarizer {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.diarizerTried {
		r.diarizerTried = true
		if r.loadModel(ctx, runnerv1.ModelKind_MODEL_KIND_DIARIZER) != nil {
			r.diarizer = &runnerDiarizer{runner: r.runner}
		}
	}
	return r.diarizer
}

// ClassifierLLM returns the categorization chat client, or nil when
// unavailable.
func (r *Resources) ClassifierLLM(ctx context.Context) ChatClient {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.classifierTried {
		r.classifierTried = true
		if resp := r.loadModel(ctx, runnerv1.ModelKind_MODEL_KIND_CLASSIFIER_LLM); resp != nil && resp.Endpoint != "" {
			r.classifier = NewOpenAIChat(resp.Endpoint, "")
		}
	}
	return r.classifier
}

// SummarizerLLM returns the summarization chat client, or nil when
// unavailable.
func (r *Resources) SummarizerLLM(ctx context.Context) ChatClient {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.summarizerTried {
		r.summarizerTried = true
		if resp := r.loadModel(ctx, runnerv1.ModelKind_MODEL_KIND_SUMMARIZER_LLM); resp != nil && resp.Endpoint != "" {
			r.summarizer = NewOpenAIChat(resp.Endpoint, "")
		}
	}
	return r.summarizer
}

// ReleaseASR drops the cached ASR handle and asks the runner to free the
// accelerator memory behind it. Called before LLM loads to cap peak
// residency. A later ASR access reloads the model.
func (r *Resources) ReleaseASR(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.asrTried {
		return
	}
	hadHandle := r.asr != nil
	r.asr = nil
	r.asrTried = false

	if hadHandle && r.runner != nil {
		if err := r.runner.UnloadModel(ctx, runnerv1.ModelKind_MODEL_KIND_ASR); err != nil {
			slog.Warn("Failed to unload ASR model", "error", err)
		}
	}
}

// Close releases the runner connection.
func (r *Resources) Close() error {
	if r.runner != nil {
		return r.runner.Close()
	}
	return nil
}

// loadModel asks the runner to materialize a model, returning nil when the
// runner is absent or the load failed. gpuLayers only matters to LLM kinds.
func (r *Resources) loadModel(ctx context.Context, kind runnerv1.ModelKind) *runnerv1.LoadModelResponse {
	if r.runner == nil {
		return nil
	}
	gpuLayers := 0
	if r.cfg != nil {
		gpuLayers = r.cfg.LLM.GPULayers
	}
	resp, err := r.runner.LoadModel(ctx, kind, gpuLayers)
	if err != nil {
		slog.Warn("Model unavailable", "kind", kind.String(), "error", err)
		return nil
	}
	slog.Info("Model loaded", "kind", kind.String(), "device", resp.Device)
	return resp
}

type runnerASR struct {
	runner        *Runner
	halfPrecision bool
}

func (a *runnerASR) Transcribe(ctx context.Context, audioPath, language, device string) (*Transcript, error) {
	return a.runner.Transcribe(ctx, audioPath, language, device, a.halfPrecision)
}

type runnerDiarizer struct {
	runner *Runner
}

func (d *runnerDiarizer) Diarize(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error) {
	return d.runner.Diarize(ctx, audioPath, uri, sampleRate)
}
