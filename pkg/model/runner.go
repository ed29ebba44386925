// Package model manages the heavy model capabilities behind the pipeline:
// the model-runner sidecar connection, lazy per-run resource handles, LLM
// chat clients, and diarization annotation decoding.
package model

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	runnerv1 "github.com/recapd/recapd/proto"
)

// Transcript is a raw ASR result in chunk-local time.
type Transcript struct {
	Segments []RawSegment
	Language string
}

// RawSegment is one ASR interval before global-timeline shifting.
type RawSegment struct {
	Start float64
	End   float64
	Text  string
}

// Runner is the gRPC client for the model-runner sidecar.
type Runner struct {
	conn   *grpc.ClientConn
	client runnerv1.ModelRunnerClient
}

// NewRunner creates a runner client for the given address.
func NewRunner(addr string) (*Runner, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to model runner at %s: %w", addr, err)
	}
	return &Runner{
		conn:   conn,
		client: runnerv1.NewModelRunnerClient(conn),
	}, nil
}

// Transcribe runs ASR on one audio file. Device is "auto" or "cpu".
func (r *Runner) Transcribe(ctx context.Context, audioPath, language, device string, halfPrecision bool) (*Transcript, error) {
	resp, err := r.client.Transcribe(ctx, &runnerv1.TranscribeRequest{
		AudioPath:     audioPath,
		Language:      language,
		HalfPrecision: halfPrecision,
		Device:        device,
	})
	if err != nil {
		return nil, fmt.Errorf("transcribe call failed: %w", err)
	}

	out := &Transcript{Language: resp.Language}
	for _, seg := range resp.Segments {
		out.Segments = append(out.Segments, RawSegment{
			Start: seg.Start,
			End:   seg.End,
			Text:  seg.Text,
		})
	}
	return out, nil
}

// Diarize runs diarization on one audio file and returns the annotation
// JSON in whatever shape the runner produced.
func (r *Runner) Diarize(ctx context.Context, audioPath, uri string, sampleRate int) (json.RawMessage, error) {
	resp, err := r.client.Diarize(ctx, &runnerv1.DiarizeRequest{
		AudioPath:  audioPath,
		SampleRate: int32(sampleRate),
		Uri:        uri,
	})
	if err != nil {
		return nil, fmt.Errorf("diarize call failed: %w", err)
	}
	return json.RawMessage(resp.AnnotationJson), nil
}

// LoadModel materializes a model on the runner. For LLM kinds the returned
// endpoint is the OpenAI-compatible base URL to chat against.
func (r *Runner) LoadModel(ctx context.Context, kind runnerv1.ModelKind, gpuLayers int) (*runnerv1.LoadModelResponse, error) {
	resp, err := r.client.LoadModel(ctx, &runnerv1.LoadModelRequest{
		Kind:      kind,
		GpuLayers: int32(gpuLayers),
	})
	if err != nil {
		return nil, fmt.Errorf("load model call failed: %w", err)
	}
	if !resp.Ready {
		return nil, fmt.Errorf("model %s did not become ready", kind)
	}
	return resp, nil
}

// UnloadModel drops a model on the runner, freeing accelerator memory.
func (r *Runner) UnloadModel(ctx context.Context, kind runnerv1.ModelKind) error {
	if _, err := r.client.UnloadModel(ctx, &runnerv1.UnloadModelRequest{Kind: kind}); err != nil {
		return fmt.Errorf("unload model call failed: %w", err)
	}
	return nil
}

// Close releases the gRPC connection.
func (r *Runner) Close() error {
	return r.conn.Close()
}
