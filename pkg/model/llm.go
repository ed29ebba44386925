package model

import (
	"context"
	"errors"
	"fmt"
	"math"

	openai "github.com/sashabaranov/go-openai"
)

// Message is one chat turn sent to an LLM.
type Message struct {
	Role    string
	Content string
}

// ChatClient is the minimal chat completion capability the categorize and
// refine stages need.
type ChatClient interface {
	Complete(ctx context.Context, messages []Message, temperature float32, maxTokens int) (string, error)
}

// OpenAIChat talks to an OpenAI-compatible endpoint, in practice the
// llama-server the model runner started for us.
type OpenAIChat struct {
	client *openai.Client
	model  string
}

// NewOpenAIChat creates a chat client for the given base URL. The model
// name may be empty; llama-server serves a single model regardless.
func NewOpenAIChat(baseURL, model string) *OpenAIChat {
	cfg := openai.DefaultConfig("local")
	cfg.BaseURL = baseURL
	return &OpenAIChat{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
	}
}

// Complete sends the messages and returns the first choice's content.
func (c *OpenAIChat) Complete(ctx context.Context, messages []Message, temperature float32, maxTokens int) (string, error) {
	// The request struct marshals temperature with omitempty, so an exact
	// zero would fall back to the server default instead of greedy decoding.
	if temperature == 0 {
		temperature = math.SmallestNonzeroFloat32
	}
	req := openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: temperature,
		MaxTokens:   maxTokens,
	}
	for _, m := range messages {
		req.Messages = append(req.Messages, openai.ChatCompletionMessage{
			Role:    m.Role,
			Content: m.Content,
		})
	}

	resp, err := c.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", errors.New("chat completion returned no choices")
	}
	return resp.Choices[0].Message.Content, nil
}
