// Package llm wraps the Gemini API behind the domain's LLMClient interface
// and implements the prompt-based extractors on top of it.
package llm

import (
	"context"
	"time"

	"google.golang.org/genai"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/config"
	"github.com/alongsideai/cre-ai-assistant-sub001/internal/infrastructure/monitoring"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// GenAIClient calls the Gemini API. It satisfies the domain's LLMClient.
type GenAIClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
	metrics *monitoring.Metrics
}

// NewGenAIClient creates the Gemini client. The API key comes from Vault or
// configuration; the caller resolves it first.
func NewGenAIClient(ctx context.Context, cfg *config.LLMConfig, apiKey string, metrics *monitoring.Metrics) (*GenAIClient, error) {
	if apiKey == "" {
		return nil, errors.ErrLLM.WithMessage("language model API key is empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, errors.ErrLLM.WithMessage("failed to create genai client").WithError(err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &GenAIClient{
		client:  client,
		model:   cfg.Model,
		timeout: timeout,
		metrics: metrics,
	}, nil
}

// Complete sends one prompt and returns the model's text response.
func (c *GenAIClient) Complete(ctx context.Context, prompt string) (string, error) {
	callCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	start := time.Now()
	resp, err := c.client.Models.GenerateContent(callCtx, c.model, genai.Text(prompt), nil)
	elapsed := time.Since(start)

	if err != nil {
		c.record("complete", "error", elapsed)
		return "", errors.ErrLLM.WithMessage("model call failed").WithError(err)
	}

	text := resp.Text()
	if text == "" {
		c.record("complete", "empty", elapsed)
		return "", errors.ErrLLM.WithMessage("model returned an empty response")
	}

	c.record("complete", "ok", elapsed)
	return text, nil
}

// Close releases the underlying client. The genai client holds no
// resources that need explicit release, so this is a no-op.
func (c *GenAIClient) Close() error {
	return nil
}

func (c *GenAIClient) record(operation, result string, elapsed time.Duration) {
	if c.metrics != nil {
		c.metrics.RecordLLMCall(operation, result, elapsed)
	}
}
