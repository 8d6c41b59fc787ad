package googleai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Config configures the Gemini generation client.
type Config struct {
	APIKey string
	Model  string
}

// Generator wraps a langchaingo Gemini model behind the Generator interface.
type Generator struct {
	model llms.Model
}

// NewGenerator creates a generation client for the given model.
func NewGenerator(ctx context.Context, cfg Config) (*Generator, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("googleai generator: api key is required")
	}
	model, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("googleai generator: init client: %w", err)
	}
	return &Generator{model: model}, nil
}

// Generate sends one prompt and returns the model's trimmed text output.
// No streaming, no retries; the client's default timeout applies.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	out, err := llms.GenerateFromSinglePrompt(ctx, g.model, prompt)
	if err != nil {
		return "", fmt.Errorf("googleai generator: %w", err)
	}
	return strings.TrimSpace(out), nil
}
