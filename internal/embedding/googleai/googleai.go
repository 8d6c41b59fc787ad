package googleai

import (
	"context"
	"errors"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/googleai"
)

// Config configures the Gemini embeddings client.
type Config struct {
	APIKey    string
	Model     string
	Dimension int
}

// Embedder produces Gemini embeddings through langchaingo. One instance
// serves both ingestion and querying so every vector lives in the same space.
type Embedder struct {
	impl      *embeddings.EmbedderImpl
	dimension int
}

// NewEmbedder creates an embeddings client for the given model.
func NewEmbedder(ctx context.Context, cfg Config) (*Embedder, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("googleai embedder: api key is required")
	}
	if cfg.Dimension <= 0 {
		return nil, fmt.Errorf("googleai embedder: dimension must be positive, got %d", cfg.Dimension)
	}
	client, err := googleai.New(ctx,
		googleai.WithAPIKey(cfg.APIKey),
		googleai.WithDefaultEmbeddingModel(cfg.Model),
	)
	if err != nil {
		return nil, fmt.Errorf("googleai embedder: init client: %w", err)
	}
	impl, err := embeddings.NewEmbedder(client)
	if err != nil {
		return nil, fmt.Errorf("googleai embedder: construct embedder: %w", err)
	}
	return &Embedder{impl: impl, dimension: cfg.Dimension}, nil
}

// Dimension returns the dimensionality of the produced embedding vectors.
func (e *Embedder) Dimension() int { return e.dimension }

// EmbedDocuments embeds a batch of chunk texts for ingestion.
func (e *Embedder) EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error) {
	vectors, err := e.impl.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("googleai embedder: embed documents: %w", err)
	}
	return vectors, nil
}

// EmbedQuery embeds a single question for similarity search.
func (e *Embedder) EmbedQuery(ctx context.Context, text string) ([]float32, error) {
	vector, err := e.impl.EmbedQuery(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("googleai embedder: embed query: %w", err)
	}
	return vector, nil
}
