package domain

import "context"

// Document is a single uploaded file after text extraction.
type Document struct {
	Name string
	Text string
}

// Chunk is a fixed-size slice of a document's text used for indexing.
type Chunk struct {
	Text  string
	Index int
}

// SearchResult represents a matching passage with a relevance score.
type SearchResult struct {
	Text  string
	Score float64
}

// IntentClassification is the structured judgment produced for a question.
// All fields are plain strings; the shape mirrors the classifier prompt.
type IntentClassification struct {
	Q      string `json:"Q"`
	R      string `json:"R"`
	I      string `json:"I"`
	Reason string `json:"Reason"`
}

// RAGResponse is the unit returned to callers of the ask pipeline.
type RAGResponse struct {
	Question string               `json:"question"`
	Answer   string               `json:"answer"`
	Intent   IntentClassification `json:"intent"`
}

// Chunker splits documents into chunks suitable for retrieval indexing.
type Chunker interface {
	Chunk(document Document) []Chunk
}

// Embedder converts free text into a numeric vector representation.
// Ingestion and querying must use the same embedder so all vectors share
// one embedding space.
type Embedder interface {
	Dimension() int
	EmbedDocuments(ctx context.Context, texts []string) ([][]float32, error)
	EmbedQuery(ctx context.Context, text string) ([]float32, error)
}

// Generator produces free text from a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
