package vectorstore

import (
	"context"

	"ragapi/internal/domain"
)

// Record is the persisted unit in the vector store: an embedding plus the
// chunk text it was produced from. Records are append-only; nothing in the
// service updates or deletes them.
type Record struct {
	ID        string
	Text      string
	Embedding []float32
}

// Storage persists chunk records and serves similarity queries.
type Storage interface {
	// EnsureCollection creates the backing collection with cosine distance
	// and the given dimensionality if it does not already exist.
	EnsureCollection(ctx context.Context, dimension int) error
	// Upsert writes all records in one logical operation.
	Upsert(ctx context.Context, records []Record) error
	// Search returns up to topK passages ordered by descending similarity.
	// An empty result is a valid outcome, not an error.
	Search(ctx context.Context, vector []float32, topK int) ([]domain.SearchResult, error)
}
