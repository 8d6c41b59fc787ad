package memory

import (
	"context"
	"errors"
	"math"
	"sort"
	"sync"

	"ragapi/internal/domain"
	"ragapi/internal/vectorstore"
)

// Storage is a brute-force cosine similarity store kept in memory. It backs
// tests and keyless development runs; production uses the Qdrant client.
type Storage struct {
	mu        sync.RWMutex
	dimension int
	records   []vectorstore.Record
}

// NewStorage returns an empty in-memory store.
func NewStorage() *Storage { return &Storage{} }

// EnsureCollection fixes the vector dimension. Existing records survive
// repeat calls with the same dimension, mirroring the lazy-create semantics
// of the managed store.
func (s *Storage) EnsureCollection(_ context.Context, dimension int) error {
	if dimension <= 0 {
		return errors.New("memory: invalid dimension")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dimension != 0 && s.dimension != dimension {
		return errors.New("memory: collection exists with different dimension")
	}
	s.dimension = dimension
	return nil
}

// Upsert appends all records. There is no deduplication; re-ingesting the
// same content stores it again.
func (s *Storage) Upsert(_ context.Context, records []vectorstore.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.dimension == 0 {
		return errors.New("memory: collection not initialized")
	}
	for _, rec := range records {
		if len(rec.Embedding) != s.dimension {
			return errors.New("memory: vector dimension mismatch")
		}
	}
	s.records = append(s.records, records...)
	return nil
}

// Search scores every record by cosine similarity and returns the top k.
func (s *Storage) Search(_ context.Context, vector []float32, topK int) ([]domain.SearchResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if topK <= 0 {
		return nil, errors.New("memory: topK must be positive")
	}
	results := make([]domain.SearchResult, 0, len(s.records))
	for _, rec := range s.records {
		results = append(results, domain.SearchResult{
			Text:  rec.Text,
			Score: cosine(rec.Embedding, vector),
		})
	}
	sort.SliceStable(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	if topK < len(results) {
		results = results[:topK]
	}
	return results, nil
}

// Len reports the number of stored records.
func (s *Storage) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

func cosine(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var dot, na, nb float64
	for i := 0; i < n; i++ {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
