package ingest

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"ragapi/internal/domain"
	"ragapi/internal/vectorstore"
)

// ErrEmptyCorpus is returned when no document in the data directory yields
// any extractable text. No index is created in that case.
var ErrEmptyCorpus = errors.New("no PDF content found in data directory")

// TextExtractor pulls plain text out of a file on disk.
type TextExtractor interface {
	ExtractText(path string) (string, error)
}

// Ingestor runs the extract, chunk, embed, store pipeline over a directory
// of PDF files.
type Ingestor struct {
	extractor TextExtractor
	chunker   domain.Chunker
	embedder  domain.Embedder
	store     vectorstore.Storage
}

// NewIngestor wires the ingestion pipeline.
func NewIngestor(extractor TextExtractor, chunker domain.Chunker, embedder domain.Embedder, store vectorstore.Storage) *Ingestor {
	return &Ingestor{extractor: extractor, chunker: chunker, embedder: embedder, store: store}
}

// IngestDirectory processes every PDF in dir and returns the number of chunks
// stored. The whole directory is re-processed on each call and nothing is
// deduplicated against records already in the store, so repeat calls append
// duplicate chunks.
func (in *Ingestor) IngestDirectory(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read data directory: %w", err)
	}
	var documents []domain.Document
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".pdf") {
			continue
		}
		text, err := in.extractor.ExtractText(filepath.Join(dir, entry.Name()))
		if err != nil {
			return 0, fmt.Errorf("extract %s: %w", entry.Name(), err)
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		documents = append(documents, domain.Document{Name: entry.Name(), Text: text})
	}
	if len(documents) == 0 {
		return 0, ErrEmptyCorpus
	}

	var chunks []domain.Chunk
	var texts []string
	for _, doc := range documents {
		for _, ch := range in.chunker.Chunk(doc) {
			chunks = append(chunks, ch)
			texts = append(texts, ch.Text)
		}
	}
	if len(chunks) == 0 {
		return 0, ErrEmptyCorpus
	}

	if err := in.store.EnsureCollection(ctx, in.embedder.Dimension()); err != nil {
		return 0, fmt.Errorf("ensure collection: %w", err)
	}
	vectors, err := in.embedder.EmbedDocuments(ctx, texts)
	if err != nil {
		return 0, fmt.Errorf("embed chunks: %w", err)
	}
	if len(vectors) != len(chunks) {
		return 0, fmt.Errorf("embedder returned %d vectors for %d chunks", len(vectors), len(chunks))
	}

	records := make([]vectorstore.Record, len(chunks))
	for i := range chunks {
		records[i] = vectorstore.Record{
			ID:        uuid.NewString(),
			Text:      chunks[i].Text,
			Embedding: vectors[i],
		}
	}
	if err := in.store.Upsert(ctx, records); err != nil {
		return 0, fmt.Errorf("store chunks: %w", err)
	}
	return len(records), nil
}
