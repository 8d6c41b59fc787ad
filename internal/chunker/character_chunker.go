package chunker

import (
	"errors"
	"fmt"
	"strings"

	"ragapi/internal/domain"
)

// CharacterChunker splits text into fixed-size rune windows with overlap.
// Windows are cut irrespective of word or sentence boundaries, so a chunk
// may end mid-word; the overlap preserves context across the cut.
type CharacterChunker struct {
	size    int
	overlap int
}

// NewCharacterChunker validates the window settings and returns a chunker.
func NewCharacterChunker(size, overlap int) (*CharacterChunker, error) {
	if size <= 0 {
		return nil, errors.New("chunker: size must be greater than zero")
	}
	if overlap < 0 {
		return nil, errors.New("chunker: overlap cannot be negative")
	}
	if overlap >= size {
		return nil, fmt.Errorf("chunker: overlap %d must be smaller than size %d", overlap, size)
	}
	return &CharacterChunker{size: size, overlap: overlap}, nil
}

// Chunk splits the document text into overlapping windows. Empty or
// whitespace-only documents yield no chunks.
func (c *CharacterChunker) Chunk(document domain.Document) []domain.Chunk {
	if strings.TrimSpace(document.Text) == "" {
		return nil
	}
	runes := []rune(document.Text)
	var chunks []domain.Chunk
	step := c.size - c.overlap
	idx := 0
	for start := 0; start < len(runes); start += step {
		end := start + c.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, domain.Chunk{Text: string(runes[start:end]), Index: idx})
		idx++
		if end == len(runes) {
			break
		}
	}
	return chunks
}
