package chunker

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ragapi/internal/domain"
)

func TestNewCharacterChunker_Validation(t *testing.T) {
	_, err := NewCharacterChunker(0, 0)
	assert.Error(t, err)

	_, err = NewCharacterChunker(100, -1)
	assert.Error(t, err)

	_, err = NewCharacterChunker(100, 100)
	assert.Error(t, err)

	_, err = NewCharacterChunker(100, 20)
	assert.NoError(t, err)
}

func TestChunk_FixedSizeWithOverlap(t *testing.T) {
	c, err := NewCharacterChunker(10, 4)
	require.NoError(t, err)

	text := strings.Repeat("abcdef", 5) // 30 chars
	chunks := c.Chunk(domain.Document{Name: "t.pdf", Text: text})

	require.NotEmpty(t, chunks)
	for i, ch := range chunks {
		assert.LessOrEqual(t, len(ch.Text), 10)
		assert.Equal(t, i, ch.Index)
	}
	// Neighboring chunks share the overlap region.
	first := []rune(chunks[0].Text)
	second := []rune(chunks[1].Text)
	assert.Equal(t, string(first[len(first)-4:]), string(second[:4]))
}

func TestChunk_SplitsMidWord(t *testing.T) {
	c, err := NewCharacterChunker(5, 1)
	require.NoError(t, err)

	chunks := c.Chunk(domain.Document{Text: "alphabetically"})
	require.Greater(t, len(chunks), 1)
	assert.Equal(t, "alpha", chunks[0].Text)
}

func TestChunk_ShortTextSingleChunk(t *testing.T) {
	c, err := NewCharacterChunker(1000, 200)
	require.NoError(t, err)

	chunks := c.Chunk(domain.Document{Text: "The capital of France is Paris."})
	require.Len(t, chunks, 1)
	assert.Equal(t, "The capital of France is Paris.", chunks[0].Text)
}

func TestChunk_EmptyDocument(t *testing.T) {
	c, err := NewCharacterChunker(1000, 200)
	require.NoError(t, err)

	assert.Empty(t, c.Chunk(domain.Document{Text: ""}))
	assert.Empty(t, c.Chunk(domain.Document{Text: "   \n\t "}))
}

func TestChunk_RuneBoundaries(t *testing.T) {
	c, err := NewCharacterChunker(3, 1)
	require.NoError(t, err)

	chunks := c.Chunk(domain.Document{Text: "héllö wörld"})
	for _, ch := range chunks {
		assert.True(t, len([]rune(ch.Text)) <= 3)
		assert.True(t, strings.ToValidUTF8(ch.Text, "?") == ch.Text)
	}
}
