package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "config.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "data", cfg.Server.DataDir)
	assert.Equal(t, "GOOGLE_API_KEY", cfg.GoogleAI.APIKeyEnv)
	assert.Equal(t, 768, cfg.GoogleAI.Dimension)
	assert.Equal(t, "qdrant", cfg.VectorStore.Type)
	require.NotNil(t, cfg.VectorStore.Qdrant)
	assert.Equal(t, "http://localhost:6333", cfg.VectorStore.Qdrant.URL)
	assert.Equal(t, 1000, cfg.Chunker.Size)
	assert.Equal(t, 200, cfg.Chunker.Overlap)
	assert.Equal(t, 3, cfg.Retrieval.TopK)
}

func TestLoad_PartialFileFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"server:\n  port: \"9000\"\nvector_store:\n  type: memory\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, "memory", cfg.VectorStore.Type)
	// Everything unset falls back to defaults.
	assert.Equal(t, "data", cfg.Server.DataDir)
	assert.Equal(t, 1000, cfg.Chunker.Size)
	assert.Equal(t, "gemini-1.5-flash", cfg.GoogleAI.Model)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server: [not: a: mapping"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := defaultConfig()
	want.Server.Port = "9090"

	require.NoError(t, Save(path, want))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestValidate(t *testing.T) {
	t.Setenv("TEST_GOOGLE_KEY", "secret")

	cfg := defaultConfig()
	cfg.GoogleAI.APIKeyEnv = "TEST_GOOGLE_KEY"
	assert.NoError(t, cfg.Validate())

	t.Run("missing api key", func(t *testing.T) {
		c := defaultConfig()
		c.GoogleAI.APIKeyEnv = "TEST_UNSET_GOOGLE_KEY"
		err := c.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "TEST_UNSET_GOOGLE_KEY")
	})

	t.Run("bad dimension", func(t *testing.T) {
		c := defaultConfig()
		c.GoogleAI.APIKeyEnv = "TEST_GOOGLE_KEY"
		c.GoogleAI.Dimension = 0
		assert.Error(t, c.Validate())
	})

	t.Run("qdrant without url", func(t *testing.T) {
		c := defaultConfig()
		c.GoogleAI.APIKeyEnv = "TEST_GOOGLE_KEY"
		c.VectorStore.Qdrant.URL = ""
		assert.Error(t, c.Validate())
	})

	t.Run("qdrant without collection", func(t *testing.T) {
		c := defaultConfig()
		c.GoogleAI.APIKeyEnv = "TEST_GOOGLE_KEY"
		c.VectorStore.Qdrant.Collection = ""
		assert.Error(t, c.Validate())
	})

	t.Run("unknown store type", func(t *testing.T) {
		c := defaultConfig()
		c.GoogleAI.APIKeyEnv = "TEST_GOOGLE_KEY"
		c.VectorStore.Type = "pinecone"
		assert.Error(t, c.Validate())
	})

	t.Run("memory store needs no qdrant section", func(t *testing.T) {
		c := defaultConfig()
		c.GoogleAI.APIKeyEnv = "TEST_GOOGLE_KEY"
		c.VectorStore.Type = "memory"
		c.VectorStore.Qdrant = nil
		assert.NoError(t, c.Validate())
	})
}

func TestGoogleAIKey(t *testing.T) {
	t.Setenv("TEST_GOOGLE_KEY", "secret")
	cfg := defaultConfig()
	cfg.GoogleAI.APIKeyEnv = "TEST_GOOGLE_KEY"
	assert.Equal(t, "secret", cfg.GoogleAIKey())
}
