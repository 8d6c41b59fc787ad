package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ServerConfig holds the HTTP listener and upload directory settings.
type ServerConfig struct {
	Port    string `yaml:"port"`
	DataDir string `yaml:"data_dir"`
}

// GoogleAIConfig configures the Gemini embedding and generation clients.
// The API key is resolved from the environment variable named by APIKeyEnv.
type GoogleAIConfig struct {
	APIKeyEnv      string `yaml:"api_key_env"`
	Model          string `yaml:"model"`
	EmbeddingModel string `yaml:"embedding_model"`
	Dimension      int    `yaml:"dimension"`
}

// QdrantConfig contains connection details for a Qdrant vector store.
type QdrantConfig struct {
	URL         string `yaml:"url"`
	APIKeyEnv   string `yaml:"api_key_env"`
	Collection  string `yaml:"collection"`
	TimeoutSecs int    `yaml:"timeout_secs"`
}

// VectorStoreConfig selects and configures the vector store implementation.
type VectorStoreConfig struct {
	Type   string        `yaml:"type"`
	Qdrant *QdrantConfig `yaml:"qdrant,omitempty"`
}

// ChunkerConfig configures how extracted text is split into chunks.
type ChunkerConfig struct {
	Size    int `yaml:"size"`
	Overlap int `yaml:"overlap"`
}

// RetrievalConfig configures the query side of the pipeline.
type RetrievalConfig struct {
	TopK int `yaml:"top_k"`
}

// AppConfig is the root application configuration structure.
type AppConfig struct {
	Server      ServerConfig      `yaml:"server"`
	GoogleAI    GoogleAIConfig    `yaml:"google_ai"`
	VectorStore VectorStoreConfig `yaml:"vector_store"`
	Chunker     ChunkerConfig     `yaml:"chunker"`
	Retrieval   RetrievalConfig   `yaml:"retrieval"`
}

// Load reads a config from a specified path. If the file does not exist, returns defaults.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return defaultConfig(), nil
		}
		return nil, err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	applyConfigDefaults(&cfg)
	return &cfg, nil
}

// LoadDefault tries ./config.yaml first, then ~/.config/ragapi/config.yaml.
// If neither exists, it writes defaults to ~/.config/ragapi/config.yaml and returns them.
func LoadDefault() (*AppConfig, string, error) {
	cwdPath := "config.yaml"
	if _, err := os.Stat(cwdPath); err == nil {
		cfg, err := Load(cwdPath)
		return cfg, cwdPath, err
	}
	userPath, err := defaultUserConfigPath()
	if err != nil {
		return nil, "", err
	}
	if _, err := os.Stat(userPath); err == nil {
		cfg, err := Load(userPath)
		return cfg, userPath, err
	}
	cfg := defaultConfig()
	if err := Save(userPath, cfg); err != nil {
		return nil, "", err
	}
	return cfg, userPath, nil
}

// Save writes the config to the given path, creating directories as needed.
func Save(path string, cfg *AppConfig) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks that everything required to reach the external providers is
// present. A missing API key is a startup failure, never a per-request error.
func (c *AppConfig) Validate() error {
	if os.Getenv(c.GoogleAI.APIKeyEnv) == "" {
		return fmt.Errorf("missing Google AI API key in env %s", c.GoogleAI.APIKeyEnv)
	}
	if c.GoogleAI.Dimension <= 0 {
		return fmt.Errorf("google_ai dimension must be positive, got %d", c.GoogleAI.Dimension)
	}
	switch c.VectorStore.Type {
	case "memory":
	case "qdrant":
		if c.VectorStore.Qdrant == nil || c.VectorStore.Qdrant.URL == "" {
			return errors.New("qdrant vector store selected but url is not configured")
		}
		if c.VectorStore.Qdrant.Collection == "" {
			return errors.New("qdrant collection name is required")
		}
	default:
		return fmt.Errorf("unknown vector store type %q", c.VectorStore.Type)
	}
	return nil
}

// GoogleAIKey resolves the configured Google AI API key from the environment.
func (c *AppConfig) GoogleAIKey() string {
	return os.Getenv(c.GoogleAI.APIKeyEnv)
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "ragapi", "config.yaml"), nil
}

func defaultConfig() *AppConfig {
	cfg := &AppConfig{
		Server: ServerConfig{Port: "8080", DataDir: "data"},
		GoogleAI: GoogleAIConfig{
			APIKeyEnv:      "GOOGLE_API_KEY",
			Model:          "gemini-1.5-flash",
			EmbeddingModel: "embedding-001",
			Dimension:      768,
		},
		VectorStore: VectorStoreConfig{Type: "qdrant", Qdrant: &QdrantConfig{
			URL:        "http://localhost:6333",
			APIKeyEnv:  "QDRANT_API_KEY",
			Collection: "rag-chunks",
		}},
		Chunker:   ChunkerConfig{Size: 1000, Overlap: 200},
		Retrieval: RetrievalConfig{TopK: 3},
	}
	return cfg
}

func applyConfigDefaults(cfg *AppConfig) {
	def := defaultConfig()
	if cfg.Server.Port == "" {
		cfg.Server.Port = def.Server.Port
	}
	if cfg.Server.DataDir == "" {
		cfg.Server.DataDir = def.Server.DataDir
	}
	if cfg.GoogleAI.APIKeyEnv == "" {
		cfg.GoogleAI.APIKeyEnv = def.GoogleAI.APIKeyEnv
	}
	if cfg.GoogleAI.Model == "" {
		cfg.GoogleAI.Model = def.GoogleAI.Model
	}
	if cfg.GoogleAI.EmbeddingModel == "" {
		cfg.GoogleAI.EmbeddingModel = def.GoogleAI.EmbeddingModel
	}
	if cfg.GoogleAI.Dimension == 0 {
		cfg.GoogleAI.Dimension = def.GoogleAI.Dimension
	}
	if cfg.VectorStore.Type == "" {
		cfg.VectorStore.Type = "qdrant"
	}
	if cfg.VectorStore.Type == "qdrant" {
		if cfg.VectorStore.Qdrant == nil {
			cfg.VectorStore.Qdrant = def.VectorStore.Qdrant
		} else {
			if cfg.VectorStore.Qdrant.URL == "" {
				cfg.VectorStore.Qdrant.URL = def.VectorStore.Qdrant.URL
			}
			if cfg.VectorStore.Qdrant.APIKeyEnv == "" {
				cfg.VectorStore.Qdrant.APIKeyEnv = def.VectorStore.Qdrant.APIKeyEnv
			}
			if cfg.VectorStore.Qdrant.Collection == "" {
				cfg.VectorStore.Qdrant.Collection = def.VectorStore.Qdrant.Collection
			}
		}
	}
	if cfg.Chunker.Size == 0 {
		cfg.Chunker.Size = def.Chunker.Size
	}
	if cfg.Chunker.Overlap == 0 {
		cfg.Chunker.Overlap = def.Chunker.Overlap
	}
	if cfg.Retrieval.TopK == 0 {
		cfg.Retrieval.TopK = def.Retrieval.TopK
	}
}
