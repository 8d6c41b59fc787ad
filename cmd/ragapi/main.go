package main

import (
	"context"
	"flag"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"ragapi/internal/chunker"
	"ragapi/internal/composer"
	"ragapi/internal/config"
	embgoogleai "ragapi/internal/embedding/googleai"
	"ragapi/internal/extractor"
	gengoogleai "ragapi/internal/generation/googleai"
	"ragapi/internal/httpapi"
	"ragapi/internal/ingest"
	"ragapi/internal/intent"
	"ragapi/internal/service"
	"ragapi/internal/vectorstore"
	"ragapi/internal/vectorstore/memory"
	"ragapi/internal/vectorstore/qdrant"
)

func main() {
	_ = godotenv.Load()
	logger := log.NewWithOptions(os.Stderr, log.Options{ReportTimestamp: true, Prefix: "ragapi"})

	var cfgPath string
	flag.StringVar(&cfgPath, "config", "", "Path to YAML config file (optional; uses ~/.config/ragapi/config.yaml if not provided)")
	flag.Parse()

	var cfg *config.AppConfig
	var err error
	if cfgPath == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(cfgPath)
	}
	if err != nil {
		logger.Fatal("failed to load config", "error", err)
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatal("invalid config", "error", err)
	}

	ctx := context.Background()

	// External-client handles are constructed once here and shared by every
	// request; the handlers themselves hold no mutable state.
	emb, err := embgoogleai.NewEmbedder(ctx, embgoogleai.Config{
		APIKey:    cfg.GoogleAIKey(),
		Model:     cfg.GoogleAI.EmbeddingModel,
		Dimension: cfg.GoogleAI.Dimension,
	})
	if err != nil {
		logger.Fatal("embedder init failed", "error", err)
	}
	gen, err := gengoogleai.NewGenerator(ctx, gengoogleai.Config{
		APIKey: cfg.GoogleAIKey(),
		Model:  cfg.GoogleAI.Model,
	})
	if err != nil {
		logger.Fatal("generator init failed", "error", err)
	}

	var st vectorstore.Storage
	switch cfg.VectorStore.Type {
	case "memory":
		st = memory.NewStorage()
	case "qdrant":
		qc := cfg.VectorStore.Qdrant
		st = qdrant.NewStorage(qdrant.Config{
			URL:        qc.URL,
			APIKey:     os.Getenv(qc.APIKeyEnv),
			Collection: qc.Collection,
			Timeout:    time.Duration(qc.TimeoutSecs) * time.Second,
		})
	default:
		logger.Fatal("unknown vector store", "type", cfg.VectorStore.Type)
	}

	ch, err := chunker.NewCharacterChunker(cfg.Chunker.Size, cfg.Chunker.Overlap)
	if err != nil {
		logger.Fatal("chunker init failed", "error", err)
	}

	ingestor := ingest.NewIngestor(extractor.NewPDFExtractor(), ch, emb, st)
	svc := service.NewRAGService(emb, st, intent.NewClassifier(gen), composer.NewComposer(gen), cfg.Retrieval.TopK)

	handler := httpapi.NewHandler(svc, ingestor, cfg.Server.DataDir, logger)
	router := httpapi.NewRouter(handler)

	logger.Info("listening", "port", cfg.Server.Port, "store", cfg.VectorStore.Type)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		logger.Fatal("server stopped", "error", err)
	}
}
