package httpapi

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"ragapi/internal/domain"
)

// Asker answers questions against the indexed corpus.
type Asker interface {
	AnswerWithContext(ctx context.Context, question string) domain.RAGResponse
}

// Ingestor indexes every PDF found in a directory.
type Ingestor interface {
	IngestDirectory(ctx context.Context, dir string) (int, error)
}

// Handler exposes the RAG pipeline over HTTP.
type Handler struct {
	asker    Asker
	ingestor Ingestor
	dataDir  string
	logger   *log.Logger
}

// NewHandler creates the HTTP handler. dataDir is where uploads are saved
// and re-ingested from.
func NewHandler(asker Asker, ingestor Ingestor, dataDir string, logger *log.Logger) *Handler {
	return &Handler{asker: asker, ingestor: ingestor, dataDir: dataDir, logger: logger}
}

// Register attaches the API routes to the given engine.
func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.root)
	r.POST("/upload", h.upload)
	r.POST("/ask", h.ask)
}

func (h *Handler) root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "RAG API is running"})
}

func (h *Handler) upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "missing multipart file field"})
		return
	}
	if err := os.MkdirAll(h.dataDir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	dst := filepath.Join(h.dataDir, filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}

	count, err := h.ingestor.IngestDirectory(c.Request.Context(), h.dataDir)
	if err != nil {
		h.logger.Error("ingest failed", "file", file.Filename, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		return
	}
	h.logger.Info("ingested data directory", "file", file.Filename, "chunks", count)

	c.JSON(http.StatusOK, gin.H{
		"message":  file.Filename + " uploaded and processed successfully.",
		"filename": file.Filename,
		"status":   "success",
	})
}

type askRequest struct {
	Question string `json:"question" binding:"required"`
}

func (h *Handler) ask(c *gin.Context) {
	var req askRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": "invalid body: question is required"})
		return
	}
	// The orchestrator never fails outward; pipeline faults come back as an
	// error-shaped response with HTTP 200.
	resp := h.asker.AnswerWithContext(c.Request.Context(), req.Question)
	if resp.Intent.I == "error" {
		h.logger.Warn("ask pipeline degraded", "question", req.Question, "answer", resp.Answer)
	}
	c.JSON(http.StatusOK, resp)
}
