package service

import (
	"context"
	"fmt"

	"ragapi/internal/domain"
	"ragapi/internal/vectorstore"
)

// IntentClassifier labels a question; total, never fails.
type IntentClassifier interface {
	Classify(ctx context.Context, question string) domain.IntentClassification
}

// AnswerComposer turns a question and retrieved passages into an answer.
type AnswerComposer interface {
	Compose(ctx context.Context, question string, passages []string) (string, error)
}

// RAGService orchestrates the query pipeline: retrieve, classify, compose.
type RAGService struct {
	embedder   domain.Embedder
	store      vectorstore.Storage
	classifier IntentClassifier
	composer   AnswerComposer
	topK       int
}

// NewRAGService wires the query pipeline. topK bounds how many passages are
// retrieved per question.
func NewRAGService(embedder domain.Embedder, store vectorstore.Storage, classifier IntentClassifier, composer AnswerComposer, topK int) *RAGService {
	if topK <= 0 {
		topK = 3
	}
	return &RAGService{embedder: embedder, store: store, classifier: classifier, composer: composer, topK: topK}
}

// AnswerWithContext answers a question against the indexed corpus. It always
// returns a well-formed response: any internal fault is converted into a
// response with an error-category intent rather than propagated.
func (s *RAGService) AnswerWithContext(ctx context.Context, question string) domain.RAGResponse {
	// Classification has no data dependency on retrieval; run it alongside.
	intentCh := make(chan domain.IntentClassification, 1)
	go func() {
		intentCh <- s.classifier.Classify(ctx, question)
	}()

	passages, err := s.search(ctx, question, s.topK)
	if err != nil {
		return errorResponse(question, err)
	}
	answer, err := s.composer.Compose(ctx, question, passages)
	if err != nil {
		return errorResponse(question, err)
	}
	return domain.RAGResponse{
		Question: question,
		Answer:   answer,
		Intent:   <-intentCh,
	}
}

// search embeds the question and returns the text of the top-k matches. An
// empty slice is a valid outcome when the index is empty or nothing matches.
func (s *RAGService) search(ctx context.Context, question string, k int) ([]string, error) {
	vector, err := s.embedder.EmbedQuery(ctx, question)
	if err != nil {
		return nil, fmt.Errorf("embed question: %w", err)
	}
	results, err := s.store.Search(ctx, vector, k)
	if err != nil {
		return nil, fmt.Errorf("similarity search: %w", err)
	}
	passages := make([]string, 0, len(results))
	for _, r := range results {
		if r.Text != "" {
			passages = append(passages, r.Text)
		}
	}
	return passages, nil
}

func errorResponse(question string, err error) domain.RAGResponse {
	return domain.RAGResponse{
		Question: question,
		Answer:   fmt.Sprintf("Sorry, there was an error processing your question: %s", err),
		Intent: domain.IntentClassification{
			Q:      "Error occurred",
			R:      "System error",
			I:      "error",
			Reason: "Exception during processing",
		},
	}
}
