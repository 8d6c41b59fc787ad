package composer

import (
	"context"
	"fmt"
	"strings"

	"ragapi/internal/domain"
)

// NoContextAnswer is returned when retrieval produced nothing to ground an
// answer on; the generation model is not consulted in that case.
const NoContextAnswer = "I don't have any relevant information in my knowledge base to answer this question."

const promptTemplate = `You are a helpful AI assistant. Use the following context to answer the user's question comprehensively.

Guidelines:
- Provide a detailed, informative answer
- Use the context provided to support your response
- If the context doesn't fully answer the question, mention what information is available
- Be concise but thorough
- Do not mention "based on the context" - just provide the answer naturally

Context:
%s

Question: %s

Answer:`

// Composer assembles the answer prompt from retrieved passages and invokes
// the generation model.
type Composer struct {
	generator domain.Generator
}

// NewComposer creates a composer backed by the given generation model.
func NewComposer(generator domain.Generator) *Composer {
	return &Composer{generator: generator}
}

// Compose answers the question from the given passages. Empty context
// short-circuits to the fixed no-context answer. The model's trimmed output
// is passed through verbatim, with no post-validation.
func (c *Composer) Compose(ctx context.Context, question string, passages []string) (string, error) {
	grounding := strings.TrimSpace(strings.Join(passages, "\n\n"))
	if grounding == "" {
		return NoContextAnswer, nil
	}
	answer, err := c.generator.Generate(ctx, fmt.Sprintf(promptTemplate, grounding, question))
	if err != nil {
		return "", fmt.Errorf("compose answer: %w", err)
	}
	return strings.TrimSpace(answer), nil
}
