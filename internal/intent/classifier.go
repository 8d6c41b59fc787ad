package intent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"ragapi/internal/domain"
)

const promptTemplate = `You are an intent classification system.
For the given message, classify it into:
Q = Query meaning, R = Request meaning, I = Intent, Reason = Why you classified it that way.

Output ONLY valid JSON format (no markdown, no explanation):
{
    "Q": "brief query meaning",
    "R": "brief request meaning",
    "I": "identified_intent_category",
    "Reason": "brief explanation"
}

Message: %q`

// Classifier labels questions with a structured judgment. Classification is
// advisory: Classify is total and never fails outward.
type Classifier struct {
	generator domain.Generator
}

// NewClassifier creates a classifier backed by the given generation model.
func NewClassifier(generator domain.Generator) *Classifier {
	return &Classifier{generator: generator}
}

// Classify asks the model for a strict JSON judgment of the question. Any
// generation or parse failure yields the fixed fallback classification.
func (c *Classifier) Classify(ctx context.Context, question string) domain.IntentClassification {
	out, err := c.generator.Generate(ctx, fmt.Sprintf(promptTemplate, question))
	if err != nil {
		return fallback("model call failed, using fallback classification")
	}
	parsed, err := parseClassification(out)
	if err != nil {
		return fallback("JSON parsing failed, using fallback classification")
	}
	return parsed
}

func parseClassification(raw string) (domain.IntentClassification, error) {
	clean := strings.TrimSpace(raw)
	// Models wrap JSON in markdown fences despite instructions.
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(strings.TrimSpace(clean), "```")

	var parsed domain.IntentClassification
	if err := json.Unmarshal([]byte(clean), &parsed); err != nil {
		return domain.IntentClassification{}, err
	}
	if strings.TrimSpace(parsed.I) == "" {
		return domain.IntentClassification{}, fmt.Errorf("classification missing intent field")
	}
	return parsed, nil
}

func fallback(reason string) domain.IntentClassification {
	return domain.IntentClassification{
		Q:      "Query about information",
		R:      "Request for answer",
		I:      "general_query",
		Reason: reason,
	}
}
