package services

import (
	"context"
	"fmt"
	"strings"

	"chat-agent/models"
	"chat-agent/providers"
)

const classifierTemperature = 0

// Classifier maps a question to one of the known categories
type Classifier struct {
	provider providers.Provider
}

// NewClassifier creates a classifier backed by provider
func NewClassifier(provider providers.Provider) *Classifier {
	return &Classifier{provider: provider}
}

// Classify asks the provider for a single category word. A reply outside
// the known categories yields a *ClassificationError.
func (c *Classifier) Classify(ctx context.Context, question string) (models.Category, error) {
	resp, err := c.provider.Complete(ctx, providers.Request{
		Temperature: classifierTemperature,
		Messages: []models.Message{
			{Role: models.RoleUser, Content: classificationPrompt(question)},
		},
	})
	if err != nil {
		return "", &UpstreamError{Stage: "classify", Err: err}
	}

	category, ok := models.ParseCategory(resp.Text)
	if !ok {
		return category, &ClassificationError{Token: resp.Text}
	}
	return category, nil
}

func classificationPrompt(question string) string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = string(c)
	}

	return fmt.Sprintf(
		"Classify the user's request into exactly one of the following categories: %s. "+
			"Reply with ONLY the category word.\n\nUSER: %s\n\nCATEGORY:",
		strings.Join(names, ", "), question,
	)
}
