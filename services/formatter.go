package services

import (
	"context"
	"encoding/json"
	"fmt"

	"chat-agent/models"
	"chat-agent/providers"
)

const (
	formatterTemperature = 0.4

	formatterStyle = "You are a helpful assistant that formats structured API data " +
		"into concise, user-friendly answers. Respond in Markdown."
)

// Formatter turns a tool result into a Markdown answer
type Formatter struct {
	provider providers.Provider
}

// NewFormatter creates a formatter backed by provider
func NewFormatter(provider providers.Provider) *Formatter {
	return &Formatter{provider: provider}
}

// Format passes the question and the serialized result to the provider
// and returns its reply unchanged.
func (f *Formatter) Format(ctx context.Context, label string, result models.ToolResult, question string) (string, error) {
	payload, err := SerializeResult(result)
	if err != nil {
		return "", err
	}

	resp, err := f.provider.Complete(ctx, providers.Request{
		Temperature: formatterTemperature,
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: formatterStyle},
			{Role: models.RoleUser, Content: question},
			{Role: models.RoleAssistant, Content: fmt.Sprintf("The following %s data may help:\n```json\n%s\n```", label, payload)},
		},
	})
	if err != nil {
		return "", &UpstreamError{Stage: "format", Err: err}
	}
	if resp.Text == "" {
		return "", &UpstreamError{Stage: "format", Err: ErrEmptyReply}
	}
	return resp.Text, nil
}

// SerializeResult renders a tool result as indented JSON with sorted keys
func SerializeResult(result models.ToolResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("serializing tool result: %w", err)
	}
	return string(data), nil
}
