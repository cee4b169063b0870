package services

import (
	"context"

	"chat-agent/models"
	"chat-agent/providers"
)

const (
	chatTemperature = 0.7

	chatStyle = "Please format responses using Markdown when appropriate. " +
		"Use **bold** for emphasis, *italic* for subtle emphasis, " +
		"`code` for inline code, ```code blocks``` for multi-line code, " +
		"# ## ### for headers, and - or * for lists. Double line breaks " +
		"between paragraphs."
)

// GeneralChat answers conversational turns that need no tool
type GeneralChat struct {
	provider providers.Provider
}

// NewGeneralChat creates the fallback chat backed by provider
func NewGeneralChat(provider providers.Provider) *GeneralChat {
	return &GeneralChat{provider: provider}
}

// Chat replays history oldest first, appends the question as a user turn
// and returns the provider's reply unchanged.
func (g *GeneralChat) Chat(ctx context.Context, question string, history []models.Message) (string, error) {
	messages := make([]models.Message, 0, len(history)+2)
	messages = append(messages, models.Message{Role: models.RoleSystem, Content: chatStyle})
	messages = append(messages, history...)
	messages = append(messages, models.Message{Role: models.RoleUser, Content: question})

	resp, err := g.provider.Complete(ctx, providers.Request{
		Temperature: chatTemperature,
		Messages:    messages,
	})
	if err != nil {
		return "", &UpstreamError{Stage: "chat", Err: err}
	}
	if resp.Text == "" {
		return "", &UpstreamError{Stage: "chat", Err: ErrEmptyReply}
	}
	return resp.Text, nil
}
