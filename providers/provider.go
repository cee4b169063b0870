// Package providers adapts language-model APIs to the completion
// capability used by the agent.
package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"chat-agent/config"
	"chat-agent/models"
)

// ToolChoice controls whether the model may, must or must not call a tool
type ToolChoice string

const (
	ToolChoiceAuto     ToolChoice = "auto"
	ToolChoiceRequired ToolChoice = "required"
	ToolChoiceNone     ToolChoice = "none"
)

// ErrEmptyResponse is returned when a provider answers without any choice
var ErrEmptyResponse = errors.New("empty response from provider")

// Request is a single completion call
type Request struct {
	// Model overrides the provider's configured model when set
	Model       string
	Temperature float64
	Messages    []models.Message
	Tools       []models.ToolDescriptor
	ToolChoice  ToolChoice
}

// Response holds either the completion text or the tool call the model chose
type Response struct {
	Text     string
	ToolCall *models.ToolCall
}

// Provider is a language-model completion capability
type Provider interface {
	Name() string
	Complete(ctx context.Context, req Request) (*Response, error)
}

// New creates the provider selected by cfg.AIProvider
func New(ctx context.Context, cfg *config.Config) (Provider, error) {
	httpClient := &http.Client{Timeout: 60 * time.Second}

	switch cfg.AIProvider {
	case "openai":
		return NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIBaseURL, cfg.OpenAIModel, httpClient), nil
	case "anthropic":
		return NewAnthropic(cfg.AnthropicAPIKey, cfg.AnthropicBaseURL, cfg.AnthropicModel, httpClient), nil
	case "ollama":
		return NewOllama(cfg.OllamaURL, cfg.OllamaModel, httpClient)
	case "gemini":
		return NewGemini(ctx, cfg.GeminiAPIKey, cfg.GeminiModel)
	default:
		return nil, fmt.Errorf("unsupported AI provider: %s", cfg.AIProvider)
	}
}

// emptyContent stands in for blank turns on APIs that reject empty text blocks
const emptyContent = "(empty message)"

func contentOrPlaceholder(content string) string {
	if strings.TrimSpace(content) == "" {
		return emptyContent
	}
	return content
}

func modelOrDefault(requested, fallback string) string {
	if requested != "" {
		return requested
	}
	return fallback
}

// functionDefinition renders a descriptor in the OpenAI function-tool shape
// that Ollama also accepts.
func functionDefinition(d models.ToolDescriptor) json.RawMessage {
	def, _ := json.Marshal(map[string]interface{}{
		"type": "function",
		"function": map[string]interface{}{
			"name":        d.Name,
			"description": d.Description,
			"parameters":  d.Schema(),
		},
	})
	return def
}
