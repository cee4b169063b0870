package providers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	ollama "github.com/ollama/ollama/api"

	"chat-agent/models"
)

// Ollama calls a local Ollama server's chat endpoint
type Ollama struct {
	client *ollama.Client
	model  string
}

// NewOllama creates an Ollama provider for the server at rawURL
func NewOllama(rawURL, model string, httpClient *http.Client) (*Ollama, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid OLLAMA_URL %q: %w", rawURL, err)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Ollama{client: ollama.NewClient(u, httpClient), model: model}, nil
}

// Name identifies the provider in logs
func (o *Ollama) Name() string {
	return "ollama"
}

// Complete runs a non-streaming chat and returns the first tool call or the text
func (o *Ollama) Complete(ctx context.Context, req Request) (*Response, error) {
	stream := false
	chatReq := &ollama.ChatRequest{
		Model:   modelOrDefault(req.Model, o.model),
		Stream:  &stream,
		Options: map[string]interface{}{"temperature": req.Temperature},
	}
	for _, m := range req.Messages {
		chatReq.Messages = append(chatReq.Messages, ollama.Message{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	// Ollama has no tool_choice; the caller's instructions carry that policy.
	if len(req.Tools) > 0 && req.ToolChoice != ToolChoiceNone {
		for _, d := range req.Tools {
			var tool ollama.Tool
			if err := json.Unmarshal(functionDefinition(d), &tool); err != nil {
				return nil, fmt.Errorf("encoding tool %s: %w", d.Name, err)
			}
			chatReq.Tools = append(chatReq.Tools, tool)
		}
	}

	var (
		text  strings.Builder
		calls []ollama.ToolCall
	)
	err := o.client.Chat(ctx, chatReq, func(resp ollama.ChatResponse) error {
		text.WriteString(resp.Message.Content)
		calls = append(calls, resp.Message.ToolCalls...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(calls) > 0 {
		args, err := json.Marshal(calls[0].Function.Arguments)
		if err != nil {
			return nil, fmt.Errorf("decoding tool arguments: %w", err)
		}
		return &Response{ToolCall: &models.ToolCall{
			Name:      calls[0].Function.Name,
			Arguments: args,
		}}, nil
	}
	return &Response{Text: text.String()}, nil
}
