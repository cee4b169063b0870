package providers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"

	"github.com/sashabaranov/go-openai"

	"chat-agent/models"
)

// OpenAI calls the chat completions API with function calling
type OpenAI struct {
	client *openai.Client
	model  string
}

// NewOpenAI creates an OpenAI provider. baseURL may point at any
// OpenAI-compatible endpoint and must include the /v1 suffix.
func NewOpenAI(apiKey, baseURL, model string, httpClient *http.Client) *OpenAI {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	if httpClient != nil {
		cfg.HTTPClient = httpClient
	}
	return &OpenAI{client: openai.NewClientWithConfig(cfg), model: model}
}

// Name identifies the provider in logs
func (o *OpenAI) Name() string {
	return "openai"
}

// Complete sends one chat completion request and returns the first choice
func (o *OpenAI) Complete(ctx context.Context, req Request) (*Response, error) {
	messages := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
	for _, m := range req.Messages {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    string(m.Role),
			Content: m.Content,
		})
	}

	chatReq := openai.ChatCompletionRequest{
		Model:       modelOrDefault(req.Model, o.model),
		Messages:    messages,
		Temperature: temperature32(req.Temperature),
	}

	if len(req.Tools) > 0 && req.ToolChoice != ToolChoiceNone {
		for _, d := range req.Tools {
			chatReq.Tools = append(chatReq.Tools, openai.Tool{
				Type: openai.ToolTypeFunction,
				Function: &openai.FunctionDefinition{
					Name:        d.Name,
					Description: d.Description,
					Parameters:  d.Schema(),
				},
			})
		}
		if req.ToolChoice != "" {
			chatReq.ToolChoice = string(req.ToolChoice)
		}
	}

	resp, err := o.client.CreateChatCompletion(ctx, chatReq)
	if err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	message := resp.Choices[0].Message
	if len(message.ToolCalls) > 0 {
		call := message.ToolCalls[0]
		return &Response{ToolCall: &models.ToolCall{
			Name:      call.Function.Name,
			Arguments: json.RawMessage(call.Function.Arguments),
		}}, nil
	}
	return &Response{Text: message.Content}, nil
}

// temperature32 keeps a requested zero temperature on the wire; the client
// omits a literal zero and the API would fall back to its default of 1.
func temperature32(t float64) float32 {
	if t <= 0 {
		return math.SmallestNonzeroFloat32
	}
	return float32(t)
}
