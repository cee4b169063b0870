package providers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	anthropicopt "github.com/anthropics/anthropic-sdk-go/option"

	"chat-agent/models"
)

// continuePrompt closes a conversation that ends with an assistant turn,
// which the Messages API would otherwise treat as a prefill to extend.
const continuePrompt = "Please answer my question using the information above."

// Anthropic calls the Messages API with tool use
type Anthropic struct {
	client    anthropic.Client
	model     string
	maxTokens int64
}

// NewAnthropic creates an Anthropic provider
func NewAnthropic(apiKey, baseURL, model string, httpClient *http.Client) *Anthropic {
	opts := []anthropicopt.RequestOption{anthropicopt.WithAPIKey(apiKey)}
	if baseURL != "" {
		opts = append(opts, anthropicopt.WithBaseURL(baseURL))
	}
	if httpClient != nil {
		opts = append(opts, anthropicopt.WithHTTPClient(httpClient))
	}
	return &Anthropic{
		client:    anthropic.NewClient(opts...),
		model:     model,
		maxTokens: 1024,
	}
}

// Name identifies the provider in logs
func (a *Anthropic) Name() string {
	return "anthropic"
}

// Complete sends one Messages request; a tool_use block wins over text
func (a *Anthropic) Complete(ctx context.Context, req Request) (*Response, error) {
	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(modelOrDefault(req.Model, a.model)),
		MaxTokens:   a.maxTokens,
		Temperature: anthropic.Float(req.Temperature),
	}

	for _, m := range req.Messages {
		content := contentOrPlaceholder(m.Content)
		switch m.Role {
		case models.RoleSystem:
			params.System = append(params.System, anthropic.TextBlockParam{Text: content})
		case models.RoleAssistant:
			params.Messages = append(params.Messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(content)))
		default:
			params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(content)))
		}
	}
	if n := len(req.Messages); n > 0 && req.Messages[n-1].Role == models.RoleAssistant {
		params.Messages = append(params.Messages, anthropic.NewUserMessage(anthropic.NewTextBlock(continuePrompt)))
	}

	if len(req.Tools) > 0 && req.ToolChoice != ToolChoiceNone {
		for _, d := range req.Tools {
			var schema struct {
				Properties map[string]interface{} `json:"properties"`
				Required   []string               `json:"required"`
			}
			if err := json.Unmarshal(d.Schema(), &schema); err != nil {
				return nil, err
			}
			params.Tools = append(params.Tools, anthropic.ToolUnionParam{
				OfTool: &anthropic.ToolParam{
					Name:        d.Name,
					Description: anthropic.String(d.Description),
					InputSchema: anthropic.ToolInputSchemaParam{
						Properties: schema.Properties,
						Required:   schema.Required,
					},
				},
			})
		}
		switch req.ToolChoice {
		case ToolChoiceRequired:
			params.ToolChoice = anthropic.ToolChoiceUnionParam{OfAny: &anthropic.ToolChoiceAnyParam{}}
		case ToolChoiceAuto:
			params.ToolChoice = anthropic.ToolChoiceUnionParam{OfAuto: &anthropic.ToolChoiceAutoParam{}}
		}
	}

	msg, err := a.client.Messages.New(ctx, params)
	if err != nil {
		return nil, err
	}

	var text strings.Builder
	for _, block := range msg.Content {
		switch b := block.AsAny().(type) {
		case anthropic.ToolUseBlock:
			return &Response{ToolCall: &models.ToolCall{
				Name:      b.Name,
				Arguments: json.RawMessage(b.Input),
			}}, nil
		case anthropic.TextBlock:
			text.WriteString(b.Text)
		}
	}
	return &Response{Text: text.String()}, nil
}
