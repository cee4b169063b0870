package providers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"chat-agent/models"
)

// Gemini calls Google's Gemini API with function calling
type Gemini struct {
	client *genai.Client
	model  string
}

// NewGemini creates a Gemini provider
func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	if apiKey == "" {
		return nil, errors.New("missing GEMINI_API_KEY")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

// Name identifies the provider in logs
func (g *Gemini) Name() string {
	return "gemini"
}

// Close releases the underlying client connection
func (g *Gemini) Close() error {
	return g.client.Close()
}

// Complete replays the conversation as chat history and sends the last turn
func (g *Gemini) Complete(ctx context.Context, req Request) (*Response, error) {
	model := g.client.GenerativeModel(modelOrDefault(req.Model, g.model))
	model.SetTemperature(float32(req.Temperature))

	system, contents := geminiContents(req.Messages)
	if len(system) > 0 {
		model.SystemInstruction = &genai.Content{Parts: system}
	}
	if len(contents) == 0 {
		return nil, errors.New("gemini: no user message to send")
	}

	if len(req.Tools) > 0 && req.ToolChoice != ToolChoiceNone {
		declarations := make([]*genai.FunctionDeclaration, 0, len(req.Tools))
		for _, d := range req.Tools {
			declarations = append(declarations, &genai.FunctionDeclaration{
				Name:        d.Name,
				Description: d.Description,
				Parameters:  geminiSchema(d),
			})
		}
		model.Tools = []*genai.Tool{{FunctionDeclarations: declarations}}
		if req.ToolChoice == ToolChoiceRequired {
			model.ToolConfig = &genai.ToolConfig{
				FunctionCallingConfig: &genai.FunctionCallingConfig{Mode: genai.FunctionCallingAny},
			}
		}
	}

	session := model.StartChat()
	session.History = contents[:len(contents)-1]
	resp, err := session.SendMessage(ctx, contents[len(contents)-1].Parts...)
	if err != nil {
		return nil, fmt.Errorf("gemini generate: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return nil, ErrEmptyResponse
	}

	var text strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		switch p := part.(type) {
		case genai.FunctionCall:
			return geminiToolCall(p)
		case *genai.FunctionCall:
			return geminiToolCall(*p)
		case genai.Text:
			text.WriteString(string(p))
		}
	}
	return &Response{Text: text.String()}, nil
}

func geminiToolCall(call genai.FunctionCall) (*Response, error) {
	args, err := json.Marshal(call.Args)
	if err != nil {
		return nil, fmt.Errorf("decoding tool arguments: %w", err)
	}
	return &Response{ToolCall: &models.ToolCall{Name: call.Name, Arguments: args}}, nil
}

// geminiContents splits system turns out and maps the rest onto Gemini's
// user/model roles, closing a trailing assistant turn with a user prompt.
func geminiContents(messages []models.Message) ([]genai.Part, []*genai.Content) {
	var (
		system   []genai.Part
		contents []*genai.Content
	)
	for _, m := range messages {
		text := genai.Text(contentOrPlaceholder(m.Content))
		switch m.Role {
		case models.RoleSystem:
			system = append(system, text)
		case models.RoleAssistant:
			contents = append(contents, &genai.Content{Role: "model", Parts: []genai.Part{text}})
		default:
			contents = append(contents, &genai.Content{Role: "user", Parts: []genai.Part{text}})
		}
	}
	if n := len(contents); n > 0 && contents[n-1].Role == "model" {
		contents = append(contents, &genai.Content{Role: "user", Parts: []genai.Part{genai.Text(continuePrompt)}})
	}
	return system, contents
}

func geminiSchema(d models.ToolDescriptor) *genai.Schema {
	schema := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(d.Parameters)),
	}
	for _, p := range d.Parameters {
		prop := &genai.Schema{Type: geminiType(p.Type), Description: p.Description}
		if len(p.Enum) > 0 {
			prop.Format = "enum"
			prop.Enum = p.Enum
		}
		schema.Properties[p.Name] = prop
		if p.Required {
			schema.Required = append(schema.Required, p.Name)
		}
	}
	return schema
}

func geminiType(schemaType string) genai.Type {
	switch schemaType {
	case "integer":
		return genai.TypeInteger
	case "number":
		return genai.TypeNumber
	case "boolean":
		return genai.TypeBoolean
	default:
		return genai.TypeString
	}
}
