package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"chat-agent/models"
	"chat-agent/providers"
)

// fakeProvider answers with respond and records every request it receives
type fakeProvider struct {
	mu       sync.Mutex
	respond  func(req providers.Request) (*providers.Response, error)
	requests []providers.Request
}

func (f *fakeProvider) Name() string {
	return "fake"
}

func (f *fakeProvider) Complete(_ context.Context, req providers.Request) (*providers.Response, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()
	return f.respond(req)
}

func (f *fakeProvider) calls() []providers.Request {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]providers.Request(nil), f.requests...)
}

func textResponse(text string) (*providers.Response, error) {
	return &providers.Response{Text: text}, nil
}

func toolResponse(name, args string) (*providers.Response, error) {
	return &providers.Response{ToolCall: &models.ToolCall{Name: name, Arguments: json.RawMessage(args)}}, nil
}

func isClassification(req providers.Request) bool {
	return len(req.Messages) == 1 && strings.HasSuffix(req.Messages[0].Content, "CATEGORY:")
}

// keywordCategory plays the classifier model for test fixtures
func keywordCategory(prompt string) string {
	lower := strings.ToLower(prompt[strings.Index(prompt, "USER:"):])
	switch {
	case strings.Contains(lower, "weather"), strings.Contains(lower, "rain"):
		return "weather"
	case strings.Contains(lower, "stock"), strings.Contains(lower, "aapl"), strings.Contains(lower, "shares"):
		return "stocks"
	case strings.Contains(lower, "score"), strings.Contains(lower, "game"):
		return "sports"
	default:
		return "general"
	}
}

// scriptedModel classifies by keyword, picks the category's tool without
// arguments and renders tool data into a Markdown line.
func scriptedModel(req providers.Request) (*providers.Response, error) {
	switch {
	case isClassification(req):
		return textResponse(keywordCategory(req.Messages[0].Content))
	case len(req.Tools) > 0:
		for _, c := range models.Categories {
			if strings.Contains(req.Messages[0].Content, `"`+string(c)+`"`) {
				return toolResponse(c.ToolName(), `{}`)
			}
		}
		return textResponse("no idea")
	case len(req.Messages) == 3 && req.Messages[2].Role == models.RoleAssistant:
		return textResponse("**Here is what I found:**\n\n" + req.Messages[2].Content)
	default:
		return textResponse("Why did the gopher cross the road? *To get to the other goroutine.*")
	}
}
