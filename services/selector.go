package services

import (
	"context"
	"errors"
	"fmt"

	"chat-agent/models"
	"chat-agent/providers"
	"chat-agent/tools"
)

const selectorTemperature = 0

// Selector lets the provider choose one tool and its arguments, then runs it
type Selector struct {
	provider providers.Provider
	registry *tools.Registry
}

// NewSelector creates a selector over the tools in registry
func NewSelector(provider providers.Provider, registry *tools.Registry) *Selector {
	return &Selector{provider: provider, registry: registry}
}

// SelectAndInvoke forces exactly one tool call for the question and returns
// the executed result tagged with the tool's name. The model may pick a tool
// other than the category's own; the tag reports the one that ran. It fails with
// ErrToolSelection when the provider answers without a usable tool call and
// with ErrInvalidToolArguments when the arguments do not fit the schema.
func (s *Selector) SelectAndInvoke(ctx context.Context, category models.Category, question string) (*models.ToolOutcome, error) {
	if category == models.CategoryGeneral {
		return nil, fmt.Errorf("%w: no tool serves the %s category", ErrToolSelection, category)
	}

	resp, err := s.provider.Complete(ctx, providers.Request{
		Temperature: selectorTemperature,
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: selectorInstruction(category)},
			{Role: models.RoleUser, Content: question},
		},
		Tools:      s.registry.Descriptors(),
		ToolChoice: providers.ToolChoiceRequired,
	})
	if err != nil {
		return nil, &UpstreamError{Stage: "select", Err: err}
	}
	if resp.ToolCall == nil {
		return nil, fmt.Errorf("%w: model replied with text instead of a tool call", ErrToolSelection)
	}

	result, err := s.registry.Invoke(ctx, *resp.ToolCall)
	if err != nil {
		if errors.Is(err, tools.ErrUnknownTool) {
			return nil, fmt.Errorf("%w: %w", ErrToolSelection, err)
		}
		return nil, err
	}

	return &models.ToolOutcome{Tool: resp.ToolCall.Name, Result: result}, nil
}

func selectorInstruction(category models.Category) string {
	return fmt.Sprintf(`You route user requests to data lookup tools.
The request was classified as "%s", which %s serves. Call exactly one of the provided tools; never answer with text.

When the user does not say which one they mean, use these defaults:
- get_weather: location %q
- get_stock_quote: ticker %q
- get_sports_score: team %q

Use ticker symbols for companies and short team abbreviations (e.g. LAL, BOS) for teams.`,
		category, category.ToolName(), tools.DefaultLocation, tools.DefaultTicker, tools.DefaultTeam)
}
