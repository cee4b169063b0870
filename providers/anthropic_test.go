package providers

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-agent/models"
)

const anthropicToolUse = `{
  "id": "msg_1", "type": "message", "role": "assistant", "model": "claude-3-5-sonnet-latest",
  "content": [{"type": "tool_use", "id": "toolu_1", "name": "get_weather", "input": {"location": "Paris"}}],
  "stop_reason": "tool_use", "stop_sequence": null,
  "usage": {"input_tokens": 10, "output_tokens": 5}
}`

const anthropicText = `{
  "id": "msg_2", "type": "message", "role": "assistant", "model": "claude-3-5-sonnet-latest",
  "content": [{"type": "text", "text": "It is *mild* in Paris."}],
  "stop_reason": "end_turn", "stop_sequence": null,
  "usage": {"input_tokens": 10, "output_tokens": 5}
}`

func TestAnthropicToolUse(t *testing.T) {
	srv := newRecordingServer(t, anthropicToolUse)
	provider := NewAnthropic("test-key", srv.URL, "claude-3-5-sonnet-latest", nil)

	resp, err := provider.Complete(context.Background(), Request{
		Messages: []models.Message{
			{Role: models.RoleSystem, Content: "Call exactly one tool."},
			{Role: models.RoleUser, Content: "Weather in Paris?"},
		},
		Tools:      []models.ToolDescriptor{weatherTool},
		ToolChoice: ToolChoiceRequired,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ToolCall)
	assert.Equal(t, "get_weather", resp.ToolCall.Name)
	assert.JSONEq(t, `{"location":"Paris"}`, string(resp.ToolCall.Arguments))

	assert.Equal(t, "/v1/messages", srv.last().path)
	assert.Equal(t, map[string]interface{}{"type": "any"}, srv.last().got["tool_choice"])
	system := srv.last().got["system"].([]interface{})
	require.Len(t, system, 1)
	assert.Equal(t, "Call exactly one tool.", system[0].(map[string]interface{})["text"])
	assert.Len(t, srv.last().got["messages"], 1)
	assert.Equal(t, float64(0), srv.last().got["temperature"])
}

func TestAnthropicClosesAssistantTurn(t *testing.T) {
	srv := newRecordingServer(t, anthropicText)
	provider := NewAnthropic("test-key", srv.URL, "claude-3-5-sonnet-latest", nil)

	resp, err := provider.Complete(context.Background(), Request{Temperature: 0.4, Messages: formatterMessages})
	require.NoError(t, err)
	assert.Equal(t, "It is *mild* in Paris.", resp.Text)

	messages := srv.last().got["messages"].([]interface{})
	require.Len(t, messages, 3)
	assert.Equal(t, "user", messages[0].(map[string]interface{})["role"])
	assert.Equal(t, "assistant", messages[1].(map[string]interface{})["role"])
	assert.Equal(t, "user", messages[2].(map[string]interface{})["role"])
	assert.NotContains(t, srv.last().got, "tools")
}

func TestAnthropicReplacesBlankTurns(t *testing.T) {
	srv := newRecordingServer(t, anthropicText)
	provider := NewAnthropic("test-key", srv.URL, "claude-3-5-sonnet-latest", nil)

	_, err := provider.Complete(context.Background(), Request{Messages: []models.Message{
		{Role: models.RoleUser, Content: ""},
		{Role: models.RoleAssistant, Content: "Hi there."},
		{Role: models.RoleUser, Content: "   "},
	}})
	require.NoError(t, err)

	messages := srv.last().got["messages"].([]interface{})
	require.Len(t, messages, 3)
	for i, m := range messages {
		blocks := m.(map[string]interface{})["content"].([]interface{})
		require.Len(t, blocks, 1)
		assert.NotEmpty(t, strings.TrimSpace(blocks[0].(map[string]interface{})["text"].(string)), "message %d", i)
	}
	first := messages[0].(map[string]interface{})["content"].([]interface{})[0].(map[string]interface{})
	assert.Equal(t, emptyContent, first["text"])
}
