package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chat-agent/config"
	"chat-agent/models"
)

const ollamaToolCall = `{"model":"llama3.1","created_at":"2025-01-01T00:00:00Z","message":{"role":"assistant","content":"","tool_calls":[{"function":{"name":"get_weather","arguments":{"location":"Paris"}}}]},"done":true}`

const ollamaText = `{"model":"llama3.1","created_at":"2025-01-01T00:00:00Z","message":{"role":"assistant","content":"sports"},"done":true}`

func TestOllamaToolCall(t *testing.T) {
	srv := newRecordingServer(t, ollamaToolCall)
	provider, err := NewOllama(srv.URL, "llama3.1", nil)
	require.NoError(t, err)

	resp, err := provider.Complete(context.Background(), Request{
		Messages:   []models.Message{{Role: models.RoleUser, Content: "Weather in Paris?"}},
		Tools:      []models.ToolDescriptor{weatherTool},
		ToolChoice: ToolChoiceRequired,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.ToolCall)
	assert.Equal(t, "get_weather", resp.ToolCall.Name)
	assert.JSONEq(t, `{"location":"Paris"}`, string(resp.ToolCall.Arguments))

	assert.Equal(t, "/api/chat", srv.last().path)
	assert.Equal(t, false, srv.last().got["stream"])
	tools := srv.last().got["tools"].([]interface{})
	require.Len(t, tools, 1)
	function := tools[0].(map[string]interface{})["function"].(map[string]interface{})
	assert.Equal(t, "get_weather", function["name"])
}

func TestOllamaText(t *testing.T) {
	srv := newRecordingServer(t, ollamaText)
	provider, err := NewOllama(srv.URL, "llama3.1", nil)
	require.NoError(t, err)

	resp, err := provider.Complete(context.Background(), Request{
		Temperature: 0,
		Messages:    []models.Message{{Role: models.RoleUser, Content: "classify"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "sports", resp.Text)
	assert.Equal(t, map[string]interface{}{"temperature": float64(0)}, srv.last().got["options"])
}

func TestNewSelectsProvider(t *testing.T) {
	cfg := config.Default()
	cfg.GeminiAPIKey = "test-key"
	ctx := context.Background()

	for name, want := range map[string]string{"openai": "openai", "anthropic": "anthropic", "ollama": "ollama", "gemini": "gemini"} {
		cfg.AIProvider = name
		provider, err := New(ctx, cfg)
		require.NoError(t, err)
		assert.Equal(t, want, provider.Name())
	}

	cfg.AIProvider = "gemini"
	cfg.GeminiAPIKey = ""
	_, err := New(ctx, cfg)
	assert.Error(t, err)

	cfg.AIProvider = "bard"
	_, err = New(ctx, cfg)
	assert.Error(t, err)
}
