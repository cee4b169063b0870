package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		token string
		want  Category
		ok    bool
	}{
		{"weather", CategoryWeather, true},
		{"  Stocks\n", CategoryStocks, true},
		{"SPORTS.", CategorySports, true},
		{"**general**", CategoryGeneral, true},
		{"cooking", Category("cooking"), false},
		{"", Category(""), false},
	}

	for _, tt := range tests {
		got, ok := ParseCategory(tt.token)
		assert.Equal(t, tt.ok, ok, tt.token)
		assert.Equal(t, tt.want, got, tt.token)
	}
}

func TestCategoryLabelsAndTools(t *testing.T) {
	assert.Equal(t, "weather", CategoryWeather.Label())
	assert.Equal(t, "stock-market", CategoryStocks.Label())
	assert.Equal(t, "sports", CategorySports.Label())

	assert.Equal(t, "get_weather", CategoryWeather.ToolName())
	assert.Equal(t, "get_stock_quote", CategoryStocks.ToolName())
	assert.Equal(t, "get_sports_score", CategorySports.ToolName())
	assert.Empty(t, CategoryGeneral.ToolName())

	for _, c := range []Category{CategoryWeather, CategoryStocks, CategorySports} {
		got, ok := CategoryForTool(c.ToolName())
		assert.True(t, ok)
		assert.Equal(t, c, got)
	}
	_, ok := CategoryForTool("")
	assert.False(t, ok)
	_, ok = CategoryForTool("get_horoscope")
	assert.False(t, ok)
}

func TestHistoryFromStrings(t *testing.T) {
	history := HistoryFromStrings([]string{"m0", "m1", "m2"})
	assert.Equal(t, []Message{
		{Role: RoleUser, Content: "m0"},
		{Role: RoleAssistant, Content: "m1"},
		{Role: RoleUser, Content: "m2"},
	}, history)

	assert.Empty(t, HistoryFromStrings(nil))
}

func TestChatRequestDecoding(t *testing.T) {
	var req ChatRequest
	require.NoError(t, json.Unmarshal([]byte(`{"newest_message":"hi"}`), &req))
	require.NotNil(t, req.NewestMessage)
	assert.Equal(t, "hi", req.Message())
	assert.Empty(t, req.History())
}

func TestChatRequestMissingMessage(t *testing.T) {
	var req ChatRequest
	require.NoError(t, json.Unmarshal([]byte(`{}`), &req))
	assert.Nil(t, req.NewestMessage)
	assert.Equal(t, "", req.Message())

	require.NoError(t, json.Unmarshal([]byte(`{"newest_message":""}`), &req))
	require.NotNil(t, req.NewestMessage)
	assert.Equal(t, "", req.Message())
}

func TestToolDescriptorSchema(t *testing.T) {
	descriptor := ToolDescriptor{
		Name: "get_weather",
		Parameters: []ParameterSpec{
			{Name: "location", Type: "string", Description: "City", Required: true},
			{Name: "units", Type: "string", Description: "Units", Enum: []string{"metric", "imperial"}},
		},
	}

	assert.JSONEq(t, `{
		"type": "object",
		"properties": {
			"location": {"type": "string", "description": "City"},
			"units": {"type": "string", "description": "Units", "enum": ["metric", "imperial"]}
		},
		"required": ["location"]
	}`, string(descriptor.Schema()))

	_, ok := descriptor.Parameter("units")
	assert.True(t, ok)
	_, ok = descriptor.Parameter("team")
	assert.False(t, ok)
}
