package providers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"chat-agent/models"
)

// recordedRequest is the path and decoded JSON body of a request
type recordedRequest struct {
	path string
	got  map[string]interface{}
}

// recordingServer answers every request with body and keeps the last request
type recordingServer struct {
	*httptest.Server
	mu       sync.Mutex
	recorded recordedRequest
}

func (rs *recordingServer) last() recordedRequest {
	rs.mu.Lock()
	defer rs.mu.Unlock()
	return rs.recorded
}

func newRecordingServer(t *testing.T, body string) *recordingServer {
	t.Helper()
	rs := &recordingServer{}
	rs.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := map[string]interface{}{}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Errorf("decoding request body: %v", err)
		}

		rs.mu.Lock()
		rs.recorded = recordedRequest{path: r.URL.Path, got: got}
		rs.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(rs.Close)
	return rs
}

var weatherTool = models.ToolDescriptor{
	Name:        "get_weather",
	Description: "Get the current weather conditions for a location",
	Parameters: []models.ParameterSpec{
		{Name: "location", Type: "string", Description: "City"},
	},
}

var formatterMessages = []models.Message{
	{Role: models.RoleSystem, Content: "Respond in Markdown."},
	{Role: models.RoleUser, Content: "Weather in Paris?"},
	{Role: models.RoleAssistant, Content: "The following weather data may help: {}"},
}
