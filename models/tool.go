package models

import "encoding/json"

// ParameterSpec describes one argument of a tool
type ParameterSpec struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"` // JSON schema type: string, integer, number, boolean
	Description string   `json:"description"`
	Required    bool     `json:"required"`
	Enum        []string `json:"enum,omitempty"`
}

// ToolDescriptor is the static declaration of a lookup tool
type ToolDescriptor struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Parameters  []ParameterSpec `json:"parameters"`
}

// Parameter returns the named parameter spec
func (d ToolDescriptor) Parameter(name string) (ParameterSpec, bool) {
	for _, p := range d.Parameters {
		if p.Name == name {
			return p, true
		}
	}
	return ParameterSpec{}, false
}

// Schema renders the parameters as a JSON schema object for function calling
func (d ToolDescriptor) Schema() json.RawMessage {
	properties := make(map[string]interface{}, len(d.Parameters))
	required := []string{}
	for _, p := range d.Parameters {
		prop := map[string]interface{}{
			"type":        p.Type,
			"description": p.Description,
		}
		if len(p.Enum) > 0 {
			prop["enum"] = p.Enum
		}
		properties[p.Name] = prop
		if p.Required {
			required = append(required, p.Name)
		}
	}

	schema, _ := json.Marshal(map[string]interface{}{
		"type":       "object",
		"properties": properties,
		"required":   required,
	})
	return schema
}

// ToolCall is a tool invocation chosen by the completion provider
type ToolCall struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

// ToolResult is the record returned by a tool executor
type ToolResult map[string]interface{}

// ToolOutcome tags a tool result with the tool that produced it
type ToolOutcome struct {
	Tool   string     `json:"tool"`
	Result ToolResult `json:"result"`
}
