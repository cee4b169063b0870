package tools

import (
	"fmt"

	"github.com/invopop/jsonschema"

	"chat-agent/models"
)

var reflector = &jsonschema.Reflector{
	DoNotReference:            true,
	ExpandedStruct:            true,
	AllowAdditionalProperties: true,
}

// describe builds a tool descriptor from an argument struct. Fields tagged
// omitempty are optional; the rest are required.
func describe(name, description string, args interface{}) models.ToolDescriptor {
	schema := reflector.Reflect(args)

	required := make(map[string]bool, len(schema.Required))
	for _, r := range schema.Required {
		required[r] = true
	}

	descriptor := models.ToolDescriptor{Name: name, Description: description}
	if schema.Properties == nil {
		return descriptor
	}
	for pair := schema.Properties.Oldest(); pair != nil; pair = pair.Next() {
		param := models.ParameterSpec{
			Name:        pair.Key,
			Type:        pair.Value.Type,
			Description: pair.Value.Description,
			Required:    required[pair.Key],
		}
		for _, e := range pair.Value.Enum {
			param.Enum = append(param.Enum, fmt.Sprint(e))
		}
		descriptor.Parameters = append(descriptor.Parameters, param)
	}
	return descriptor
}
