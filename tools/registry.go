// Package tools declares the lookup tools the agent can call and executes
// the invocations chosen by the completion provider.
package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"

	"chat-agent/models"
)

var (
	// ErrInvalidArguments is returned when tool arguments do not match the tool's schema
	ErrInvalidArguments = errors.New("invalid tool arguments")
	// ErrUnknownTool is returned when a call names a tool that is not registered
	ErrUnknownTool = errors.New("unknown tool")
)

// ExecutionError reports a failure inside a tool's data source
type ExecutionError struct {
	Tool string
	Err  error
}

// Error names the failing tool
func (e *ExecutionError) Error() string {
	return fmt.Sprintf("tool %s failed: %v", e.Tool, e.Err)
}

// Unwrap returns the data source error
func (e *ExecutionError) Unwrap() error {
	return e.Err
}

// Arguments are validated tool arguments keyed by parameter name
type Arguments map[string]interface{}

// String returns a string argument, or "" when it is absent
func (a Arguments) String(key string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return ""
}

// Executor is a named lookup capability
type Executor interface {
	Descriptor() models.ToolDescriptor
	Execute(ctx context.Context, args Arguments) (models.ToolResult, error)
}

// Registry holds the available tools in declaration order
type Registry struct {
	executors map[string]Executor
	order     []string
}

// NewRegistry registers the given executors. Later executors replace
// earlier ones with the same name.
func NewRegistry(executors ...Executor) *Registry {
	r := &Registry{executors: make(map[string]Executor)}
	for _, e := range executors {
		name := e.Descriptor().Name
		if _, exists := r.executors[name]; !exists {
			r.order = append(r.order, name)
		}
		r.executors[name] = e
	}
	return r
}

// DefaultRegistry registers the weather, stock and sports tools backed by source
func DefaultRegistry(source Source) *Registry {
	return NewRegistry(
		NewWeatherTool(source),
		NewStockTool(source),
		NewSportsTool(source),
	)
}

// Descriptors returns the declarations of every registered tool
func (r *Registry) Descriptors() []models.ToolDescriptor {
	descriptors := make([]models.ToolDescriptor, 0, len(r.order))
	for _, name := range r.order {
		descriptors = append(descriptors, r.executors[name].Descriptor())
	}
	return descriptors
}

// Lookup returns the executor registered under name
func (r *Registry) Lookup(name string) (Executor, bool) {
	e, ok := r.executors[name]
	return e, ok
}

// Invoke validates the call's arguments and runs the matching executor
func (r *Registry) Invoke(ctx context.Context, call models.ToolCall) (models.ToolResult, error) {
	executor, ok := r.Lookup(call.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTool, call.Name)
	}

	args, err := Validate(executor.Descriptor(), call.Arguments)
	if err != nil {
		return nil, err
	}

	result, err := executor.Execute(ctx, args)
	if err != nil {
		return nil, &ExecutionError{Tool: call.Name, Err: err}
	}
	return result, nil
}

// Validate decodes raw JSON arguments and checks them against the descriptor.
// Keys the descriptor does not declare are dropped.
func Validate(descriptor models.ToolDescriptor, raw json.RawMessage) (Arguments, error) {
	decoded := map[string]interface{}{}
	if len(raw) > 0 && string(raw) != "null" {
		if err := json.Unmarshal(raw, &decoded); err != nil {
			return nil, fmt.Errorf("%w: %s: arguments are not a JSON object: %v", ErrInvalidArguments, descriptor.Name, err)
		}
	}

	args := Arguments{}
	var problems []string
	for _, param := range descriptor.Parameters {
		value, present := decoded[param.Name]
		if !present || value == nil {
			if param.Required {
				problems = append(problems, fmt.Sprintf("missing required parameter %q", param.Name))
			}
			continue
		}
		if !conforms(param.Type, value) {
			problems = append(problems, fmt.Sprintf("parameter %q must be of type %s", param.Name, param.Type))
			continue
		}
		if len(param.Enum) > 0 && !inEnum(param.Enum, value) {
			problems = append(problems, fmt.Sprintf("parameter %q must be one of %v", param.Name, param.Enum))
			continue
		}
		args[param.Name] = value
	}

	if len(problems) > 0 {
		sort.Strings(problems)
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidArguments, descriptor.Name, problems)
	}
	return args, nil
}

func conforms(schemaType string, value interface{}) bool {
	switch schemaType {
	case "string":
		_, ok := value.(string)
		return ok
	case "number":
		_, ok := value.(float64)
		return ok
	case "integer":
		f, ok := value.(float64)
		return ok && f == math.Trunc(f)
	case "boolean":
		_, ok := value.(bool)
		return ok
	default:
		return true
	}
}

func inEnum(enum []string, value interface{}) bool {
	s := fmt.Sprint(value)
	for _, e := range enum {
		if e == s {
			return true
		}
	}
	return false
}
