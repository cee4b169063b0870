package services

import (
	"context"
	"errors"
	"fmt"

	"chat-agent/tools"
)

// Error kinds reported to the transport layer
const (
	KindClassification       = "classification"
	KindToolSelection        = "tool_selection"
	KindInvalidToolArguments = "invalid_tool_arguments"
	KindToolExecution        = "tool_execution"
	KindUpstream             = "upstream"
	KindTimeout              = "timeout"
	KindInternal             = "internal"
)

var (
	// ErrToolSelection is returned when the model does not choose a usable tool
	ErrToolSelection = errors.New("tool selection failed")
	// ErrInvalidToolArguments is returned when the chosen tool's arguments do not match its schema
	ErrInvalidToolArguments = tools.ErrInvalidArguments
	// ErrEmptyReply is returned when a completion that must produce text returns none
	ErrEmptyReply = errors.New("completion returned an empty reply")
)

// ClassificationError reports a classifier token outside the known categories
type ClassificationError struct {
	Token string
}

// Error names the rejected token
func (e *ClassificationError) Error() string {
	return fmt.Sprintf("unrecognized intent category %q", e.Token)
}

// UpstreamError wraps a completion provider failure with the stage it happened in
type UpstreamError struct {
	Stage string
	Err   error
}

// Error prefixes the provider failure with its stage
func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: completion failed: %v", e.Stage, e.Err)
}

// Unwrap returns the provider error
func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ErrorKind classifies an orchestration error for the transport layer
func ErrorKind(err error) string {
	var (
		classErr    *ClassificationError
		execErr     *tools.ExecutionError
		upstreamErr *UpstreamError
	)

	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.DeadlineExceeded):
		return KindTimeout
	case errors.As(err, &classErr):
		return KindClassification
	case errors.Is(err, ErrInvalidToolArguments):
		return KindInvalidToolArguments
	case errors.Is(err, ErrToolSelection):
		return KindToolSelection
	case errors.As(err, &execErr):
		return KindToolExecution
	case errors.As(err, &upstreamErr):
		return KindUpstream
	default:
		return KindInternal
	}
}
