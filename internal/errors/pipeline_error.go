package errors

import (
	"errors"
	"fmt"
	"strings"
)

// PipelineError is the structured error surfaced at module boundaries:
// a registered code, a message, and optional per-record details.
type PipelineError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Details []string  `json:"details,omitempty"`
	cause   error
}

// ErrorOption is a functional option for configuring pipeline errors
type ErrorOption func(*PipelineError)

// WithDetails adds detail messages to the error
func WithDetails(details ...string) ErrorOption {
	return func(pe *PipelineError) {
		pe.Details = append(pe.Details, details...)
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(pe *PipelineError) {
		pe.Message = message
	}
}

// WithCause attaches an underlying error for errors.Is/As chains
func WithCause(err error) ErrorOption {
	return func(pe *PipelineError) {
		pe.cause = err
	}
}

// New creates a pipeline error with the given registered code.
func New(code ErrorCode, opts ...ErrorOption) *PipelineError {
	pe := &PipelineError{
		Code:    code,
		Message: GetErrorMessage(code),
	}
	for _, opt := range opts {
		opt(pe)
	}
	return pe
}

func (e *PipelineError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, strings.Join(e.Details, "; "))
}

func (e *PipelineError) Unwrap() error {
	return e.cause
}

// CodeOf extracts the error code from an error chain, or SYSTEM_001
// when the chain carries no pipeline error.
func CodeOf(err error) ErrorCode {
	var pe *PipelineError
	if errors.As(err, &pe) {
		return pe.Code
	}
	return SystemInternalError
}
