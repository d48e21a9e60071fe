// Package errors provides structured error handling for the shardr CLI.
// Errors are categorized so the top level can map them onto the exit-code
// contract: every category here is fatal to the run and exits 1; shard
// failures are not errors and never appear in this package.
package errors

import "fmt"

// Category represents the kind of fatal error that occurred.
type Category int

const (
	// Validation errors are detected before any child process is spawned:
	// missing or non-executable target, malformed filter combinations.
	Validation Category = iota
	// Launch errors are operating-system failures to spawn the target,
	// e.g. the binary was removed between validation and exec.
	Launch
	// Interrupted means the run was aborted by an external interrupt.
	Interrupted
	// Runtime covers everything else that aborts the run.
	Runtime
)

// String returns a human-readable name for the category.
func (c Category) String() string {
	switch c {
	case Validation:
		return "Validation Error"
	case Launch:
		return "Launch Error"
	case Interrupted:
		return "Interrupted"
	case Runtime:
		return "Runtime Error"
	default:
		return "Error"
	}
}

// RunError is a structured fatal error with category and optional
// remediation guidance.
type RunError struct {
	// Category is the kind of error (Validation, Launch, ...).
	Category Category
	// Message is a human-readable description of what went wrong.
	Message string
	// Remediation is a list of actionable steps to resolve the error.
	Remediation []string
}

// Error implements the error interface.
func (e *RunError) Error() string {
	return e.Message
}

// NewValidationError creates a pre-spawn validation error.
func NewValidationError(message string, remediation ...string) *RunError {
	return &RunError{
		Category:    Validation,
		Message:     message,
		Remediation: remediation,
	}
}

// NewLaunchError wraps an OS-level spawn failure.
func NewLaunchError(err error) *RunError {
	return &RunError{
		Category: Launch,
		Message:  err.Error(),
	}
}

// NewInterruptedError creates the canonical interrupt error.
func NewInterruptedError() *RunError {
	return &RunError{
		Category: Interrupted,
		Message:  "Caught interrupt, terminating workers",
	}
}

// Wrap wraps an existing error with a RunError, preserving the original message.
func Wrap(err error, category Category, remediation ...string) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{
		Category:    category,
		Message:     err.Error(),
		Remediation: remediation,
	}
}

// WrapWithMessage wraps an error with a custom message prefix and category.
func WrapWithMessage(err error, category Category, message string) *RunError {
	if err == nil {
		return nil
	}
	return &RunError{
		Category: category,
		Message:  fmt.Sprintf("%s: %v", message, err),
	}
}

// AsRunError attempts to convert an error to a RunError.
// Returns nil if the error is not a RunError.
func AsRunError(err error) *RunError {
	runErr, ok := err.(*RunError)
	if ok {
		return runErr
	}
	return nil
}
