package cli

import (
	"errors"
	"fmt"
)

// Exit codes returned by the sparsemat binary.
const (
	// ExitSuccess indicates the command completed normally.
	ExitSuccess = 0
	// ExitFailure indicates an operation failure, e.g. incompatible shapes.
	ExitFailure = 1
	// ExitCommandError indicates bad invocation input: unreadable or
	// malformed operand files, a bad scalar, a bad config file.
	ExitCommandError = 2
)

// ExitError couples an error with the process exit code it maps to.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error renders the message with the underlying cause, if any.
func (e *ExitError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As chains.
func (e *ExitError) Unwrap() error { return e.Err }

// NewExitError builds an ExitError without a cause.
func NewExitError(code int, message string) *ExitError {
	return &ExitError{Code: code, Message: message}
}

// WrapExitError attaches an exit code and message to an underlying error.
func WrapExitError(code int, message string, err error) *ExitError {
	return &ExitError{Code: code, Message: message, Err: err}
}

// GetExitCode extracts the exit code from err: ExitSuccess for nil, the
// embedded code for ExitError chains, ExitFailure for anything else.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitFailure
}
