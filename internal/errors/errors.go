package apperrors

import (
	"context"
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the application.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess       = 0   // Indicates successful execution.
	ExitErrorGeneric  = 1   // Indicates a generic error.
	ExitErrorStartup  = 2   // Indicates a fatal startup failure (e.g., log file creation).
	ExitErrorConfig   = 4   // Indicates a configuration error.
	ExitErrorCanceled = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the application cannot proceed due to incorrect user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
//
// Parameters:
//   - format: A format string (see fmt.Sprintf).
//   - a: Arguments to be formatted into the string.
//
// Returns:
//   - error: A new ConfigError instance containing the formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// CollectError encapsulates a counter-source read failure while preserving
// the original cause. It identifies which counter source failed so callers
// can log a precise diagnostic before falling back to zero values.
type CollectError struct {
	// Source names the counter source that failed (e.g., "/proc/stat").
	Source string
	// Cause is the underlying error that triggered this collect error.
	Cause error
}

// Error returns a formatted message naming the failed source.
func (e CollectError) Error() string {
	return fmt.Sprintf("reading %s: %v", e.Source, e.Cause)
}

// Unwrap returns the original wrapped error, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e CollectError) Unwrap() error { return e.Cause }

// NewCollectError wraps a read failure with the name of its counter source.
func NewCollectError(source string, cause error) error {
	return CollectError{Source: source, Cause: cause}
}

// StartupError represents a fatal initialization failure, such as the CSV
// log destination being impossible to create. It always aborts the process
// before any sampling begins.
type StartupError struct {
	// Resource names the resource that could not be initialized.
	Resource string
	// Cause is the underlying error.
	Cause error
}

// Error returns a formatted message describing the startup failure.
func (e StartupError) Error() string {
	return fmt.Sprintf("initializing %s: %v", e.Resource, e.Cause)
}

// Unwrap returns the underlying cause of the StartupError.
func (e StartupError) Unwrap() error { return e.Cause }

// WrapError wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As().
//
// Parameters:
//   - err: The error to wrap.
//   - format: A format string for the context message.
//   - args: Arguments for the format string.
//
// Returns:
//   - error: The wrapped error, or nil if err is nil.
func WrapError(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}

// IsContextError checks if the error is a context cancellation or deadline exceeded error.
func IsContextError(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
