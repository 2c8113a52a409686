package errors

import (
	"errors"
	"fmt"
)

// Domain error types for the advisory agent

var (
	// ErrNotFound indicates a resource was not found
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidInput indicates invalid input parameters
	ErrInvalidInput = errors.New("invalid input")

	// ErrInternal indicates an internal server error
	ErrInternal = errors.New("internal error")

	// ErrUnavailable indicates a service is unavailable
	ErrUnavailable = errors.New("service unavailable")
)

// Delegation errors: always absorbed by the executor's template fallback,
// never visible to protocol callers.

var (
	// ErrNotConfigured indicates no AI backend credential is present
	ErrNotConfigured = errors.New("ai backend not configured")

	// ErrDelegateFailed indicates the AI backend call failed
	ErrDelegateFailed = errors.New("ai delegation failed")
)

// Task lifecycle errors

var (
	// ErrTaskTerminal indicates a message arrived for a task that can no
	// longer accept work
	ErrTaskTerminal = errors.New("task is in a terminal state")

	// ErrTaskState indicates a task was found in a state the requested
	// transition does not allow
	ErrTaskState = errors.New("invalid task state transition")
)

// Helper functions

// Is checks if err is or wraps target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target type
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// Wrap wraps an error with context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}

func New(message string) error {
	return errors.New(message)
}

func Newf(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}
