// Package cli provides shared helpers for command output and errors.
package cli

import "fmt"

// NotFoundError indicates a todo with the requested ID does not exist.
// The store itself treats unknown IDs as silent no-ops; this error is
// how the command layer reports them to the user.
type NotFoundError struct {
	ID int // the ID that was not found
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("todo #%d not found", e.ID)
}

// ValidationError indicates a command argument failed validation.
type ValidationError struct {
	Field   string // the argument that failed validation
	Message string // what went wrong
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// FormatError returns a user-friendly error message.
// It prefixes the error with "error: " for consistent CLI output.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	return "error: " + err.Error()
}
