// Package services contains the application-facing operations exposed by the
// HTTP API: meeting CRUD, answer submission and user-initiated
// re-transcription.
package services

import (
	"errors"
	"fmt"
)

// ErrNotFound marks lookups of meetings that do not exist.
var ErrNotFound = errors.New("not found")

// ValidationError marks rejected input; the API layer maps it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError builds a ValidationError with a formatted message.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
