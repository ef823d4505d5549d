package project

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound covers missing projects, scenes and stored objects.
	ErrNotFound = errors.New("resource not found")
	// ErrRateLimited is returned when a per-user action quota is exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")
	// ErrGeneration wraps upstream AI failures (transport, auth, undecodable
	// output after normalization).
	ErrGeneration = errors.New("generation failed")
)

// ValidationError marks caller mistakes that should map to an unprocessable
// entity response rather than a server error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
