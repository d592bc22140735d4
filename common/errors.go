package common

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidToken covers both unknown and expired session tokens. The
	// caller is not told which.
	ErrInvalidToken = errors.New("invalid token")

	// ErrInvalidCredentials is returned for any failed username+pin lookup,
	// without revealing whether the username or the pin was wrong.
	ErrInvalidCredentials = errors.New("invalid username or pin")
)

// ValidationError reports a malformed input entity before any write happens.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
