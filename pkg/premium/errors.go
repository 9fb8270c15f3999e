package premium

import (
	"errors"
	"fmt"
)

// ErrInvalidInput matches every *ValidationError through errors.Is.
var ErrInvalidInput = errors.New("invalid rating input")

// ValidationError reports a rating factor outside its allowed set.
type ValidationError struct {
	Field  string
	Value  string
	Reason string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s %q", e.Field, e.Value)
	}
	return fmt.Sprintf("invalid %s %q: %s", e.Field, e.Value, e.Reason)
}

// Is lets errors.Is(err, ErrInvalidInput) match any validation failure.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func newValidationError(field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{Field: field, Value: fmt.Sprint(value), Reason: reason}
}
