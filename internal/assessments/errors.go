package assessments

import (
	"errors"
	"fmt"
)

var ErrNotFound = errors.New("not found")

const (
	ErrorCodeValidation = "VALIDATION_ERROR"
	ErrorCodeStorage    = "STORAGE_ERROR"
	ErrorCodeInternal   = "INTERNAL_ERROR"
)

// ValidationError reports a rejected response entry.
type ValidationError struct {
	Field string
	Issue string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid response %s: %s", e.Field, e.Issue)
}
