package models

import (
	"fmt"

	"github.com/JoseBG93/notes-Assistant/internal/common"
)

// ValidationError reports which field failed its predicate and why.
// It matches common.ErrValidation with errors.Is.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return common.ErrValidation
}

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// missingField is returned by the JSON decoders when a stored record lacks a
// required key.
func missingField(record, key string) error {
	return fmt.Errorf("%w: %s record has no %q", common.ErrMalformedRecord, record, key)
}
