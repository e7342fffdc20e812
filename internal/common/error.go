// Package common defines sentinel errors shared by the models, the store and
// the services of Notes Assistant. Callers should use errors.Is to match them.
package common

import "errors"

var (
	// Model-level errors.
	ErrValidation      = errors.New("validation error")
	ErrMalformedRecord = errors.New("malformed record")

	// Presentation-level errors. The core reports absence with nil/false
	// results; the CLI turns those into ErrNotFound when it needs an error.
	ErrNotFound = errors.New("not found")
)
