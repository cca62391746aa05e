package jsonconfig

import "errors"

var (
	// ErrValidation marks caller input that cannot be reconciled, such as a
	// nil default document or an empty location component. It is returned
	// before any filesystem access.
	ErrValidation = errors.New("validation error")
	// ErrCorrupt marks a persisted file that is not a single JSON object.
	// Ensure recovers from it by rewriting the file; Read returns it.
	ErrCorrupt = errors.New("corrupt config file")
)
