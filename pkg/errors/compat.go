package errors

import "errors"

// Passthroughs to the standard library so callers only import this package.

// Is reports whether any error in err's chain matches target.
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target.
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// NewPlain creates a plain, unstructured error.
func NewPlain(text string) error {
	return errors.New(text)
}
