package core

import "github.com/pkg/errors"

// FieldError ties a validation failure to one payload field, under the
// field's JSON name.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries the per-field breakdown of a rejected payload;
// the HTTP layer renders Fields as a field->message map.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{Err: err, Fields: flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// Unwrap exposes the underlying cause to the std errors helpers.
func (err *ValidationError) Unwrap() error { return err.Err }

// shutdown marks an integrity failure the service cannot recover from.
// The server stops gracefully when one reaches the HTTP error handler.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string { return s.message }

// IsShutdown reports whether err (or its cause) requests a graceful stop.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
