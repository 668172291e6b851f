// Package apperr defines the error taxonomy shared by the store, pricing and
// checkout services. Controllers map these onto HTTP status codes; nothing
// below the controllers knows about HTTP.
package apperr

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound signals an unknown vehicle, location or vehicle type.
	ErrNotFound = errors.New("record not found")

	// ErrAlreadyCheckedOut signals the checkout idempotency guard: the
	// vehicle already has a checkout row, or lost the commit race. For the
	// losing operator this is an expected outcome, not a server fault.
	ErrAlreadyCheckedOut = errors.New("vehicle already checked out")
)

// ValidationError reports malformed or incomplete input, detected before any
// write begins.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Invalid builds a ValidationError.
func Invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StorageError wraps a failure at the persistence boundary. The enclosing
// transaction has already been rolled back by the time one of these is
// returned; no partial writes remain.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// Storage wraps err as a StorageError, passing nil through.
func Storage(op string, err error) error {
	if err == nil {
		return nil
	}
	return &StorageError{Op: op, Err: err}
}
