package services

import (
	"errors"
	"fmt"
)

// ValidationError reports a bad request field. Never retried, always surfaced
// with the field name so the panel can highlight the input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError means a lookup by id (or the stock singleton) found nothing.
// Kept distinct from validation so callers can tell bad input from a missing record.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return e.Resource + " not found"
}

// ConflictError covers duplicate admin emails and a second stock record. The
// panel offers "update instead" on this one.
type ConflictError struct {
	Message string
}

func (e *ConflictError) Error() string {
	return e.Message
}

// StoreError wraps a database failure. Opaque to the caller; no automatic retry.
type StoreError struct {
	Op  string
	Err error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store failure during %s: %v", e.Op, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

func validationErr(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

func storeErr(op string, err error) error {
	return &StoreError{Op: op, Err: err}
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
