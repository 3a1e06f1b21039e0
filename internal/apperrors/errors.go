// Package apperrors holds the error kinds handlers translate into HTTP
// responses.
package apperrors

import "fmt"

// ValidationError means the request was rejected before touching the
// database: a required field is missing or an update carries nothing usable.
type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error { return e.Err }

// ConflictError means a row with the same natural key already exists.
type ConflictError struct {
	Entity string
}

func (e *ConflictError) Error() string {
	return e.Entity + " already exists"
}

// NotFoundError means a primary-key lookup found nothing.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return e.Entity + " not found"
}

// PersistenceError wraps a failed insert or update. Message is what the
// caller sees; Err carries the driver (or conversion) error text.
type PersistenceError struct {
	Message string
	Err     error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

func Required(field string) *ValidationError {
	return &ValidationError{Message: field + " is a required field"}
}

func NothingToUpdate() *ValidationError {
	return &ValidationError{Message: "nothing to update"}
}

func CouldNotAdd(entity string, err error) *PersistenceError {
	return &PersistenceError{Message: entity + " could not be added", Err: err}
}

func CouldNotUpdate(entity string, err error) *PersistenceError {
	return &PersistenceError{Message: entity + " could not be updated", Err: err}
}
