// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
)

// NotFoundError is returned when an update or delete references an absent id.
// Message, when set, is the text reported by the record store.
type NotFoundError struct {
	Entity  string
	ID      int64
	Message string
}

func (e *NotFoundError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("%s with ID %d not found", e.Entity, e.ID)
}

// NewNotFound builds a NotFoundError for the given entity name and id.
func NewNotFound(entity string, id int64) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ValidationError carries a message meant for the user who submitted the input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func NewValidation(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// TransportError covers unreachable servers, timeouts and non-2xx responses
// that carry no readable error body.
type TransportError struct {
	Op     string
	Status int
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Status)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
