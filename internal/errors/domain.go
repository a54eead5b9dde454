// Package errors defines the error taxonomy shared by services and handlers.
// Three kinds exist: DomainError (invalid input, 422), NotFoundError (missing
// aggregate, 404) and PersistenceError (failed transaction, 500, retryable).
package errors

import "fmt"

// DomainError is a validation failure with a machine-readable code. Field
// names the offending input field when one exists.
type DomainError struct {
	Code    string
	Message string
	Field   string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NotFoundError reports an absent aggregate. Non-retryable.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	if e.ID == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s with id '%s' not found", e.Resource, e.ID)
}

// PersistenceError wraps a failed transaction. The whole operation is atomic,
// so callers may safely retry it.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
