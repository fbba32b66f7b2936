package apperrors

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is a generic sentinel for missing resources.
	ErrNotFound = errors.New("not found")
	// ErrConflict is a generic sentinel for writes refused to protect an invariant.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument is a generic sentinel for invalid input.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthorized is a generic sentinel for auth failures.
	ErrUnauthorized = errors.New("unauthorized")
)

// ValidationError reports malformed input. It is raised before any write, so
// a failed call never leaves a partial mutation behind.
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

func (e *ValidationError) Unwrap() error { return ErrInvalidArgument }

func NewValidation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// ConflictError reports a write refused because it would break a uniqueness or
// referential invariant (duplicate assignment, criterion still in use).
type ConflictError struct {
	Reason string
}

func (e *ConflictError) Error() string { return e.Reason }

func (e *ConflictError) Unwrap() error { return ErrConflict }

func NewConflict(reason string) error {
	return &ConflictError{Reason: reason}
}

func IsValidation(err error) bool { return errors.Is(err, ErrInvalidArgument) }
func IsConflict(err error) bool   { return errors.Is(err, ErrConflict) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
