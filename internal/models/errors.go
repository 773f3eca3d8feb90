package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound = errors.New("not found")

	// ErrEmailTaken surfaces the unique-index violation on account creation.
	// The index is the source of truth; the domain does not pre-check emails.
	ErrEmailTaken = errors.New("email already registered")

	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot enumerate accounts from the outcome.
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError rejects missing or malformed input before touching storage.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
