package domain

import (
	"errors"
	"fmt"
)

// Authentication failures raised before a subject identity is established.
var (
	ErrMissingAuthHeader = errors.New("authorization header is missing")
	ErrMissingToken      = errors.New("token not provided")
	ErrAuthFailed        = errors.New("authentication failed")
)

// ErrNotOwner is returned when an authenticated user attempts to mutate a
// resource authored by someone else.
var ErrNotOwner = errors.New("not the resource owner")

// Lookup and credential failures.
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrEmailTaken        = errors.New("email already exists")
	ErrUsernameTaken     = errors.New("username not available")
	ErrIncorrectPassword = errors.New("incorrect password")
	ErrQuestionNotFound  = errors.New("question not found")
	ErrAnswerNotFound    = errors.New("answer not found")
)

// ValidationError carries a human-readable description of a request schema
// violation. The transport layer maps it to its own status and code.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

// NewValidationError builds a ValidationError from a format string.
func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// DatabaseError wraps a persistence failure so it can be distinguished from
// unexpected errors at the transport boundary.
type DatabaseError struct {
	Op  string
	Err error
}

func (e *DatabaseError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *DatabaseError) Unwrap() error { return e.Err }
