package engine

import (
	"errors"
	"fmt"
)

var (
	// ErrSessionMissing is returned when an operation requires a logged-in
	// identity and none is stored.
	ErrSessionMissing = errors.New("no active session")
	// ErrEmailTaken is returned when registering an already-registered email.
	ErrEmailTaken = errors.New("this email is already registered")
	// ErrInvalidCredentials is returned when login credentials do not match
	// any registered account.
	ErrInvalidCredentials = errors.New("incorrect email or password")
)

// ValidationError indicates a required field was empty or whitespace-only.
// The operation it aborts leaves state unchanged.
type ValidationError struct {
	Field string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s is required", e.Field)
}
