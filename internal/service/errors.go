package service

import (
	"errors"
	"fmt"
)

var (
	ErrPackageNotFound      = errors.New("package not found")
	ErrDestinationNotFound  = errors.New("destination not found")
	ErrLineItemNotFound     = errors.New("cart item not found")
	ErrBookingNotFound      = errors.New("booking not found")
	ErrConfirmationRequired = errors.New("confirmation required")
	ErrNotLoggedIn          = errors.New("not logged in")
	ErrLoginRequired        = errors.New("login required to continue checkout")
	ErrInvalidTransition    = errors.New("invalid checkout transition")
	ErrValidation           = errors.New("validation failed")
)

// ValidationError names the first offending form field. It matches
// ErrValidation under errors.Is.
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

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

func transitionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidTransition, fmt.Sprintf(format, args...))
}
