package services

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials = errors.New("Invalid username or password")
	ErrStoreUnavailable   = errors.New("Database connection failed. Please try again later.")
	ErrAdminExists        = errors.New("Admin user already exists")
	ErrMissingCredentials = NewValidationError("Missing credentials")
	ErrInvalidFormat      = NewValidationError("Invalid format")
	ErrLegacyReasons      = NewValidationError("Reasons must be an array of categories with name and items")
	ErrMobileRequired     = NewValidationError("Mobile number is required")
)

// ValidationError marks a malformed request.
type ValidationError struct {
	Msg string
}

func NewValidationError(format string, args ...interface{}) *ValidationError {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}

func storeError(op string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrStoreUnavailable, op, err)
}
