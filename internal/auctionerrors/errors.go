package auctionerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Repository-level errors
var (
	ErrProductNotFound = errors.New("product not found")
	ErrBidNotFound     = errors.New("bid not found")
	ErrUserNotFound    = errors.New("user not found")
	ErrEmailTaken      = errors.New("email already registered")
)

// business logic errors
var (
	ErrValidation  = errors.New("invalid or missing fields")
	ErrForbidden   = errors.New("user not granted access")
	ErrBadPassword = errors.New("invalid credentials")
)

// ValidationError carries the names of the offending request fields. It
// unwraps to ErrValidation so callers can match it with errors.Is.
type ValidationError struct {
	Fields []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(e.Fields, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for the given field names
func NewValidationError(fields ...string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// FieldsOf extracts the offending field names from an error chain, or nil
// if the error is not a validation failure.
func FieldsOf(err error) []string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}
