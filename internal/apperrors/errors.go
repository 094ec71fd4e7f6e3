// Package apperrors defines the error taxonomy shared by domain services
// and HTTP handlers.
package apperrors

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

var (
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
)

// statusError pairs a human-readable message with one of the sentinel
// kinds, so handlers can match the kind with errors.Is while showing the
// message as-is.
type statusError struct {
	kind error
	msg  string
}

func (e *statusError) Error() string { return e.msg }
func (e *statusError) Unwrap() error { return e.kind }

func Unauthorized(msg string) error { return &statusError{kind: ErrUnauthorized, msg: msg} }
func Forbidden(msg string) error    { return &statusError{kind: ErrForbidden, msg: msg} }
func NotFound(msg string) error     { return &statusError{kind: ErrNotFound, msg: msg} }
func Conflict(msg string) error     { return &statusError{kind: ErrConflict, msg: msg} }

// ValidationError names the input field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("%s is required", e.Field)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Validation builds a ValidationError for a missing or malformed field.
func Validation(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// StatusCode maps a service error to an HTTP status. Unknown errors map to
// 500; handlers must not leak their details to clients.
func StatusCode(err error) int {
	switch {
	case IsValidation(err):
		return fiber.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}
