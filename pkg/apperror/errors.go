package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrBadRequest   = errors.New("bad request")
	ErrInternal     = errors.New("internal server error")
)

// Kind discriminates the error categories the services produce.
type Kind int

const (
	KindNotFound Kind = iota
	KindConflict
	KindValidation
	KindMismatch
	KindDatabase
	KindUnauthorized
	KindForbidden
)

// Error is the structured error every service method returns. Fields is
// populated for validation errors only and is keyed by the input field name
// ("general" for errors not attached to a single field).
type Error struct {
	Kind    Kind
	Message string
	Fields  map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Status maps the error kind to the HTTP status the frontend expects:
// 404 for missing entities, 400 for everything the caller can correct.
func (e *Error) Status() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusBadRequest
	}
}

// NotFound reports that the entity referred to by label does not exist.
func NotFound(label string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", label)}
}

// EmptyList reports that a list query matched no rows. The frontend relies
// on list endpoints answering 404 "no ... found" rather than an empty array.
func EmptyList(label string) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("no %s found", label)}
}

// Conflict reports a uniqueness violation.
func Conflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// Mismatch reports that two values that must agree do not, e.g. a
// department belonging to a different faculty than the one submitted.
func Mismatch(labelA, labelB string) *Error {
	return &Error{Kind: KindMismatch, Message: fmt.Sprintf("%s does not match %s", labelA, labelB)}
}

// Validation wraps a field-name → message map produced by input validation.
func Validation(fields map[string]string) *Error {
	return &Error{Kind: KindValidation, Message: "validation failed", Fields: fields}
}

// ValidationField is a shorthand for a single-field validation error.
func ValidationField(field, message string) *Error {
	return Validation(map[string]string{field: message})
}

// Database wraps an unexpected persistence failure, citing the operation.
func Database(op string, err error) *Error {
	return &Error{Kind: KindDatabase, Message: fmt.Sprintf("database update error: %s", op), Err: err}
}

// Unauthorized reports a failed authentication attempt.
func Unauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// AsError returns the *Error inside err, or nil.
func AsError(err error) *Error {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// MapErrorToStatus maps an arbitrary error to an HTTP status code.
func MapErrorToStatus(err error) int {
	if appErr := AsError(err); appErr != nil {
		return appErr.Status()
	}
	if errors.Is(err, ErrNotFound) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrUnauthorized) {
		return http.StatusUnauthorized
	}
	if errors.Is(err, ErrForbidden) {
		return http.StatusForbidden
	}
	if errors.Is(err, ErrBadRequest) {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
