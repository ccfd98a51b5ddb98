// Package apperr defines the request-scoped error kinds the API can produce
// and their mapping to HTTP status codes. Handlers convert any error reaching
// the response boundary into the uniform error envelope via Status.
package apperr

import (
	"errors"
	"net/http"
)

// Kind sentinels. Use errors.Is to test which kind an error carries.
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrAuth       = errors.New("unauthorized")
	ErrStorage    = errors.New("storage error")
)

// Error wraps a kind sentinel with a caller-facing message and, optionally,
// the underlying cause. The message is what ends up in the response envelope;
// the cause never leaves the process.
type Error struct {
	Kind    error
	Message string
	Cause   error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Is(target error) bool { return errors.Is(e.Kind, target) }

func (e *Error) Unwrap() error { return e.Cause }

// Validation reports malformed or missing input (HTTP 422).
func Validation(msg string) error { return &Error{Kind: ErrValidation, Message: msg} }

// NotFound reports a missing entity (HTTP 404).
func NotFound(msg string) error { return &Error{Kind: ErrNotFound, Message: msg} }

// Conflict reports a uniqueness violation (HTTP 409).
func Conflict(msg string) error { return &Error{Kind: ErrConflict, Message: msg} }

// Auth reports bad credentials or an invalid token (HTTP 401).
func Auth(msg string) error { return &Error{Kind: ErrAuth, Message: msg} }

// Storage wraps an underlying persistence failure (HTTP 500). The driver
// error is kept as the cause; its message is surfaced as-is.
func Storage(err error) error {
	return &Error{Kind: ErrStorage, Message: err.Error(), Cause: err}
}

// Status maps an error to its HTTP status code. Unknown errors count as
// storage-level failures.
func Status(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrAuth):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
