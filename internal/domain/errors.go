package domain

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies a failure for the HTTP layer.
type Kind string

const (
	KindValidation Kind = "VALIDATION"
	KindIntegrity  Kind = "INTEGRITY"
	KindFormat     Kind = "FORMAT"
	KindStorage    Kind = "STORAGE"
)

// Error is the domain error type shared by the submission and query paths.
type Error struct {
	Kind    Kind
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is matches by kind so callers can test errors.Is(err, domain.ErrStorage).
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// HTTPStatus maps the error kind to the status code the server answers with.
func (e *Error) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindFormat:
		return http.StatusBadRequest
	case KindIntegrity:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Sentinels for errors.Is comparisons.
var (
	ErrValidation = &Error{Kind: KindValidation}
	ErrIntegrity  = &Error{Kind: KindIntegrity}
	ErrFormat     = &Error{Kind: KindFormat}
	ErrStorage    = &Error{Kind: KindStorage}
)

func Validation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

func Integrity(message string) *Error {
	return &Error{Kind: KindIntegrity, Message: message}
}

func Format(message string, cause error) *Error {
	return &Error{Kind: KindFormat, Message: message, Cause: cause}
}

func Storage(message string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: message, Cause: cause}
}

// StatusOf returns the HTTP status for any error; unknown errors are 500.
func StatusOf(err error) int {
	var de *Error
	if errors.As(err, &de) {
		return de.HTTPStatus()
	}
	return http.StatusInternalServerError
}

// PublicMessage is the text safe to return to clients. Causes stay in the
// logs.
func PublicMessage(err error) string {
	var de *Error
	if errors.As(err, &de) {
		return de.Message
	}
	return "internal server error"
}
