// Package errors defines the application error types shared between the
// use cases and the HTTP delivery layer.
package errors

import (
	"net/http"

	"github.com/pkg/errors"
)

// AppError is the interface the error middleware uses to translate a
// business failure into an HTTP response.
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code, for logs
	Message() string   // Outward-facing message
}

// BaseError is a basic error structure implementing the AppError interface.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
}

// NewBaseError creates a new base error.
func NewBaseError(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
	}
}

// Error implements the error interface.
func (e *BaseError) Error() string {
	return e.message
}

// HTTPCode returns the HTTP status code.
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code.
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the outward-facing error message.
func (e *BaseError) Message() string {
	return e.message
}

// WithMessage returns a copy of the error carrying a different
// outward-facing message. Used for validation errors, where the message
// is the first violation found.
func (e *BaseError) WithMessage(message string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   message,
	}
}

// WrapMessage wraps the error with additional context for the logs.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

var (
	// ErrEmailInUse is returned on signup when the email already has an
	// account.
	ErrEmailInUse = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_IN_USE",
		"Email already in use",
	)

	// ErrInvalidCredentials is returned on login for both an unknown
	// email and a wrong password, so callers cannot probe for accounts.
	ErrInvalidCredentials = NewBaseError(
		http.StatusBadRequest,
		"INVALID_CREDENTIALS",
		"Invalid credentials",
	)

	// ErrBlogNotVisible is returned when a public fetch targets a blog
	// that is missing or still a draft. The same message covers both
	// cases so drafts cannot be detected from the outside.
	ErrBlogNotVisible = NewBaseError(
		http.StatusForbidden,
		"BLOG_NOT_VISIBLE",
		"Blog not found",
	)

	// ErrBlogUnauthorized is returned when a mutation targets a blog the
	// caller does not own, including blogs that do not exist at all.
	ErrBlogUnauthorized = NewBaseError(
		http.StatusForbidden,
		"BLOG_UNAUTHORIZED",
		"Unauthorized",
	)

	// ErrValidationFailed carries the first validation violation as its
	// message via WithMessage.
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"Invalid request",
	)

	// ErrRouteNotFound covers unmatched routes.
	ErrRouteNotFound = NewBaseError(
		http.StatusNotFound,
		"ROUTE_NOT_FOUND",
		"Route not found",
	)
)
