// Package errors defines the application error type rendered by the
// error-handling middleware.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Application error codes. Codes are stable identifiers returned to clients;
// they do not change when messages are reworded.
const (
	ErrInternalServer = 10001
	ErrNotFound       = 10002
	ErrInvalidRequest = 10003
)

// AppError is an error carrying an application code and the HTTP status
// it should be rendered with.
type AppError struct {
	Code     int    `json:"code"`
	Message  string `json:"message"`
	Details  any    `json:"details,omitempty"`
	HTTPCode int    `json:"-"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// NewAppError creates an AppError with the given code, HTTP status and message.
func NewAppError(code int, httpCode int, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// WithDetails attaches extra detail to the error and returns it.
func (e *AppError) WithDetails(details any) *AppError {
	e.Details = details
	return e
}

// NewInternalServerError creates an AppError for unexpected failures.
func NewInternalServerError(message string) *AppError {
	return NewAppError(ErrInternalServer, http.StatusInternalServerError, message)
}

// IsAppError reports whether err is (or wraps) an AppError.
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
