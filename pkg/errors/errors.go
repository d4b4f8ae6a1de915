// Package errors defines structured error types and handling utilities for the
// CRE assistant service. Errors carry a stable code and an HTTP status so that
// handlers can map domain failures onto responses without switch ladders.
package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Error codes used across the service.
const (
	CodeInvalidRequest = "invalid_request"
	CodeUnauthorized   = "unauthorized"
	CodeForbidden      = "forbidden"
	CodeNotFound       = "not_found"
	CodeConflict       = "conflict"
	CodeRateLimited    = "rate_limit_exceeded"
	CodeInternal       = "internal_error"
	CodeUnavailable    = "service_unavailable"
)

// AppError is the structured application error. Instances created by the
// constructors below are immutable templates; WithError and WithMessage
// return copies so sentinels can be compared with errors.Is.
type AppError struct {
	Code    string
	Status  int
	Message string
	cause   error
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.cause)
	}
	return e.Message
}

// Unwrap returns the underlying cause for error-chain traversal.
func (e *AppError) Unwrap() error {
	return e.cause
}

// Is matches two AppErrors by code, so wrapped copies still compare equal to
// their sentinel.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return e.Code == t.Code
	}
	return false
}

// WithError returns a copy of the error carrying cause as its underlying error.
func (e *AppError) WithError(cause error) *AppError {
	clone := *e
	clone.cause = cause
	return &clone
}

// WithMessage returns a copy of the error with a more specific message.
func (e *AppError) WithMessage(format string, args ...interface{}) *AppError {
	clone := *e
	clone.Message = fmt.Sprintf(format, args...)
	return &clone
}

// New creates a new AppError with the given code, HTTP status, and message.
func New(code string, status int, message string) *AppError {
	return &AppError{Code: code, Status: status, Message: message}
}

// Predefined sentinel errors.
var (
	ErrInvalidRequest = New(CodeInvalidRequest, http.StatusBadRequest, "the request is malformed or missing required parameters")
	ErrUnauthorized   = New(CodeUnauthorized, http.StatusUnauthorized, "authentication required")
	ErrForbidden      = New(CodeForbidden, http.StatusForbidden, "access denied")
	ErrNotFound       = New(CodeNotFound, http.StatusNotFound, "resource not found")
	ErrConflict       = New(CodeConflict, http.StatusConflict, "resource already exists")
	ErrRateLimited    = New(CodeRateLimited, http.StatusTooManyRequests, "rate limit exceeded, try again later")
	ErrInternal       = New(CodeInternal, http.StatusInternalServerError, "an unexpected error occurred")

	ErrDatabase = New(CodeInternal, http.StatusInternalServerError, "database operation failed")
	ErrCache    = New(CodeUnavailable, http.StatusServiceUnavailable, "cache operation failed")
	ErrVault    = New(CodeUnavailable, http.StatusServiceUnavailable, "secret store operation failed")
	ErrLLM      = New(CodeUnavailable, http.StatusServiceUnavailable, "language model call failed")
	ErrEventBus = New(CodeUnavailable, http.StatusServiceUnavailable, "event publish failed")
)

// Domain-specific constructors.

// ErrLeaseNotFound creates a lease not found error.
func ErrLeaseNotFound(leaseID string) *AppError {
	return ErrNotFound.WithMessage("lease not found: %s", leaseID)
}

// ErrWorkOrderNotFound creates a work order not found error.
func ErrWorkOrderNotFound(workOrderID string) *AppError {
	return ErrNotFound.WithMessage("work order not found: %s", workOrderID)
}

// ErrDocumentNotFound creates a document not found error.
func ErrDocumentNotFound(documentID string) *AppError {
	return ErrNotFound.WithMessage("document not found: %s", documentID)
}

// ErrInvalidTransition creates an error for an illegal work order state change.
func ErrInvalidTransition(from, to string) *AppError {
	return ErrConflict.WithMessage("illegal work order transition from %s to %s", from, to)
}

// AsAppError attempts to extract an AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// IsNotFound reports whether err represents a missing resource.
func IsNotFound(err error) bool {
	if appErr, ok := AsAppError(err); ok {
		return appErr.Code == CodeNotFound
	}
	return false
}

// HTTPStatus returns the HTTP status for an error, defaulting to 500.
func HTTPStatus(err error) int {
	if appErr, ok := AsAppError(err); ok && appErr.Status != 0 {
		return appErr.Status
	}
	return http.StatusInternalServerError
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// ToResponse converts any error to the wire representation. Internal details
// of non-AppError failures are not leaked to clients.
func ToResponse(err error) *ErrorResponse {
	if appErr, ok := AsAppError(err); ok {
		return &ErrorResponse{Error: appErr.Code, ErrorDescription: appErr.Message}
	}
	return &ErrorResponse{Error: CodeInternal, ErrorDescription: "an unexpected error occurred"}
}
