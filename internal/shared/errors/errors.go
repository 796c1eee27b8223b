// Package errors provides the application error taxonomy shared by the use
// cases and the HTTP layer.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// ErrorType represents the type of error
type ErrorType string

const (
	ErrorTypeValidation       ErrorType = "validation_error"
	ErrorTypeNotFound         ErrorType = "not_found"
	ErrorTypeInvalidReference ErrorType = "invalid_reference"
	ErrorTypeAdapterFailure   ErrorType = "adapter_failure"
	ErrorTypeConflict         ErrorType = "conflict"
	ErrorTypeUnauthorized     ErrorType = "unauthorized"
	ErrorTypeUnauthenticated  ErrorType = "unauthenticated"
	ErrorTypeTooManyRequests  ErrorType = "too_many_requests"
	ErrorTypeInternal         ErrorType = "internal_error"
)

// AppError represents an application error with additional context
type AppError struct {
	Type    ErrorType `json:"type"`
	Message string    `json:"message"`
	Code    int       `json:"code"`
	Details string    `json:"details,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

func newAppError(t ErrorType, code int, message string, details []string) *AppError {
	detail := ""
	if len(details) > 0 {
		detail = details[0]
	}
	return &AppError{Type: t, Message: message, Code: code, Details: detail}
}

// NewValidationError reports quantity or range violations in a request.
func NewValidationError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeValidation, http.StatusBadRequest, message, details)
}

// NewNotFoundError reports an absent table, order, item, printer or call.
func NewNotFoundError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeNotFound, http.StatusNotFound, message, details)
}

// NewInvalidReferenceError reports an unknown or inactive menu item id.
func NewInvalidReferenceError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInvalidReference, http.StatusBadRequest, message, details)
}

// NewAdapterFailureError wraps a print transmission error message.
func NewAdapterFailureError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeAdapterFailure, http.StatusBadGateway, message, details)
}

func NewConflictError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeConflict, http.StatusConflict, message, details)
}

// NewUnauthorizedError reports a role that may not invoke an operation.
func NewUnauthorizedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthorized, http.StatusForbidden, message, details)
}

// NewUnauthenticatedError reports missing or invalid credentials.
func NewUnauthenticatedError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeUnauthenticated, http.StatusUnauthorized, message, details)
}

func NewTooManyRequestsError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeTooManyRequests, http.StatusTooManyRequests, message, details)
}

func NewInternalError(message string, details ...string) *AppError {
	return newAppError(ErrorTypeInternal, http.StatusInternalServerError, message, details)
}

// IsAppError checks if the error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError extracts AppError from error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

func isType(err error, t ErrorType) bool {
	appErr := GetAppError(err)
	return appErr != nil && appErr.Type == t
}

func IsNotFoundError(err error) bool         { return isType(err, ErrorTypeNotFound) }
func IsValidationError(err error) bool       { return isType(err, ErrorTypeValidation) }
func IsInvalidReferenceError(err error) bool { return isType(err, ErrorTypeInvalidReference) }
func IsUnauthorizedError(err error) bool     { return isType(err, ErrorTypeUnauthorized) }
func IsConflictError(err error) bool         { return isType(err, ErrorTypeConflict) }

// IsDuplicateError checks if the error is a database duplicate key error
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	errStr := err.Error()
	// MySQL
	if strings.Contains(errStr, "Duplicate entry") {
		return true
	}
	// PostgreSQL, SQLite
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "unique constraint") ||
		strings.Contains(errStr, "UNIQUE constraint failed")
}
