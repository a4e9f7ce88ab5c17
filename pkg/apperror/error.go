// Package apperror defines the adapter's error taxonomy. Every failure an
// operation can produce maps onto one of the sentinel errors below; tool
// handlers render them as structured failure results rather than letting
// them escape as protocol faults.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error represents an application error with a stable code.
type Error struct {
	HTTPStatus int
	Code       string
	Message    string
	Internal   error
	Details    map[string]any
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Internal != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Internal)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the internal error
func (e *Error) Unwrap() error {
	return e.Internal
}

// Is matches errors by code so wrapped copies compare equal to their
// sentinel: errors.Is(ErrValidation.WithMessage("..."), ErrValidation).
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return e.Code == t.Code
}

// WithInternal returns a copy of the error with an internal error attached
func (e *Error) WithInternal(err error) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   err,
		Details:    e.Details,
	}
}

// WithMessage returns a copy of the error with a custom message
func (e *Error) WithMessage(message string) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    message,
		Internal:   e.Internal,
		Details:    e.Details,
	}
}

// WithDetails returns a copy of the error with details attached
func (e *Error) WithDetails(details map[string]any) *Error {
	return &Error{
		HTTPStatus: e.HTTPStatus,
		Code:       e.Code,
		Message:    e.Message,
		Internal:   e.Internal,
		Details:    details,
	}
}

// New creates a new application error
func New(status int, code, message string) *Error {
	return &Error{
		HTTPStatus: status,
		Code:       code,
		Message:    message,
	}
}

// Sentinel errors, one per failure class an operation can surface.
var (
	// ErrValidation: input failed its declared contract. Raised before any
	// network call.
	ErrValidation = New(http.StatusUnprocessableEntity, "validation_error", "Validation failed")

	// ErrAuth: no session token configured.
	ErrAuth = New(http.StatusUnauthorized, "no_session_token", "No session token configured")

	// ErrSessionExpired: the backend rejected the current session token.
	ErrSessionExpired = New(http.StatusUnauthorized, "session_expired", "Backend session has expired")

	// ErrBackend: the backend replied but reported a business failure.
	ErrBackend = New(http.StatusBadGateway, "backend_error", "Backend reported a failure")

	// ErrNotFound: the backend replied success but the expected payload is
	// structurally absent.
	ErrNotFound = New(http.StatusNotFound, "not_found", "Resource not found")

	// ErrTransport: the backend could not be reached (network error or
	// timeout). Never retried.
	ErrTransport = New(http.StatusBadGateway, "transport_error", "Failed to reach backend")

	// ErrInternal covers everything that is a bug rather than a known
	// failure class.
	ErrInternal = New(http.StatusInternalServerError, "internal_error", "An internal error occurred")
)

// NewValidation creates a validation error naming the offending field and
// the expected format.
func NewValidation(field, expected string) *Error {
	return ErrValidation.
		WithMessage(fmt.Sprintf("invalid %s: expected %s", field, expected)).
		WithDetails(map[string]any{"field": field, "expected": expected})
}

// NewBackend creates a backend error carrying the backend's own message.
func NewBackend(message string) *Error {
	return ErrBackend.WithMessage(message)
}

// NewNotFound creates a not found error with a custom message.
func NewNotFound(message string) *Error {
	return ErrNotFound.WithMessage(message)
}

// NewTransport wraps a network-level failure.
func NewTransport(err error) *Error {
	return ErrTransport.WithInternal(err)
}

// ToHTTPError converts an app error to the HTTP error body format.
func ToHTTPError(err error) (int, map[string]any) {
	var appErr *Error
	if errors.As(err, &appErr) {
		errBody := map[string]any{
			"code":    appErr.Code,
			"message": appErr.Message,
		}
		if len(appErr.Details) > 0 {
			errBody["details"] = appErr.Details
		}
		return appErr.HTTPStatus, map[string]any{
			"error": errBody,
		}
	}

	return http.StatusInternalServerError, map[string]any{
		"error": map[string]any{
			"code":    "internal_error",
			"message": "An internal error occurred",
		},
	}
}
