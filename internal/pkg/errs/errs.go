package errs

import (
	"fmt"
	"net/http"

	"userdir/internal/pkg/logx"
)

// Kind is the coarse class of a CustomError, independent of its transport status.
type Kind string

const (
	KindNotFound   Kind = "not_found"
	KindConflict   Kind = "conflict"
	KindValidation Kind = "validation"
	KindInternal   Kind = "internal"
)

// CustomError is the error value returned across the service and handler layers.
type CustomError struct {
	// Code is the business error code (see error_codes.go).
	Code int

	// Kind classifies the error for callers that do not care about the exact code.
	Kind Kind

	// Message is the client-facing description.
	Message string

	// Status is the HTTP status used when the error is rendered as a response.
	Status int

	// cause is the underlying error for internal failures; never sent to clients.
	cause error
}

// Error implements the error interface.
func (e CustomError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("Error Code %d (HTTP %d): %s: %v", e.Code, e.Status, e.Message, e.cause)
	}
	return fmt.Sprintf("Error Code %d (HTTP %d): %s", e.Code, e.Status, e.Message)
}

// Unwrap exposes the underlying cause to errors.Is / errors.As.
func (e CustomError) Unwrap() error {
	return e.cause
}

// HasCode reports whether e is non-nil and carries the given code.
func (e *CustomError) HasCode(code int) bool {
	return e != nil && e.Code == code
}

// NewError builds a *CustomError from a known code. Unknown codes fall back to ErrUnknown.
// For internal-kind codes an error passed in details is logged and kept as the cause.
func NewError(code int, details ...any) *CustomError {
	template, ok := errorMap[code]
	if !ok {
		logx.Error(
			fmt.Errorf("error code %d is not registered", code),
			"Unknown error code requested",
			"requested_code", code,
		)
		template = errorMap[ErrUnknown]
	}

	customErr := template
	if customErr.Status == 0 {
		customErr.Status = http.StatusOK
	}

	if len(details) == 0 {
		return &customErr
	}

	if cause, isErr := details[0].(error); isErr && customErr.Kind == KindInternal {
		customErr.cause = cause
		logx.Error(cause, "Internal error recorded", "code", customErr.Code)
		return &customErr
	}

	logx.Warn("Details provided for a non-internal error were ignored", "code", customErr.Code)
	return &customErr
}
