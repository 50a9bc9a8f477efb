package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorCode represents internal error codes for the locale engine
type ErrorCode int

const (
	// Success
	ErrCodeOK ErrorCode = 0

	// Client errors (4xx equivalent)
	ErrCodeValidation     ErrorCode = 1000
	ErrCodeTenantNotFound ErrorCode = 1001
	ErrCodeTenantExists   ErrorCode = 1002
	ErrCodeInvalidRequest ErrorCode = 1003

	// Server errors (5xx equivalent)
	ErrCodeInternal      ErrorCode = 2000
	ErrCodeConfiguration ErrorCode = 2001
	ErrCodePersistence   ErrorCode = 2002
	ErrCodeNotReady      ErrorCode = 2003
)

// LocaleError represents a structured error with code and context
type LocaleError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Cause   error
}

// Error implements the error interface
func (e *LocaleError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *LocaleError) Unwrap() error {
	return e.Cause
}

// HTTPStatus maps internal error codes to HTTP status codes
func (e *LocaleError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeOK:
		return http.StatusOK
	case ErrCodeValidation, ErrCodeInvalidRequest:
		return http.StatusBadRequest
	case ErrCodeTenantNotFound:
		return http.StatusNotFound
	case ErrCodeTenantExists:
		return http.StatusConflict
	case ErrCodePersistence:
		return http.StatusBadGateway
	case ErrCodeNotReady:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// NewLocaleError creates a new LocaleError
func NewLocaleError(code ErrorCode, message string, cause error) *LocaleError {
	return &LocaleError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Cause:   cause,
	}
}

// WithDetail adds a detail to the error
func (e *LocaleError) WithDetail(key string, value interface{}) *LocaleError {
	e.Details[key] = value
	return e
}

// CodeOf extracts the internal code from an error chain. Errors that do not
// carry a LocaleError are reported as internal.
func CodeOf(err error) ErrorCode {
	if err == nil {
		return ErrCodeOK
	}
	var le *LocaleError
	if errors.As(err, &le) {
		return le.Code
	}
	return ErrCodeInternal
}

// Convenience constructors for common errors

// Validation reports a candidate settings record that failed field checks.
// fieldErrors maps field name to the reason it was rejected.
func Validation(fieldErrors map[string]string) *LocaleError {
	e := NewLocaleError(ErrCodeValidation, "tenant settings validation failed", nil)
	for field, reason := range fieldErrors {
		e.Details[field] = reason
	}
	return e
}

// Configuration reports a settings record holding a value no formatter
// recognizes. This indicates a bug in the stored record, not bad user input.
func Configuration(message string) *LocaleError {
	return NewLocaleError(ErrCodeConfiguration, message, nil)
}

// UnknownCurrency reports an unrecognized currency code.
func UnknownCurrency(code string) *LocaleError {
	return NewLocaleError(ErrCodeConfiguration, fmt.Sprintf("unknown currency code: %q", code), nil).
		WithDetail("currency", code)
}

// UnknownTimezone reports an unresolvable IANA timezone identifier.
func UnknownTimezone(zone string, cause error) *LocaleError {
	return NewLocaleError(ErrCodeConfiguration, fmt.Sprintf("unknown timezone: %q", zone), cause).
		WithDetail("timezone", zone)
}

// UnknownDateFormat reports a date pattern outside the accepted set.
func UnknownDateFormat(pattern string) *LocaleError {
	return NewLocaleError(ErrCodeConfiguration, fmt.Sprintf("unknown date format: %q", pattern), nil).
		WithDetail("date_format", pattern)
}

// Persistence reports a failed save round-trip. The in-memory snapshot is
// left at its pre-call value and the identical call may be retried.
func Persistence(message string, cause error) *LocaleError {
	return NewLocaleError(ErrCodePersistence, message, cause)
}

// NotReady reports a formatting call issued before any settings were loaded.
func NotReady(tenantID string) *LocaleError {
	return NewLocaleError(ErrCodeNotReady, "tenant settings not loaded", nil).
		WithDetail("tenant_id", tenantID)
}

// TenantNotFound reports a tenant with no persisted settings record.
func TenantNotFound(tenantID string) *LocaleError {
	return NewLocaleError(ErrCodeTenantNotFound, fmt.Sprintf("tenant not found: %s", tenantID), nil).
		WithDetail("tenant_id", tenantID)
}

// TenantExists reports an attempt to provision an already-provisioned tenant.
func TenantExists(tenantID string) *LocaleError {
	return NewLocaleError(ErrCodeTenantExists, fmt.Sprintf("tenant already provisioned: %s", tenantID), nil).
		WithDetail("tenant_id", tenantID)
}

// InvalidRequest reports a malformed HTTP request body or path.
func InvalidRequest(message string) *LocaleError {
	return NewLocaleError(ErrCodeInvalidRequest, message, nil)
}

// Internal wraps an unexpected failure.
func Internal(message string, cause error) *LocaleError {
	return NewLocaleError(ErrCodeInternal, message, cause)
}
