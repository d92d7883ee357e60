package colorstore

import (
	"errors"
	"fmt"
	"time"
)

// Error codes
const (
	ErrCodeMissingTenantID    = "MISSING_TENANT_ID"
	ErrCodeInvalidTenantID    = "INVALID_TENANT_ID"
	ErrCodeUnauthorizedTenant = "UNAUTHORIZED_TENANT_ACCESS"
	ErrCodeDuplicateRecord    = "DUPLICATE_RECORD"
	ErrCodeStoreUnavailable   = "STORE_UNAVAILABLE"
	ErrCodeInvalidSubmission  = "INVALID_SUBMISSION"
)

// Error is the typed failure value propagated by every layer of the
// record store. Failures are returned, never panicked, and carry a
// stable code the boundary maps onto HTTP status codes.
type Error struct {
	Code      string    `json:"code"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewError creates a new typed error
func NewError(code, message string) *Error {
	return &Error{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// NewErrorf creates a new typed error with a formatted message
func NewErrorf(code, format string, args ...any) *Error {
	return NewError(code, fmt.Sprintf(format, args...))
}

// CodeOf returns the error code carried by err, or empty when err is
// not a typed store error.
func CodeOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsUnauthorizedTenant reports whether err is a tenant mismatch.
func IsUnauthorizedTenant(err error) bool {
	return CodeOf(err) == ErrCodeUnauthorizedTenant
}

// IsDuplicateRecord reports whether err is a conditional-insert conflict.
func IsDuplicateRecord(err error) bool {
	return CodeOf(err) == ErrCodeDuplicateRecord
}

// IsStoreUnavailable reports whether err is a backing-store transport or
// service failure.
func IsStoreUnavailable(err error) bool {
	return CodeOf(err) == ErrCodeStoreUnavailable
}

// IsInvalidSubmission reports whether err is a submission rejected before
// any store call.
func IsInvalidSubmission(err error) bool {
	return CodeOf(err) == ErrCodeInvalidSubmission
}
