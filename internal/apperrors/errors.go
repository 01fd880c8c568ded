// Package apperrors defines the error kinds the service distinguishes
// at its boundaries. Duplicates are deliberately not represented here:
// re-ingesting a known transaction is an idempotent no-op, not an error.
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error for policy and HTTP mapping.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindValidation
	KindConflict
	KindAuthentication
	KindAuthorization
	KindRateLimit
	KindExternal
)

// Error is an application error with a kind and an optional cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// NotFound marks a missing user or mission.
func NotFound(msg string) error { return &Error{Kind: KindNotFound, Message: msg} }

// Validation marks malformed or out-of-range input.
func Validation(msg string) error { return &Error{Kind: KindValidation, Message: msg} }

// Validationf is Validation with formatting.
func Validationf(format string, args ...any) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// Conflict marks a uniqueness violation such as a taken email.
func Conflict(msg string) error { return &Error{Kind: KindConflict, Message: msg} }

// Authentication marks missing or invalid credentials.
func Authentication(msg string) error { return &Error{Kind: KindAuthentication, Message: msg} }

// Authorization marks access to another user's resource.
func Authorization(msg string) error { return &Error{Kind: KindAuthorization, Message: msg} }

// RateLimited marks a request rejected by the rate limiter.
func RateLimited(msg string) error { return &Error{Kind: KindRateLimit, Message: msg} }

// External wraps a failure of a dependency such as the database.
func External(msg string, err error) error {
	return &Error{Kind: KindExternal, Message: msg, Err: err}
}

// KindOf extracts the kind from err, unwrapping as needed.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a NotFound error.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsValidation reports whether err is a Validation error.
func IsValidation(err error) bool { return KindOf(err) == KindValidation }

// StatusCode maps an error to the HTTP status the handler layer returns.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindValidation:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindRateLimit:
		return http.StatusTooManyRequests
	case KindExternal:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
