// Package serrors implements semantic errors: a sentinel Kind describing the
// category of a failure, optionally carrying a cause and a message meant for
// the API caller.
package serrors

import (
	"errors"
	"fmt"
)

// Kind is implemented by every category created with NewKind.
type Kind interface {
	error
	isKind()
}

type kind struct{ s string }

func (k kind) Error() string { return k.s }
func (k kind) isKind()       {}

// NewKind creates a new category. The name doubles as the machine readable
// error code returned to API clients.
func NewKind(name string) Kind { return kind{s: name} }

var (
	// ErrNotFound indicates the requested entity does not exist for the caller.
	ErrNotFound = NewKind("NOT_FOUND")
	// ErrUnauthorized indicates missing or invalid authentication.
	ErrUnauthorized = NewKind("UNAUTHORIZED")
	// ErrBadRequest indicates the client sent invalid data.
	ErrBadRequest = NewKind("BAD_REQUEST")
	// ErrConflict indicates the request lost against a newer one or a state change.
	ErrConflict = NewKind("CONFLICT")
	// ErrInternal indicates an unexpected server failure.
	ErrInternal = NewKind("INTERNAL")
	// ErrRateLimited indicates an upstream vendor throttled us.
	ErrRateLimited = NewKind("RATE_LIMITED")

	// ErrDataUnavailable marks a read that returned nothing usable. Callers
	// degrade to "no value to show" instead of failing.
	ErrDataUnavailable = NewKind("DATA_UNAVAILABLE")
	// ErrInvalidSegmentTag is returned for a campaign segment outside the boost table.
	ErrInvalidSegmentTag = NewKind("INVALID_SEGMENT_TAG")
	// ErrConfigurationMissing marks a feature whose credentials are not configured.
	ErrConfigurationMissing = NewKind("CONFIGURATION_MISSING")
)

// Error carries a kind, an optional cause and an optional message.
// errors.Is and errors.As match both the kind and anything in the cause chain.
//
// Error() renders "<msg>: <cause>", "<msg>", "<cause>" or the kind name,
// depending on what is set.
type Error struct {
	kind Kind
	err  error
	msg  string
}

// With builds an error of kind k with a formatted message.
func With(k Kind, msgFmt string, args ...any) *Error {
	return &Error{kind: k, msg: fmt.Sprintf(msgFmt, args...)}
}

// Wrap builds an error of kind k around cause err with a formatted message.
func Wrap(k Kind, err error, msgFmt string, args ...any) *Error {
	return &Error{kind: k, err: err, msg: fmt.Sprintf(msgFmt, args...)}
}

// KindOnly builds an error that carries nothing but its kind.
func KindOnly(k Kind) *Error { return &Error{kind: k} }

func (e *Error) Error() string {
	switch {
	case e == nil:
		return "<nil>"
	case e.msg != "" && e.err != nil:
		return e.msg + ": " + e.err.Error()
	case e.msg != "":
		return e.msg
	case e.err != nil:
		return e.err.Error()
	case e.kind != nil:
		return e.kind.Error()
	default:
		return "unknown error"
	}
}

func (e *Error) Unwrap() error { return e.err }

func (e *Error) Is(target error) bool {
	if e == nil || target == nil {
		return e == nil && target == nil
	}
	if e.kind != nil && errors.Is(e.kind, target) {
		return true
	}

	return e.err != nil && errors.Is(e.err, target)
}

func (e *Error) As(target any) bool {
	if e == nil || target == nil {
		return false
	}
	if e.kind != nil && errors.As(e.kind, target) {
		return true
	}

	return e.err != nil && errors.As(e.err, target)
}

// Kind returns the category, or nil.
func (e *Error) Kind() Kind { return e.kind }

// Message returns the caller-facing message.
func (e *Error) Message() string { return e.msg }

// Cause returns the wrapped error, or nil.
func (e *Error) Cause() error { return e.err }

// KindOf returns the outermost semantic kind found in err's chain, or
// ErrInternal when there is none.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.kind != nil {
		return se.kind
	}
	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// MessageOf returns the caller-facing message of the outermost semantic error
// in err's chain, or an empty string.
func MessageOf(err error) string {
	var se *Error
	if errors.As(err, &se) {
		return se.msg
	}

	return ""
}
