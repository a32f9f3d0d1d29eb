package repository

import (
	"errors"
	"fmt"
)

// Kind classifies repository and wiring failures. Callers branch on the kind,
// never on backend-specific error types.
type Kind int

const (
	KindUnspecified Kind = iota
	KindNotConfigured
	KindNotFound
	KindValidationFailed
	KindUnauthorized
	KindUnavailable
)

func (k Kind) String() string {
	switch k {
	case KindNotConfigured:
		return "not_configured"
	case KindNotFound:
		return "not_found"
	case KindValidationFailed:
		return "validation_failed"
	case KindUnauthorized:
		return "unauthorized"
	case KindUnavailable:
		return "unavailable"
	}
	return "unspecified"
}

// Error is the typed failure every repository operation surfaces. The kind
// and any backend-provided message survive propagation unaltered.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error { return e.Err }

func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func WrapError(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func NotFound(message string) *Error         { return NewError(KindNotFound, message) }
func ValidationFailed(message string) *Error { return NewError(KindValidationFailed, message) }
func Unauthorized(message string) *Error     { return NewError(KindUnauthorized, message) }
func Unavailable(message string) *Error      { return NewError(KindUnavailable, message) }
func Unspecified(message string) *Error      { return NewError(KindUnspecified, message) }

// KindOf extracts the kind from err, or KindUnspecified when err carries no
// typed kind.
func KindOf(err error) Kind {
	var re *Error
	if errors.As(err, &re) {
		return re.Kind
	}
	return KindUnspecified
}

// IsKind reports whether err carries the given kind anywhere in its chain.
func IsKind(err error, kind Kind) bool {
	var re *Error
	return errors.As(err, &re) && re.Kind == kind
}
