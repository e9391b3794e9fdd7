// Package apperrors defines the error kinds the catalog surfaces to callers.
package apperrors

import (
	"errors"
	"fmt"
)

// Kind classifies an Error.
type Kind int

const (
	// KindInternal is any failure the caller cannot act on.
	KindInternal Kind = iota
	// KindNotFound means no product matched.
	KindNotFound
	// KindConflict means a unique title or slug is already taken.
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	default:
		return "internal"
	}
}

// InternalMessage is what callers see for any unclassified failure.
const InternalMessage = "Unexpected error, check server logs"

// Error is a classified catalog error. Message is safe to show to callers;
// Err holds the underlying cause and is never rendered by Error().
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict builds a KindConflict error carrying the constraint detail.
func Conflict(detail string, cause error) *Error {
	return &Error{Kind: KindConflict, Message: detail, Err: cause}
}

// Internal wraps cause behind the opaque InternalMessage.
func Internal(cause error) *Error {
	return &Error{Kind: KindInternal, Message: InternalMessage, Err: cause}
}

// KindOf returns the kind of err, or KindInternal if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// IsNotFound reports whether err is a KindNotFound error.
func IsNotFound(err error) bool { return err != nil && KindOf(err) == KindNotFound }

// IsConflict reports whether err is a KindConflict error.
func IsConflict(err error) bool { return err != nil && KindOf(err) == KindConflict }
