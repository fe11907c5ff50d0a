package storage

import (
	"errors"
	"fmt"
)

// Kind classifies a storage failure. The set is closed: any error that is not
// a *Error reports KindUnknown.
type Kind int

const (
	KindUnknown Kind = iota
	// KindNotFound means the looked-up record does not exist.
	KindNotFound
	// KindInternal means the store failed for a reason unrelated to caller input.
	KindInternal
	// KindConnection means the store could not be reached or its schema synchronized.
	KindConnection
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInternal:
		return "internal"
	case KindConnection:
		return "connection"
	default:
		return "unknown"
	}
}

// Error is the error type returned by drivers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Sentinels for errors.Is comparisons by kind.
var (
	ErrNotFound   = &Error{Kind: KindNotFound}
	ErrInternal   = &Error{Kind: KindInternal}
	ErrConnection = &Error{Kind: KindConnection}
)

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches sentinel errors (no message) of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Message == "" && t.Kind == e.Kind
}

// NotFound builds a KindNotFound error.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Internal builds a KindInternal error wrapping cause.
func Internal(cause error, format string, args ...any) error {
	return &Error{Kind: KindInternal, Message: fmt.Sprintf(format, args...), Err: cause}
}

// Connection builds a KindConnection error wrapping cause.
func Connection(cause error, format string, args ...any) error {
	return &Error{Kind: KindConnection, Message: fmt.Sprintf(format, args...), Err: cause}
}

// KindOf returns the kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindUnknown
}
