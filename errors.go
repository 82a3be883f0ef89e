package portfolio

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

// ErrorKind classifies a service failure so callers can branch on kind
// instead of string-matching the message.
type ErrorKind int

const (
	KindNetwork ErrorKind = iota
	KindNotFound
	KindPermission
	KindValidation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindPermission:
		return "permission"
	case KindValidation:
		return "validation"
	default:
		return "network"
	}
}

// Error is the only error type a resource service returns. It carries a
// kind plus a human-readable message and optionally wraps the cause.
type Error struct {
	Kind    ErrorKind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Is makes errors.Is(err, &Error{Kind: k}) match on kind alone.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// NotFoundf builds a KindNotFound error.
func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Validationf builds a KindValidation error.
func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// classify converts an arbitrary store error into a typed *Error. This is
// the boundary past which no raw error escapes: services call it on every
// failure path.
func classify(op string, err error) *Error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return se
	}
	kind := KindNetwork
	switch {
	case errors.Is(err, sql.ErrNoRows):
		kind = KindNotFound
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		kind = KindNetwork
	}
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf("%s: %v", op, err),
		cause:   err,
	}
}
