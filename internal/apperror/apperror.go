// Package apperror holds the closed set of error kinds returned by the domain services.
package apperror

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindInvalidReference
	KindDuplicateSong
	KindOrderConflict
	KindInvalidOrder
	KindTransactionFailure
	KindInvalidInput
	KindUnauthorized
	KindForbidden
	KindConflict
)

var kindNames = map[Kind]string{
	KindUnknown:            "unknown",
	KindNotFound:           "not_found",
	KindInvalidReference:   "invalid_reference",
	KindDuplicateSong:      "duplicate_song",
	KindOrderConflict:      "order_conflict",
	KindInvalidOrder:       "invalid_order",
	KindTransactionFailure: "transaction_failure",
	KindInvalidInput:       "invalid_input",
	KindUnauthorized:       "unauthorized",
	KindForbidden:          "forbidden",
	KindConflict:           "conflict",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return kindNames[KindUnknown]
}

// Error is a tagged domain error. Message is safe to show to callers; Err is not.
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

// Is matches another *Error by kind, so errors.Is(err, apperror.ErrNotFound) works.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is comparisons.
var (
	ErrNotFound           = &Error{Kind: KindNotFound}
	ErrInvalidReference   = &Error{Kind: KindInvalidReference}
	ErrDuplicateSong      = &Error{Kind: KindDuplicateSong}
	ErrOrderConflict      = &Error{Kind: KindOrderConflict}
	ErrInvalidOrder       = &Error{Kind: KindInvalidOrder}
	ErrTransactionFailure = &Error{Kind: KindTransactionFailure}
	ErrInvalidInput       = &Error{Kind: KindInvalidInput}
)

func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Err: err}
}

func NotFound(format string, args ...any) *Error {
	return New(KindNotFound, format, args...)
}

func InvalidReference(format string, args ...any) *Error {
	return New(KindInvalidReference, format, args...)
}

func InvalidInput(format string, args ...any) *Error {
	return New(KindInvalidInput, format, args...)
}

func Unauthorized(format string, args ...any) *Error {
	return New(KindUnauthorized, format, args...)
}

func Forbidden(format string, args ...any) *Error {
	return New(KindForbidden, format, args...)
}

func Conflict(format string, args ...any) *Error {
	return New(KindConflict, format, args...)
}

// TransactionFailure wraps an unclassified storage error. An *Error passes through untouched.
func TransactionFailure(err error, op string) error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return err
	}
	return Wrap(KindTransactionFailure, err, "%s failed", op)
}

// KindOf reports the kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindUnknown
}

// MessageOf returns the caller-safe message of err.
func MessageOf(err error) string {
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return "internal error"
}
