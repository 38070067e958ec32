package errors

import (
	"errors"
	"fmt"
)

// New creates a new OpticError with the given code and message.
func New(code ErrorCode, message string) *OpticError {
	return &OpticError{
		Code:    code,
		Message: message,
	}
}

// TypeMismatch reports an optic applied to data of an incompatible shape.
// op names the operation, want the container kind it expected, got the
// value it actually received.
func TypeMismatch(op, want string, got any) *OpticError {
	return New(ErrCodeTypeMismatch, fmt.Sprintf("%s expects %s, got %T", op, want, got)).
		WithDetail("op", op).
		WithDetail("want", want).
		WithDetail("got", fmt.Sprintf("%T", got))
}

// IndexOutOfRange reports a set past the bounds of an existing sequence.
func IndexOutOfRange(index, length int) *OpticError {
	return New(ErrCodeIndexOutOfRange, fmt.Sprintf("index %d out of range for sequence of length %d", index, length)).
		WithDetail("index", index).
		WithDetail("length", length)
}

// InvalidPath reports a path expression that could not be parsed.
func InvalidPath(raw string) *OpticError {
	return New(ErrCodeInvalidPath, fmt.Sprintf("invalid path %q", raw)).
		WithDetail("path", raw)
}

// Wrap wraps an error with additional context, preserving the code of an
// existing OpticError.
func Wrap(err error, message string) *OpticError {
	if err == nil {
		return nil
	}
	var oe *OpticError
	if errors.As(err, &oe) {
		return &OpticError{
			Code:    oe.Code,
			Message: message,
			Details: oe.Details,
			cause:   err,
		}
	}
	return New(ErrCodeTypeMismatch, message).WithCause(err)
}

// Wrapf wraps an error with a formatted message.
func Wrapf(err error, format string, args ...any) *OpticError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsTypeMismatch reports whether err carries the TYPE_MISMATCH code.
func IsTypeMismatch(err error) bool {
	oe, ok := AsType[*OpticError](err)
	return ok && oe.Code == ErrCodeTypeMismatch
}

// IsIndexOutOfRange reports whether err carries the INDEX_OUT_OF_RANGE code.
func IsIndexOutOfRange(err error) bool {
	oe, ok := AsType[*OpticError](err)
	return ok && oe.Code == ErrCodeIndexOutOfRange
}
