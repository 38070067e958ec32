// Package errors provides the typed failures optics can surface when
// applied to incompatible data. Construction of an optic never fails;
// these errors arise only at application time. An absent focus is not an
// error at all — partial optics report it as functional.None.
package errors

import (
	"encoding/json"
	"errors"
	"fmt"
)

// AsType is a generic error type assertion.
// Returns the error as type T and true if the error chain contains type T.
func AsType[T error](err error) (T, bool) {
	var target T
	if errors.As(err, &target) {
		return target, true
	}
	return target, false
}

// ErrorCode represents optic failure categories.
type ErrorCode string

// Error codes for all optic failure categories.
const (
	ErrCodeTypeMismatch    ErrorCode = "TYPE_MISMATCH"
	ErrCodeIndexOutOfRange ErrorCode = "INDEX_OUT_OF_RANGE"
	ErrCodeInvalidPath     ErrorCode = "INVALID_PATH"
)

// OpticError is the standard error type for optic application failures.
type OpticError struct {
	Code    ErrorCode      `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *OpticError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is/As.
func (e *OpticError) Unwrap() error {
	return e.cause
}

// WithCause sets the underlying cause.
func (e *OpticError) WithCause(cause error) *OpticError {
	e.cause = cause
	return e
}

// WithDetail adds a detail to the error.
func (e *OpticError) WithDetail(key string, value any) *OpticError {
	if e.Details == nil {
		e.Details = make(map[string]any)
	}
	e.Details[key] = value
	return e
}

// Is checks if the error matches a target error code.
func (e *OpticError) Is(target error) bool {
	if t, ok := target.(*OpticError); ok {
		return e.Code == t.Code
	}
	return errors.Is(e.cause, target)
}

// As implements errors.As for type assertion.
func (e *OpticError) As(target any) bool {
	if t, ok := target.(**OpticError); ok {
		*t = e
		return true
	}
	return false
}

// MarshalJSON implements json.Marshaler.
func (e *OpticError) MarshalJSON() ([]byte, error) {
	type Alias OpticError
	aux := &struct {
		*Alias
		Cause string `json:"cause,omitempty"`
	}{Alias: (*Alias)(e)}
	if e.cause != nil {
		aux.Cause = e.cause.Error()
	}
	return json.Marshal(aux)
}
