// Package apperror is the error taxonomy shared by the visit-timer and
// ban/violation engines. Handlers translate codes to HTTP statuses; the
// engines themselves never catch-and-swallow.
package apperror

import (
	"errors"
	"fmt"
)

type Code string

const (
	CodeInvalidFormat Code = "INVALID_FORMAT" // Malformed time/date string
	CodeValidation    Code = "VALIDATION"     // Constraint violated (bounds, missing fields)
	CodeConflict      Code = "CONFLICT"       // Duplicate active timer, banned person
	CodeNotFound      Code = "NOT_FOUND"      // Unknown person / visit log
	CodeInternal      Code = "INTERNAL"
)

type Error struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Format(msg string) *Error     { return &Error{Code: CodeInvalidFormat, Message: msg} }
func Validation(msg string) *Error { return &Error{Code: CodeValidation, Message: msg} }
func Conflict(msg string) *Error   { return &Error{Code: CodeConflict, Message: msg} }
func NotFound(msg string) *Error   { return &Error{Code: CodeNotFound, Message: msg} }
func Internal(msg string) *Error   { return &Error{Code: CodeInternal, Message: msg} }

// CodeOf returns the taxonomy code of err, or CodeInternal for anything else.
func CodeOf(err error) Code {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return CodeInternal
}

func HTTPStatus(err error) int {
	switch CodeOf(err) {
	case CodeInvalidFormat, CodeValidation:
		return 400
	case CodeNotFound:
		return 404
	case CodeConflict:
		return 409
	default:
		return 500
	}
}
