package scheduling

import (
	"errors"
	"fmt"
)

// Error is a typed scheduling failure with a stable code.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewValidationError reports a draft or record that failed a business rule
// check before any store I/O.
func NewValidationError(msg string) error {
	return &Error{Code: "validationError", Message: msg}
}

// NewConflictError reports a time-overlap conflict that the caller chose to
// treat as blocking.
func NewConflictError(msg string) error {
	return &Error{Code: "conflictError", Message: msg}
}

// IsValidationError reports whether err is a validation failure.
func IsValidationError(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == "validationError"
}

// IsConflictError reports whether err is a blocking conflict.
func IsConflictError(err error) bool {
	var se *Error
	return errors.As(err, &se) && se.Code == "conflictError"
}
