package errs

import (
	"errors"
	"fmt"
)

// ErrConflict signals a uniqueness violation, typically a duplicate business code.
var ErrConflict = errors.New("conflict")

type ConflictError struct {
	ParamName string
	Value     any
	Cause     error
}

func NewConflictError(paramName string, value any) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		Value:     value,
	}
}

func NewConflictErrorWithCause(paramName string, value any, cause error) *ConflictError {
	return &ConflictError{
		ParamName: paramName,
		Value:     value,
		Cause:     cause,
	}
}

func (e *ConflictError) Error() string {
	msg := fmt.Sprintf("%s: %s %v already exists", ErrConflict, e.ParamName, sanitize(e.Value))
	if e.Cause != nil {
		msg += fmt.Sprintf(" (cause: %v)", e.Cause)
	}
	return msg
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
