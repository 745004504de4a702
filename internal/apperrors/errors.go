package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates that the store rejected a write because it conflicts
// with related data (e.g. a foreign key to a missing account).
var ErrConflict = errors.New("resource conflicts with related data")

// ErrAlreadyUsed indicates that a resource is referenced by other financial
// records and must not be mutated or deleted.
var ErrAlreadyUsed = errors.New("resource already used by other data")

// AppError wraps an infrastructure failure with a status-like code.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates an AppError for failures that have no domain meaning,
// such as a transaction that could not be started or committed.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
