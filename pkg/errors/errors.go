package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown       ErrorCode = "UNKNOWN"
	ErrInternal      ErrorCode = "INTERNAL"
	ErrInvalidInput  ErrorCode = "INVALID_INPUT"
	ErrNotFound      ErrorCode = "NOT_FOUND"
	ErrAlreadyExists ErrorCode = "ALREADY_EXISTS"
	ErrFrozen        ErrorCode = "FROZEN"

	// Rendering errors
	ErrArity          ErrorCode = "ARITY"
	ErrUnknownCommand ErrorCode = "UNKNOWN_COMMAND"
	ErrParse          ErrorCode = "PARSE"
	ErrTemplate       ErrorCode = "TEMPLATE"
	ErrBackend        ErrorCode = "BACKEND"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigParse   ErrorCode = "CONFIG_PARSE"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// I/O errors
	ErrFileAccess ErrorCode = "FILE_ACCESS"
	ErrWrite      ErrorCode = "WRITE"
)

// RenderError represents a structured error with code and details
type RenderError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RenderError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RenderError) Unwrap() error {
	return e.Wrapped
}

// Is matches any RenderError carrying the same code
func (e *RenderError) Is(target error) bool {
	var targetErr *RenderError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RenderError with the given code and message
func New(code ErrorCode, message string) *RenderError {
	return &RenderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RenderError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RenderError {
	return &RenderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RenderError
func Wrap(err error, code ErrorCode, message string) *RenderError {
	if err == nil {
		return nil
	}
	return &RenderError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RenderError {
	if err == nil {
		return nil
	}
	return &RenderError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Arity reports a command invoked with the wrong number of arguments.
func Arity(command, expected string, got int) *RenderError {
	return Newf(ErrArity, "%s expects %s, got %d", command, expected, got).
		WithDetail("command", command).
		WithDetail("got", got)
}

// WithDetail adds a detail to the error
func (e *RenderError) WithDetail(key string, value interface{}) *RenderError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RenderError) WithDetails(details map[string]interface{}) *RenderError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		return renderErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RenderError
func GetErrorCode(err error) ErrorCode {
	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		return renderErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RenderError
func GetErrorDetails(err error) map[string]interface{} {
	var renderErr *RenderError
	if errors.As(err, &renderErr) {
		return renderErr.Details
	}
	return nil
}
