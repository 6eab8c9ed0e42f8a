package errors

import (
	"fmt"
	"runtime"
)

// AppError represents an application-specific error
type AppError struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	Cause     error  `json:"-"`
	File      string `json:"file,omitempty"`
	Line      int    `json:"line,omitempty"`
	Operation string `json:"operation,omitempty"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Cause
}

// Reason is the text reported to clients: the cause when there is one,
// otherwise the message.
func (e *AppError) Reason() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

// NewAppError creates a new application error. The recorded location is
// that of the caller of the code constructor, so call it through one.
func NewAppError(code, message string, cause error) *AppError {
	_, file, line, _ := runtime.Caller(2)
	return &AppError{
		Code:    code,
		Message: message,
		Cause:   cause,
		File:    file,
		Line:    line,
	}
}

// WithOperation adds operation context to the error
func (e *AppError) WithOperation(operation string) *AppError {
	e.Operation = operation
	return e
}

// Common error codes
const (
	ErrCodeMalformedRequest = "MALFORMED_REQUEST"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// MalformedRequest reports a request body that could not be decoded into
// a list of lines.
func MalformedRequest(message string, cause error) *AppError {
	return NewAppError(ErrCodeMalformedRequest, message, cause)
}

// InternalError reports a failure on the server side of a request
func InternalError(message string, cause error) *AppError {
	return NewAppError(ErrCodeInternalError, message, cause)
}

// Is reports whether err is an AppError carrying code.
func Is(err error, code string) bool {
	for err != nil {
		if appErr, ok := err.(*AppError); ok && appErr.Code == code {
			return true
		}
		u, ok := err.(interface{ Unwrap() error })
		if !ok {
			return false
		}
		err = u.Unwrap()
	}
	return false
}
