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
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"
	ErrNotFound     ErrorCode = "NOT_FOUND"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"
	ErrConfigValid ErrorCode = "CONFIG_INVALID"

	// Conversion stage errors
	ErrDownload   ErrorCode = "DOWNLOAD"
	ErrExtract    ErrorCode = "EXTRACT"
	ErrConversion ErrorCode = "CONVERSION"
	ErrPack       ErrorCode = "PACK"
)

// Detail keys shared by the conversion stages
const (
	DetailStage   = "stage"
	DetailArchive = "archive"
	DetailPath    = "path"
	DetailURL     = "url"
)

// ConvError represents a structured error with code and details
type ConvError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *ConvError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *ConvError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *ConvError) Is(target error) bool {
	var targetErr *ConvError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new ConvError with the given code and message
func New(code ErrorCode, message string) *ConvError {
	return &ConvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new ConvError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *ConvError {
	return &ConvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a ConvError
func Wrap(err error, code ErrorCode, message string) *ConvError {
	if err == nil {
		return nil
	}
	return &ConvError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *ConvError {
	if err == nil {
		return nil
	}
	return &ConvError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *ConvError) WithDetail(key string, value interface{}) *ConvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *ConvError) WithDetails(details map[string]interface{}) *ConvError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// Stage returns the pipeline stage recorded on the error, if any
func (e *ConvError) Stage() string {
	if stage, ok := e.Details[DetailStage].(string); ok {
		return stage
	}
	return ""
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var convErr *ConvError
	if errors.As(err, &convErr) {
		return convErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a ConvError
func GetErrorCode(err error) ErrorCode {
	var convErr *ConvError
	if errors.As(err, &convErr) {
		return convErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a ConvError
func GetErrorDetails(err error) map[string]interface{} {
	var convErr *ConvError
	if errors.As(err, &convErr) {
		return convErr.Details
	}
	return nil
}
