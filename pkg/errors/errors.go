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

	// Path security errors
	ErrTraversalAttempt  ErrorCode = "TRAVERSAL_ATTEMPT"
	ErrEscapesRoot       ErrorCode = "ESCAPES_ROOT"
	ErrInvalidComponent  ErrorCode = "INVALID_COMPONENT"
	ErrSymlinkNotAllowed ErrorCode = "SYMLINK_NOT_ALLOWED"

	// Profile errors
	ErrProfileNotFound  ErrorCode = "PROFILE_NOT_FOUND"
	ErrProfileInvalid   ErrorCode = "PROFILE_INVALID"
	ErrDuplicateOverlay ErrorCode = "DUPLICATE_OVERLAY"

	// Plan errors
	ErrPlanInvalid ErrorCode = "PLAN_INVALID"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// FileSystem errors
	ErrFileRead   ErrorCode = "FILE_READ"
	ErrFileWrite  ErrorCode = "FILE_WRITE"
	ErrFileDelete ErrorCode = "FILE_DELETE"
	ErrDirCreate  ErrorCode = "DIR_CREATE"

	// Backup errors
	ErrBackupNotFound ErrorCode = "BACKUP_NOT_FOUND"
	ErrBackupInvalid  ErrorCode = "BACKUP_INVALID"
	ErrBackupWrite    ErrorCode = "BACKUP_WRITE"
	ErrHashMismatch   ErrorCode = "HASH_MISMATCH"
)

// DotclaudeError represents a structured error with code and details
type DotclaudeError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *DotclaudeError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *DotclaudeError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *DotclaudeError) Is(target error) bool {
	var targetErr *DotclaudeError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new DotclaudeError with the given code and message
func New(code ErrorCode, message string) *DotclaudeError {
	return &DotclaudeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new DotclaudeError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *DotclaudeError {
	return &DotclaudeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a DotclaudeError
func Wrap(err error, code ErrorCode, message string) *DotclaudeError {
	if err == nil {
		return nil
	}
	return &DotclaudeError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *DotclaudeError {
	if err == nil {
		return nil
	}
	return &DotclaudeError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *DotclaudeError) WithDetail(key string, value interface{}) *DotclaudeError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var dcErr *DotclaudeError
	if errors.As(err, &dcErr) {
		return dcErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a DotclaudeError
func GetErrorCode(err error) ErrorCode {
	var dcErr *DotclaudeError
	if errors.As(err, &dcErr) {
		return dcErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a DotclaudeError
func GetErrorDetails(err error) map[string]interface{} {
	var dcErr *DotclaudeError
	if errors.As(err, &dcErr) {
		return dcErr.Details
	}
	return nil
}
