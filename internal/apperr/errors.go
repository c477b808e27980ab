package apperr

import (
	"errors"
	"fmt"
)

// Code identifies the kind of an expected failure.
type Code string

// Error codes.
const (
	InvalidProjectName        Code = "INVALID_PROJECT_NAME"
	InvalidTemplate           Code = "INVALID_TEMPLATE"
	InvalidPackageManager     Code = "INVALID_PACKAGE_MANAGER"
	UnsupportedRuntimeVersion Code = "UNSUPPORTED_RUNTIME_VERSION"
	PermissionDenied          Code = "PERMISSION_DENIED"
	DirectoryNotEmpty         Code = "DIRECTORY_NOT_EMPTY"
	NoPackageManager          Code = "NO_PACKAGE_MANAGER"
	PackageManagerProbeFailed Code = "PACKAGE_MANAGER_PROBE_FAILED"
)

// Error is an expected failure with a stable code, a human message and an
// optional underlying cause.
type Error struct {
	Code    Code
	Message string
	Cause   error
}

// New returns an error with the given code and formatted message.
func New(code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an error with the given code and message that keeps cause
// reachable through errors.Unwrap.
func Wrap(cause error, code Code, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// CodeOf returns the code of the first *Error in err's chain, or "" if there
// is none.
func CodeOf(err error) Code {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether err's chain contains an *Error with the given code.
func Is(err error, code Code) bool {
	return err != nil && CodeOf(err) == code
}
