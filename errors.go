package huey

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be machine-readable: collaborators classify their
// failures with a code and callers branch on ErrorCode rather than on
// error strings.
const (
	ECONFLICT      = "conflict"      // record already exists
	EINTERNAL      = "internal"      // internal error
	EINVALID       = "invalid"       // validation or data-integrity failure
	ENOTFOUND      = "not_found"     // entity (or page) does not exist
	EUNPROCESSABLE = "unprocessable" // document lacks required structure; skip it
)

// Error represents an application-specific error.
type Error struct {
	// Code is a machine-readable error code.
	Code string

	// Message is a human-readable message.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("huey error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode returns the code of the root error, if available.
// Otherwise returns EINTERNAL. Returns an empty string for nil errors.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage returns the message of the root error, if available.
// Otherwise returns a generic message. Returns an empty string for nil
// errors.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
