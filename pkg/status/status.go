package status

import (
	"errors"
	"fmt"
)

// Code identifies the kind of failure a Status carries. The set is closed;
// new values must not be introduced outside this package.
type Code uint8

const (
	CodeOK Code = iota
	CodeOutOfMemory
	CodeKeyError
	CodeTypeError
	CodeInvalid
	CodeCancelled
	CodeIOError
	CodeCapacityError
	CodeIndexError
	CodeUnknownError
	CodeNotImplemented
	CodeSerializationError
)

// String returns the stable human-readable label for the code.
func (c Code) String() string {
	switch c {
	case CodeOK:
		return "OK"
	case CodeOutOfMemory:
		return "Out of memory"
	case CodeKeyError:
		return "Key error"
	case CodeTypeError:
		return "Type error"
	case CodeInvalid:
		return "Invalid"
	case CodeCancelled:
		return "Cancelled"
	case CodeIOError:
		return "IOError"
	case CodeCapacityError:
		return "Capacity error"
	case CodeIndexError:
		return "Index error"
	case CodeUnknownError:
		return "Unknown error"
	case CodeNotImplemented:
		return "NotImplemented"
	case CodeSerializationError:
		return "Serialization error"
	default:
		return "Unknown"
	}
}

// Status is the outcome of an operation: either OK or a failure carrying a
// code from the closed set plus a message. The zero value is OK. Status is a
// small value type and is passed by value throughout the module.
type Status struct {
	code Code
	msg  string
}

// OK returns a successful status.
func OK() Status {
	return Status{}
}

// New builds a status with an arbitrary code. Prefer the per-code
// constructors below.
func New(code Code, format string, args ...any) Status {
	if code == CodeOK {
		return Status{}
	}
	return Status{code: code, msg: fmt.Sprintf(format, args...)}
}

// OutOfMemory returns a status with CodeOutOfMemory.
func OutOfMemory(format string, args ...any) Status {
	return New(CodeOutOfMemory, format, args...)
}

// KeyError returns a status with CodeKeyError.
func KeyError(format string, args ...any) Status {
	return New(CodeKeyError, format, args...)
}

// TypeError returns a status with CodeTypeError.
func TypeError(format string, args ...any) Status {
	return New(CodeTypeError, format, args...)
}

// Invalid returns a status with CodeInvalid.
func Invalid(format string, args ...any) Status {
	return New(CodeInvalid, format, args...)
}

// Cancelled returns a status with CodeCancelled.
func Cancelled(format string, args ...any) Status {
	return New(CodeCancelled, format, args...)
}

// IOError returns a status with CodeIOError.
func IOError(format string, args ...any) Status {
	return New(CodeIOError, format, args...)
}

// CapacityError returns a status with CodeCapacityError.
func CapacityError(format string, args ...any) Status {
	return New(CodeCapacityError, format, args...)
}

// IndexError returns a status with CodeIndexError.
func IndexError(format string, args ...any) Status {
	return New(CodeIndexError, format, args...)
}

// Unknown returns a status with CodeUnknownError.
func Unknown(format string, args ...any) Status {
	return New(CodeUnknownError, format, args...)
}

// NotImplemented returns a status with CodeNotImplemented.
func NotImplemented(format string, args ...any) Status {
	return New(CodeNotImplemented, format, args...)
}

// SerializationError returns a status with CodeSerializationError.
func SerializationError(format string, args ...any) Status {
	return New(CodeSerializationError, format, args...)
}

// Code returns the status code.
func (s Status) Code() Code {
	return s.code
}

// Message returns the failure message, empty for OK statuses.
func (s Status) Message() string {
	return s.msg
}

// IsOK reports whether the status carries no failure.
func (s Status) IsOK() bool {
	return s.code == CodeOK
}

// String renders the status as "<label>: <message>", or just "OK".
func (s Status) String() string {
	if s.IsOK() {
		return "OK"
	}
	if s.msg == "" {
		return s.code.String()
	}
	return s.code.String() + ": " + s.msg
}

// Err bridges the status into the error domain. OK maps to nil; failures map
// to an error that matches (via errors.Is) any other status error with the
// same code.
func (s Status) Err() error {
	if s.IsOK() {
		return nil
	}
	return &statusError{st: s}
}

// FromError is the inverse of Err. A nil error maps to OK, a status error
// recovers its original Status, and any other error is wrapped as
// CodeUnknownError.
func FromError(err error) Status {
	if err == nil {
		return OK()
	}
	var se *statusError
	if errors.As(err, &se) {
		return se.st
	}
	return Unknown("%s", err.Error())
}

// statusError adapts a failed Status to the error interface.
type statusError struct {
	st Status
}

func (e *statusError) Error() string {
	return e.st.String()
}

// Is matches status errors by code, so callers can compare against a
// constructed sentinel: errors.Is(err, status.Invalid("").Err()).
func (e *statusError) Is(target error) bool {
	t, ok := target.(*statusError)
	return ok && t.st.code == e.st.code
}
