// Package hresult models the native status-code convention used across the
// 7-Zip plugin boundary.
package hresult

import (
	"errors"
	"fmt"
)

// Code is a raw HRESULT as returned by the native library.
type Code uint32

const (
	S_OK           Code = 0x00000000
	S_FALSE        Code = 0x00000001
	E_NOTIMPL      Code = 0x80004001
	E_NOINTERFACE  Code = 0x80004002
	E_POINTER      Code = 0x80004003
	E_ABORT        Code = 0x80004004
	E_FAIL         Code = 0x80004005
	E_ACCESSDENIED Code = 0x80070005
	E_HANDLE       Code = 0x80070006
	E_OUTOFMEMORY  Code = 0x8007000E
	E_INVALIDARG   Code = 0x80070057
	E_UNEXPECTED   Code = 0x8000FFFF
)

var descriptions = map[Code]string{
	S_OK:           "operation successful",
	S_FALSE:        "operation returned false",
	E_NOTIMPL:      "not implemented",
	E_NOINTERFACE:  "no such interface supported",
	E_POINTER:      "pointer that is not valid",
	E_ABORT:        "operation aborted",
	E_FAIL:         "unspecified failure",
	E_ACCESSDENIED: "general access denied error",
	E_HANDLE:       "handle that is not valid",
	E_OUTOFMEMORY:  "failed to allocate necessary memory",
	E_INVALIDARG:   "one or more arguments are not valid",
	E_UNEXPECTED:   "unexpected failure",
}

// FromInt32 converts the signed native representation.
func FromInt32(v int32) Code {
	return Code(uint32(v))
}

// Int32 returns the signed native representation.
func (c Code) Int32() int32 {
	return int32(c)
}

// Succeeded reports whether the severity bit is clear.
func (c Code) Succeeded() bool {
	return c&0x80000000 == 0
}

// Failed reports whether the severity bit is set.
func (c Code) Failed() bool {
	return !c.Succeeded()
}

// Description returns a human readable description of well-known codes.
func (c Code) Description() string {
	if d, ok := descriptions[c]; ok {
		return d
	}
	return "unknown error code"
}

func (c Code) Error() string {
	return fmt.Sprintf("HRESULT %#08x: %s", uint32(c), c.Description())
}

// Error is a failed native call.
type Error struct {
	Op   string
	Code Code
}

func (e *Error) Error() string {
	if e.Op == "" {
		return e.Code.Error()
	}
	return e.Op + ": " + e.Code.Error()
}

func (e *Error) Unwrap() error {
	return e.Code
}

// Check turns a native status code into an error. Success codes other than
// S_OK (such as S_FALSE) are not errors.
func Check(op string, code Code) error {
	if code.Succeeded() {
		return nil
	}
	return &Error{Op: op, Code: code}
}

// FromError maps a managed error onto a status code for the native side. The
// second result is false when err carries no status code of its own and the
// caller has to substitute a sentinel.
func FromError(err error) (Code, bool) {
	if err == nil {
		return S_OK, true
	}
	var herr *Error
	if errors.As(err, &herr) {
		return herr.Code, true
	}
	var code Code
	if errors.As(err, &code) {
		return code, true
	}
	return E_UNEXPECTED, false
}
