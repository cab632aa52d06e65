package ctlv

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when the input ends before a required part
// of the encoding: the input is empty, or fewer value bytes remain than the
// triple's length calls for. Input ending inside the type or length field
// surfaces as a TypeError or LengthError wrapping varu64.ErrUnexpectedEOF.
var ErrUnexpectedEOF = errors.New("ctlv: unexpected end of input")

// TypeError reports that decoding the type field failed. It wraps the
// varu64 error unchanged.
type TypeError struct {
	Err error
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	return fmt.Sprintf("ctlv: invalid type field: %v", e.Err)
}

// Unwrap returns the underlying varu64 error.
func (e *TypeError) Unwrap() error {
	return e.Err
}

// LengthError reports that decoding the explicit length field failed. It
// wraps the varu64 error unchanged.
type LengthError struct {
	Err error
}

// Error implements the error interface.
func (e *LengthError) Error() string {
	return fmt.Sprintf("ctlv: invalid length field: %v", e.Err)
}

// Unwrap returns the underlying varu64 error.
func (e *LengthError) Unwrap() error {
	return e.Err
}
