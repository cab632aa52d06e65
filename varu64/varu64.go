// Package varu64 implements a variable-length encoding for unsigned
// 64-bit integers.
//
// Wire format:
// - first byte 0..=247: the value itself, one byte total
// - first byte 248+k (k in 0..=7): the value follows in k+1 big-endian bytes
//
// Encodings are canonical: a value must be stored in the fewest bytes that
// can hold it, and the multi-byte forms are rejected during decode when a
// shorter form would have sufficed.
package varu64

import (
	"errors"
	"fmt"
)

// ErrUnexpectedEOF is returned when the input ends before a complete
// encoding could be read.
var ErrUnexpectedEOF = errors.New("varu64: unexpected end of input")

// NonCanonicalError is returned when a value was encoded in more bytes
// than necessary. It carries the decoded value.
type NonCanonicalError struct {
	Value uint64
}

// Error implements the error interface.
func (e *NonCanonicalError) Error() string {
	return fmt.Sprintf("varu64: non-canonical encoding of %d", e.Value)
}

// EncodingLength returns the number of bytes the encoding of v takes up.
func EncodingLength(v uint64) int {
	switch {
	case v < 248:
		return 1
	case v < 1<<8:
		return 2
	case v < 1<<16:
		return 3
	case v < 1<<24:
		return 4
	case v < 1<<32:
		return 5
	case v < 1<<40:
		return 6
	case v < 1<<48:
		return 7
	case v < 1<<56:
		return 8
	default:
		return 9
	}
}

// Encode writes the encoding of v into the beginning of out, returning how
// many bytes have been written. It panics if out is too small to hold the
// encoding; use EncodingLength to size the buffer.
func Encode(v uint64, out []byte) int {
	n := EncodingLength(v)
	if len(out) < n {
		panic(fmt.Sprintf("varu64: output buffer too small: need %d bytes, have %d", n, len(out)))
	}

	if n == 1 {
		out[0] = byte(v)
		return 1
	}

	// n-1 big-endian bytes after the 248+k marker.
	out[0] = 247 + byte(n-1)
	for i := n - 1; i >= 1; i-- {
		out[i] = byte(v)
		v >>= 8
	}
	return n
}

// Decode parses an encoded u64 from the beginning of input, returning the
// value and the remaining input. On failure the remaining input marks where
// parsing stopped: after the offending encoding for *NonCanonicalError, at
// the end of input for ErrUnexpectedEOF.
func Decode(input []byte) (uint64, []byte, error) {
	if len(input) == 0 {
		return 0, input, ErrUnexpectedEOF
	}

	first := input[0]
	if first < 248 {
		return uint64(first), input[1:], nil
	}

	k := int(first) - 247 // number of value bytes, 1..=8
	if len(input) < 1+k {
		return 0, input[len(input):], ErrUnexpectedEOF
	}

	var v uint64
	for _, b := range input[1 : 1+k] {
		v = v<<8 | uint64(b)
	}

	rest := input[1+k:]
	if v < minForLength(k) {
		return 0, rest, &NonCanonicalError{Value: v}
	}
	return v, rest, nil
}

// minForLength returns the smallest value whose canonical encoding uses k
// value bytes after the marker.
func minForLength(k int) uint64 {
	if k == 1 {
		return 248
	}
	return 1 << (8 * uint(k-1))
}
