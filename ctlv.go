// Package ctlv implements the compact type-length-value (CTLV) encoding.
//
// Wire format:
// - type: varu64-encoded unsigned 64-bit tag
// - length: varu64-encoded value length, present only for types >= 128
// - value: raw bytes
//
// Types below 128 are compact: their value length is implied by the type
// itself, 1 << (type >> 3) bytes, so bands of eight consecutive tags share a
// length and each band doubles it (types 0..7 carry 1 byte, 120..127 carry
// 32768). Types 128 and above carry an explicit length field.
package ctlv

import (
	"fmt"
	"io"

	"github.com/ctlvfmt/ctlv/varu64"
)

// compactLimit separates compact types (implied length) from types that
// carry an explicit length field. Encode and decode must both branch on the
// type against this limit, never on the value's length.
const compactLimit = 128

// Ctlv is a type-length-value triple. The zero value is a valid triple with
// type 0 and an empty value.
//
// Triples returned by Decode own their value; triples returned by DecodeRaw
// alias the decoded input.
type Ctlv struct {
	// Type is the tag of the triple.
	Type uint64
	// Value is the payload. For compact types the encoding rule derives
	// its length from Type; placing a value of a different length into a
	// compact-type triple is not rejected here, but will desynchronize
	// any decoder reading data that follows the encoded triple.
	Value []byte
}

// impliedLength returns the value length implied by a compact type.
func impliedLength(typ uint64) uint64 {
	return 1 << (typ >> 3)
}

// EncodingLength returns how many bytes the encoding of the triple will
// take up. It never allocates.
func (c Ctlv) EncodingLength() int {
	n := varu64.EncodingLength(c.Type)
	if c.Type >= compactLimit {
		n += varu64.EncodingLength(uint64(len(c.Value)))
	}
	return n + len(c.Value)
}

// Encode writes the triple into the beginning of out, returning how many
// bytes have been written. The count always equals EncodingLength.
//
// Encode panics if out is too small to hold the encoding; the check happens
// up front, so a panicking call has not written anything.
func (c Ctlv) Encode(out []byte) int {
	need := c.EncodingLength()
	if len(out) < need {
		panic(fmt.Sprintf("ctlv: output buffer too small: need %d bytes, have %d", need, len(out)))
	}

	n := varu64.Encode(c.Type, out)
	if c.Type >= compactLimit {
		n += varu64.Encode(uint64(len(c.Value)), out[n:])
	}
	n += copy(out[n:], c.Value)
	return n
}

// Bytes encodes the triple into a freshly allocated, exactly sized buffer.
func (c Ctlv) Bytes() []byte {
	out := make([]byte, c.EncodingLength())
	c.Encode(out)
	return out
}

// WriteTo encodes the triple to w. Errors from w are returned unchanged.
func (c Ctlv) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(c.Bytes())
	return int64(n), err
}

// String returns the encoding as a string. It is only meaningful when the
// caller knows the encoded bytes form valid text; nothing is validated.
func (c Ctlv) String() string {
	return string(c.Bytes())
}

// DecodeRaw parses a triple from the beginning of input, returning it and
// the unconsumed remainder. The triple's value aliases input: the caller
// may read it without copying, or mutate it to edit the encoded value in
// place. While the triple is in use the backing region must not be accessed
// through input or any other alias.
//
// On failure the returned remainder is the unconsumed input at the point
// the parser stopped, so the failure offset is len(input) - len(rest).
func DecodeRaw(input []byte) (Ctlv, []byte, error) {
	if len(input) == 0 {
		return Ctlv{}, input, ErrUnexpectedEOF
	}

	typ, rest, err := varu64.Decode(input)
	if err != nil {
		return Ctlv{}, rest, &TypeError{Err: err}
	}

	var length uint64
	if typ < compactLimit {
		length = impliedLength(typ)
	} else {
		length, rest, err = varu64.Decode(rest)
		if err != nil {
			return Ctlv{}, rest, &LengthError{Err: err}
		}
	}

	if uint64(len(rest)) < length {
		return Ctlv{}, rest, ErrUnexpectedEOF
	}

	value := rest[:length:length]
	return Ctlv{Type: typ, Value: value}, rest[length:], nil
}

// Decode parses a triple from the beginning of input, returning it and the
// unconsumed remainder. The triple's value is copied into fresh storage and
// does not alias input. Decoding is delegated to DecodeRaw, so the two
// never disagree.
func Decode(input []byte) (Ctlv, []byte, error) {
	c, rest, err := DecodeRaw(input)
	if err != nil {
		return Ctlv{}, rest, err
	}

	value := make([]byte, len(c.Value))
	copy(value, c.Value)
	return Ctlv{Type: c.Type, Value: value}, rest, nil
}
